package game

// RosterEntry is the slice of player state the reveal rules need: who is in
// the room and which card they hold. Callers build it from a registry
// snapshot; this package never touches live state.
type RosterEntry struct {
	PlayerName string `json:"player_name"`
	Character  string `json:"character_role"`
}

// Reveal is everything a single player is entitled to learn once the game has
// started. RevealedPlayers is always non-nil so it serializes as [].
type Reveal struct {
	YourCharacter   string     `json:"your_character"`
	YourAllegiance  Allegiance `json:"your_allegiance"`
	RevealedPlayers []string   `json:"revealed_players"`
	Message         string     `json:"message"`
}

// CharacterReveals computes the night-phase information for one character
// given the full roster, caller included:
//
//   - Merlin sees every Evil player except Mordred.
//   - Percival sees Merlin and Morgana without knowing which is which.
//   - Oberon is Evil but cut off from the Evil recognition channel both ways.
//   - Every other Evil character sees its fellow Evil players except Oberon.
//   - Loyal Servants see nobody.
func CharacterReveals(character string, roster []RosterEntry) Reveal {
	reveal := Reveal{
		YourCharacter:   character,
		YourAllegiance:  AllegianceEvil,
		RevealedPlayers: []string{},
	}
	if IsGood(character) {
		reveal.YourAllegiance = AllegianceGood
	}

	switch character {
	case CharMerlin:
		for _, p := range roster {
			if IsEvil(p.Character) && p.Character != CharMordred {
				reveal.RevealedPlayers = append(reveal.RevealedPlayers, p.PlayerName)
			}
		}
		reveal.Message = "You are Merlin. You know the agents of Evil (except Mordred if present)."

	case CharPercival:
		for _, p := range roster {
			if p.Character == CharMerlin || p.Character == CharMorgana {
				reveal.RevealedPlayers = append(reveal.RevealedPlayers, p.PlayerName)
			}
		}
		reveal.Message = "You are Percival. You see Merlin (and Morgana if present), but you must discern which is which."

	case CharLoyalServant:
		reveal.Message = "You are a Loyal Servant of Arthur. You have no special knowledge, but you fight for Good!"

	case CharOberon:
		reveal.Message = "You are Oberon, a Minion of Mordred. You do not know your fellow agents of Evil, nor do they know you."

	case CharAssassin, CharMordred, CharMorgana, CharMinion:
		for _, p := range roster {
			if IsEvil(p.Character) && p.Character != CharOberon && p.Character != character {
				reveal.RevealedPlayers = append(reveal.RevealedPlayers, p.PlayerName)
			}
		}
		switch character {
		case CharAssassin:
			reveal.Message = "You are the Assassin, a Minion of Mordred. You know your fellow agents of Evil (except Oberon). If Good wins, you can assassinate Merlin to win the game!"
		case CharMordred:
			reveal.Message = "You are Mordred, a Minion of Mordred. You know your fellow agents of Evil (except Oberon). Your identity is hidden from Merlin!"
		case CharMorgana:
			reveal.Message = "You are Morgana, a Minion of Mordred. You know your fellow agents of Evil (except Oberon). You appear as Merlin to Percival!"
		default:
			reveal.Message = "You are a Minion of Mordred. You know your fellow agents of Evil (except Oberon)."
		}
	}

	return reveal
}
