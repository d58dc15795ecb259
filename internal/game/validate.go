package game

import "fmt"

// CharacterPool is the set of cards players may pick from plus the team split
// the final roster has to land on.
type CharacterPool struct {
	Good      []string `json:"good"`
	Evil      []string `json:"evil"`
	GoodCount int      `json:"good_count"`
	EvilCount int      `json:"evil_count"`
}

// Contains reports whether character is selectable from either side of the pool.
func (cp CharacterPool) Contains(character string) bool {
	return contains(cp.Good, character) || contains(cp.Evil, character)
}

// AvailableCharacters builds the selectable pool for a room: Merlin and Loyal
// Servant are always offered on the Good side, Assassin and Minion of Mordred
// on the Evil side, and each enabled optional character is appended to its
// side. A player count outside the official table yields empty lists.
func AvailableCharacters(playerCount int, optional []string) CharacterPool {
	ts, ok := teamSizes[playerCount]
	if !ok {
		return CharacterPool{Good: []string{}, Evil: []string{}}
	}

	pool := CharacterPool{
		Good:      []string{CharMerlin, CharLoyalServant},
		Evil:      []string{CharAssassin, CharMinion},
		GoodCount: ts.Good,
		EvilCount: ts.Evil,
	}

	if contains(optional, CharPercival) {
		pool.Good = append(pool.Good, CharPercival)
	}
	if contains(optional, CharMordred) {
		pool.Evil = append(pool.Evil, CharMordred)
	}
	if contains(optional, CharOberon) {
		pool.Evil = append(pool.Evil, CharOberon)
	}
	if contains(optional, CharMorgana) {
		pool.Evil = append(pool.Evil, CharMorgana)
	}

	return pool
}

// ValidateSelection checks a complete roster against the official rules and
// returns nil when the game may start. Rules are checked in a fixed order so
// the reported reason is deterministic: player count range, team distribution,
// Merlin and Assassin presence, duplicate unique characters, and finally the
// optional-character gate.
func ValidateSelection(roster []RosterEntry, optional []string) error {
	playerCount := len(roster)

	ts, ok := teamSizes[playerCount]
	if !ok {
		return fmt.Errorf("invalid player count: %d, must be between 5 and 10", playerCount)
	}

	goodCount, evilCount := 0, 0
	for _, p := range roster {
		if IsGood(p.Character) {
			goodCount++
		}
		if IsEvil(p.Character) {
			evilCount++
		}
	}
	if goodCount != ts.Good || evilCount != ts.Evil {
		return fmt.Errorf("invalid team distribution: need %d Good and %d Evil players", ts.Good, ts.Evil)
	}

	counts := make(map[string]int, playerCount)
	for _, p := range roster {
		counts[p.Character]++
	}

	if counts[CharMerlin] == 0 {
		return fmt.Errorf("%s is required in all games", CharMerlin)
	}
	if counts[CharAssassin] == 0 {
		return fmt.Errorf("%s is required in all games", CharAssassin)
	}

	for _, c := range []string{CharMerlin, CharPercival, CharAssassin, CharMordred, CharOberon, CharMorgana} {
		if counts[c] > 1 {
			return fmt.Errorf("cannot have multiple %s characters", c)
		}
	}

	for _, p := range roster {
		if IsOptional(p.Character) && !contains(optional, p.Character) {
			return fmt.Errorf("%s is not enabled for this game", p.Character)
		}
	}

	return nil
}
