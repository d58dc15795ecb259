package game

// Character names as printed on the official cards. They double as the wire
// values exchanged with clients, so they are never renamed.
const (
	CharMerlin       = "Merlin"
	CharPercival     = "Percival"
	CharLoyalServant = "Loyal Servant"
	CharAssassin     = "Assassin"
	CharMordred      = "Mordred"
	CharOberon       = "Oberon"
	CharMorgana      = "Morgana"
	CharMinion       = "Minion of Mordred"
)

type Allegiance string

const (
	AllegianceGood Allegiance = "Good"
	AllegianceEvil Allegiance = "Evil"
)

var goodCharacters = []string{CharMerlin, CharPercival, CharLoyalServant}

var evilCharacters = []string{CharAssassin, CharMordred, CharOberon, CharMorgana, CharMinion}

// fillerCharacters may be held by any number of players at once. Every other
// character is unique within a room.
var fillerCharacters = []string{CharLoyalServant, CharMinion}

// optionalCharacters must be enabled by the host before anyone may pick them.
var optionalCharacters = []string{CharPercival, CharMordred, CharOberon, CharMorgana}

// TeamSize is the official Good/Evil split for a given player count.
type TeamSize struct {
	Good int
	Evil int
}

// teamSizes covers the supported 5-10 player range.
var teamSizes = map[int]TeamSize{
	5:  {Good: 3, Evil: 2},
	6:  {Good: 4, Evil: 2},
	7:  {Good: 4, Evil: 3},
	8:  {Good: 5, Evil: 3},
	9:  {Good: 6, Evil: 3},
	10: {Good: 6, Evil: 4},
}

func contains(list []string, character string) bool {
	for _, c := range list {
		if c == character {
			return true
		}
	}
	return false
}

func IsGood(character string) bool {
	return contains(goodCharacters, character)
}

func IsEvil(character string) bool {
	return contains(evilCharacters, character)
}

func IsFiller(character string) bool {
	return contains(fillerCharacters, character)
}

func IsOptional(character string) bool {
	return contains(optionalCharacters, character)
}

// TeamSizeFor reports the official split for playerCount, false when the
// count is outside the 5-10 range.
func TeamSizeFor(playerCount int) (TeamSize, bool) {
	ts, ok := teamSizes[playerCount]
	return ts, ok
}
