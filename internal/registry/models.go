package registry

import "time"

// Status is the room lifecycle phase. Transitions:
// waiting -> character_selection -> started, with reset returning to
// character_selection and back-to-lobby returning all the way to waiting.
type Status string

const (
	StatusWaiting            Status = "waiting"
	StatusCharacterSelection Status = "character_selection"
	StatusStarted            Status = "started"
)

type Room struct {
	ID                 int64     `json:"id"`
	RoomCode           string    `json:"room_code"`
	HostPlayerID       int64     `json:"host_player_id"`
	Status             Status    `json:"status"`
	PlayerCount        int       `json:"player_count"`
	OptionalCharacters []string  `json:"optional_characters"`
	PlayerIDs          []int64   `json:"player_ids"`
	CreatedAt          time.Time `json:"created_at"`
}

type Player struct {
	ID            int64     `json:"id"`
	RoomID        int64     `json:"room_id"`
	PlayerName    string    `json:"player_name"`
	CharacterRole string    `json:"character_role,omitempty"`
	IsHost        bool      `json:"is_host"`
	JoinedAt      time.Time `json:"joined_at"`
	LastSeen      time.Time `json:"last_seen"`
}

// RoomWithPlayers is the denormalized view the presentation layer polls:
// the room joined with its resolved member list in join order.
type RoomWithPlayers struct {
	Room
	Players []Player `json:"players"`
}

func copyRoom(r *Room) Room {
	out := *r
	out.OptionalCharacters = append([]string{}, r.OptionalCharacters...)
	out.PlayerIDs = append([]int64{}, r.PlayerIDs...)
	return out
}

func copyPlayer(p *Player) Player {
	return *p
}
