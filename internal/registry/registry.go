// Package registry owns every room and player record, their identity
// allocation and all lifecycle transitions. It is the single stateful
// component of the service: operations run under one lock and either fully
// apply or fully fail, so no caller ever observes a half-applied transition.
// Reveal rules live in the game package; the registry never consults them
// beyond the filler-character distinction needed for selection conflicts.
package registry

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Tomasdfgh/Avalon/internal/game"
)

const roomCodeLength = 6

// DefaultStaleTimeout is how long a player may go without a heartbeat before
// CleanupStale evicts them.
const DefaultStaleTimeout = 10 * time.Second

type Registry struct {
	mu sync.Mutex

	rooms   map[string]*Room  // room code -> room
	players map[int64]*Player // player id -> player

	// playerRoom is the reverse index player id -> room code, maintained on
	// every membership change so player-scoped lookups avoid scanning rooms.
	playerRoom map[int64]string

	nextRoomID   int64
	nextPlayerID int64

	staleTimeout time.Duration

	// now is swapped out by tests that exercise eviction timing.
	now func() time.Time
}

func New(staleTimeout time.Duration) *Registry {
	if staleTimeout <= 0 {
		staleTimeout = DefaultStaleTimeout
	}
	return &Registry{
		rooms:        make(map[string]*Room),
		players:      make(map[int64]*Player),
		playerRoom:   make(map[int64]string),
		staleTimeout: staleTimeout,
		now:          time.Now,
	}
}

// generateRoomCode resamples a fixed-length numeric code until it misses
// every currently registered room. Codes freed by dead rooms may be reused.
// Caller holds the lock.
func (r *Registry) generateRoomCode() string {
	for {
		code := fmt.Sprintf("%06d", rand.Intn(1_000_000))
		if _, taken := r.rooms[code]; !taken {
			return code
		}
	}
}

// CreateRoom allocates a fresh room with the creator as its sole member and
// host. Name validation is the caller's job.
func (r *Registry) CreateRoom(playerName string) (Room, Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextRoomID++
	r.nextPlayerID++
	now := r.now()

	player := &Player{
		ID:         r.nextPlayerID,
		RoomID:     r.nextRoomID,
		PlayerName: playerName,
		IsHost:     true,
		JoinedAt:   now,
		LastSeen:   now,
	}

	room := &Room{
		ID:                 r.nextRoomID,
		RoomCode:           r.generateRoomCode(),
		HostPlayerID:       player.ID,
		Status:             StatusWaiting,
		PlayerCount:        1,
		OptionalCharacters: []string{},
		PlayerIDs:          []int64{player.ID},
		CreatedAt:          now,
	}

	r.rooms[room.RoomCode] = room
	r.players[player.ID] = player
	r.playerRoom[player.ID] = room.RoomCode

	log.Info().Str("room", room.RoomCode).Int64("player", player.ID).Str("name", playerName).Msg("room created")
	return copyRoom(room), copyPlayer(player)
}

// JoinRoom appends a new non-host member. Names are unique per room,
// case-sensitive.
func (r *Registry) JoinRoom(roomCode, playerName string) (Room, Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return Room{}, Player{}, ErrRoomNotFound
	}
	if room.Status == StatusStarted {
		return Room{}, Player{}, ErrGameAlreadyStarted
	}
	for _, pid := range room.PlayerIDs {
		if r.players[pid].PlayerName == playerName {
			return Room{}, Player{}, ErrNameTaken
		}
	}

	r.nextPlayerID++
	now := r.now()

	player := &Player{
		ID:         r.nextPlayerID,
		RoomID:     room.ID,
		PlayerName: playerName,
		JoinedAt:   now,
		LastSeen:   now,
	}

	r.players[player.ID] = player
	r.playerRoom[player.ID] = roomCode
	room.PlayerIDs = append(room.PlayerIDs, player.ID)
	room.PlayerCount = len(room.PlayerIDs)

	log.Info().Str("room", roomCode).Int64("player", player.ID).Str("name", playerName).Msg("player joined")
	return copyRoom(room), copyPlayer(player), nil
}

// requireHostRoom resolves a room and verifies the caller is its host.
// Caller holds the lock.
func (r *Registry) requireHostRoom(roomCode string, playerID int64) (*Room, error) {
	room, ok := r.rooms[roomCode]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.HostPlayerID != playerID {
		return nil, ErrNotHost
	}
	return room, nil
}

// removeMember deletes a player from a room, reassigning the host role to the
// earliest-joined remaining member when needed. Caller holds the lock.
func (r *Registry) removeMember(room *Room, playerID int64) {
	for i, pid := range room.PlayerIDs {
		if pid == playerID {
			room.PlayerIDs = append(room.PlayerIDs[:i], room.PlayerIDs[i+1:]...)
			break
		}
	}
	room.PlayerCount = len(room.PlayerIDs)
	delete(r.players, playerID)
	delete(r.playerRoom, playerID)

	if room.HostPlayerID == playerID && len(room.PlayerIDs) > 0 {
		newHost := room.PlayerIDs[0]
		room.HostPlayerID = newHost
		r.players[newHost].IsHost = true
		log.Info().Str("room", room.RoomCode).Int64("player", newHost).Msg("host reassigned")
	}
}

// GetRoom returns a snapshot of the room, false when the code is unknown.
func (r *Registry) GetRoom(roomCode string) (Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return Room{}, false
	}
	return copyRoom(room), true
}

func (r *Registry) GetPlayer(playerID int64) (Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[playerID]
	if !ok {
		return Player{}, false
	}
	return copyPlayer(player), true
}

// GetRoomByPlayer resolves the room a player belongs to via the reverse index.
func (r *Registry) GetRoomByPlayer(playerID int64) (Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code, ok := r.playerRoom[playerID]
	if !ok {
		return Room{}, false
	}
	return copyRoom(r.rooms[code]), true
}

// GetPlayersInRoom returns the members in join order, empty for unknown codes.
func (r *Registry) GetPlayersInRoom(roomCode string) []Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return []Player{}
	}
	return r.memberSnapshot(room)
}

// memberSnapshot copies a room's players in join order. Caller holds the lock.
func (r *Registry) memberSnapshot(room *Room) []Player {
	players := make([]Player, 0, len(room.PlayerIDs))
	for _, pid := range room.PlayerIDs {
		players = append(players, copyPlayer(r.players[pid]))
	}
	return players
}

// GetRoomWithPlayers returns the denormalized room view the clients poll.
func (r *Registry) GetRoomWithPlayers(roomCode string) (RoomWithPlayers, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return RoomWithPlayers{}, false
	}
	return RoomWithPlayers{Room: copyRoom(room), Players: r.memberSnapshot(room)}, true
}

// Roster extracts the name/character pairs the reveal engine consumes.
func (r *Registry) Roster(roomCode string) []game.RosterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return []game.RosterEntry{}
	}
	roster := make([]game.RosterEntry, 0, len(room.PlayerIDs))
	for _, pid := range room.PlayerIDs {
		p := r.players[pid]
		roster = append(roster, game.RosterEntry{PlayerName: p.PlayerName, Character: p.CharacterRole})
	}
	return roster
}
