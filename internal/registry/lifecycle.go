package registry

import (
	"github.com/rs/zerolog/log"

	"github.com/Tomasdfgh/Avalon/internal/game"
)

// ConfigureRoom records the host's optional-character choices and advances
// the room to character selection. One-way gate: only valid from waiting, and
// reconfiguration requires going back to the lobby first.
func (r *Registry) ConfigureRoom(roomCode string, playerID int64, optional []string) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.requireHostRoom(roomCode, playerID)
	if err != nil {
		return Room{}, err
	}
	if room.Status != StatusWaiting {
		return Room{}, ErrInvalidTransition
	}

	room.OptionalCharacters = append([]string{}, optional...)
	room.Status = StatusCharacterSelection

	log.Info().Str("room", roomCode).Strs("optional", optional).Msg("room configured")
	return copyRoom(room), nil
}

// SelectCharacter records a player's pick. Unique characters conflict with
// other members' picks; filler characters never do. Re-selecting overwrites
// the player's own previous pick, which frees their old slot.
func (r *Registry) SelectCharacter(playerID int64, character string) (Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[playerID]
	if !ok {
		return Player{}, ErrPlayerNotFound
	}
	room, ok := r.rooms[r.playerRoom[playerID]]
	if !ok {
		return Player{}, ErrRoomNotFound
	}
	if room.Status != StatusCharacterSelection {
		return Player{}, ErrSelectionNotActive
	}

	if !game.IsFiller(character) {
		for _, pid := range room.PlayerIDs {
			if pid != playerID && r.players[pid].CharacterRole == character {
				return Player{}, ErrCharacterTaken
			}
		}
	}

	player.CharacterRole = character
	return copyPlayer(player), nil
}

// StartGame moves the room to started once every member has picked a
// character. The registry checks completeness only; roster rule-correctness
// is the caller's job via game.ValidateSelection.
func (r *Registry) StartGame(roomCode string, playerID int64) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.requireHostRoom(roomCode, playerID)
	if err != nil {
		return Room{}, err
	}
	if room.Status != StatusCharacterSelection {
		return Room{}, ErrInvalidTransition
	}
	for _, pid := range room.PlayerIDs {
		if r.players[pid].CharacterRole == "" {
			return Room{}, ErrIncompleteSelection
		}
	}

	room.Status = StatusStarted
	log.Info().Str("room", roomCode).Int("players", room.PlayerCount).Msg("game started")
	return copyRoom(room), nil
}

// ResetGame clears every member's character and returns the room to
// character selection, from either started or character_selection.
func (r *Registry) ResetGame(roomCode string, playerID int64) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.requireHostRoom(roomCode, playerID)
	if err != nil {
		return Room{}, err
	}
	if room.Status == StatusWaiting {
		return Room{}, ErrInvalidTransition
	}

	for _, pid := range room.PlayerIDs {
		r.players[pid].CharacterRole = ""
	}
	room.Status = StatusCharacterSelection

	log.Info().Str("room", roomCode).Msg("game reset")
	return copyRoom(room), nil
}

// BackToLobby clears every member's character and returns the room all the
// way to waiting, so the host may reconfigure.
func (r *Registry) BackToLobby(roomCode string, playerID int64) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.requireHostRoom(roomCode, playerID)
	if err != nil {
		return Room{}, err
	}

	for _, pid := range room.PlayerIDs {
		r.players[pid].CharacterRole = ""
	}
	room.Status = StatusWaiting

	log.Info().Str("room", roomCode).Msg("room back to lobby")
	return copyRoom(room), nil
}

// KickPlayer removes a member at the host's request, deleting the player
// record entirely.
func (r *Registry) KickPlayer(roomCode string, hostPlayerID, targetID int64) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.requireHostRoom(roomCode, hostPlayerID)
	if err != nil {
		return Room{}, err
	}
	if targetID == hostPlayerID {
		return Room{}, ErrCannotKickSelf
	}
	if r.playerRoom[targetID] != roomCode {
		return Room{}, ErrPlayerNotInRoom
	}

	r.removeMember(room, targetID)
	log.Info().Str("room", roomCode).Int64("player", targetID).Msg("player kicked")
	return copyRoom(room), nil
}

// LeaveRoom removes the player; a departing host hands the role to the
// earliest-joined remaining member. Emptied rooms are left in place.
func (r *Registry) LeaveRoom(roomCode string, playerID int64) (Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	if r.playerRoom[playerID] != roomCode {
		return Room{}, ErrPlayerNotInRoom
	}

	r.removeMember(room, playerID)
	log.Info().Str("room", roomCode).Int64("player", playerID).Msg("player left")
	return copyRoom(room), nil
}
