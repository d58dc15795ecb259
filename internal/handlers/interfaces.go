package handlers

import (
	"github.com/Tomasdfgh/Avalon/internal/game"
	"github.com/Tomasdfgh/Avalon/internal/registry"
)

// RoomStore is the registry surface the HTTP layer consumes. Implemented by
// *registry.Registry; mocked in tests.
type RoomStore interface {
	CreateRoom(playerName string) (registry.Room, registry.Player)
	JoinRoom(roomCode, playerName string) (registry.Room, registry.Player, error)
	ConfigureRoom(roomCode string, playerID int64, optional []string) (registry.Room, error)
	SelectCharacter(playerID int64, character string) (registry.Player, error)
	StartGame(roomCode string, playerID int64) (registry.Room, error)
	ResetGame(roomCode string, playerID int64) (registry.Room, error)
	BackToLobby(roomCode string, playerID int64) (registry.Room, error)
	KickPlayer(roomCode string, hostPlayerID, targetID int64) (registry.Room, error)
	LeaveRoom(roomCode string, playerID int64) (registry.Room, error)
	Heartbeat(playerID int64)
	CleanupStale(roomCode string) []int64
	GetRoom(roomCode string) (registry.Room, bool)
	GetPlayer(playerID int64) (registry.Player, bool)
	GetRoomByPlayer(playerID int64) (registry.Room, bool)
	GetPlayersInRoom(roomCode string) []registry.Player
	GetRoomWithPlayers(roomCode string) (registry.RoomWithPlayers, bool)
	Roster(roomCode string) []game.RosterEntry
}
