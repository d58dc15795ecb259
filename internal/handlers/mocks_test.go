package handlers

import (
	"github.com/stretchr/testify/mock"

	"github.com/Tomasdfgh/Avalon/internal/game"
	"github.com/Tomasdfgh/Avalon/internal/registry"
)

// --- RoomStore ---

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) CreateRoom(playerName string) (registry.Room, registry.Player) {
	args := m.Called(playerName)
	return args.Get(0).(registry.Room), args.Get(1).(registry.Player)
}

func (m *MockRoomStore) JoinRoom(roomCode, playerName string) (registry.Room, registry.Player, error) {
	args := m.Called(roomCode, playerName)
	return args.Get(0).(registry.Room), args.Get(1).(registry.Player), args.Error(2)
}

func (m *MockRoomStore) ConfigureRoom(roomCode string, playerID int64, optional []string) (registry.Room, error) {
	args := m.Called(roomCode, playerID, optional)
	return args.Get(0).(registry.Room), args.Error(1)
}

func (m *MockRoomStore) SelectCharacter(playerID int64, character string) (registry.Player, error) {
	args := m.Called(playerID, character)
	return args.Get(0).(registry.Player), args.Error(1)
}

func (m *MockRoomStore) StartGame(roomCode string, playerID int64) (registry.Room, error) {
	args := m.Called(roomCode, playerID)
	return args.Get(0).(registry.Room), args.Error(1)
}

func (m *MockRoomStore) ResetGame(roomCode string, playerID int64) (registry.Room, error) {
	args := m.Called(roomCode, playerID)
	return args.Get(0).(registry.Room), args.Error(1)
}

func (m *MockRoomStore) BackToLobby(roomCode string, playerID int64) (registry.Room, error) {
	args := m.Called(roomCode, playerID)
	return args.Get(0).(registry.Room), args.Error(1)
}

func (m *MockRoomStore) KickPlayer(roomCode string, hostPlayerID, targetID int64) (registry.Room, error) {
	args := m.Called(roomCode, hostPlayerID, targetID)
	return args.Get(0).(registry.Room), args.Error(1)
}

func (m *MockRoomStore) LeaveRoom(roomCode string, playerID int64) (registry.Room, error) {
	args := m.Called(roomCode, playerID)
	return args.Get(0).(registry.Room), args.Error(1)
}

func (m *MockRoomStore) Heartbeat(playerID int64) {
	m.Called(playerID)
}

func (m *MockRoomStore) CleanupStale(roomCode string) []int64 {
	args := m.Called(roomCode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int64)
}

func (m *MockRoomStore) GetRoom(roomCode string) (registry.Room, bool) {
	args := m.Called(roomCode)
	return args.Get(0).(registry.Room), args.Bool(1)
}

func (m *MockRoomStore) GetPlayer(playerID int64) (registry.Player, bool) {
	args := m.Called(playerID)
	return args.Get(0).(registry.Player), args.Bool(1)
}

func (m *MockRoomStore) GetRoomByPlayer(playerID int64) (registry.Room, bool) {
	args := m.Called(playerID)
	return args.Get(0).(registry.Room), args.Bool(1)
}

func (m *MockRoomStore) GetPlayersInRoom(roomCode string) []registry.Player {
	args := m.Called(roomCode)
	return args.Get(0).([]registry.Player)
}

func (m *MockRoomStore) GetRoomWithPlayers(roomCode string) (registry.RoomWithPlayers, bool) {
	args := m.Called(roomCode)
	return args.Get(0).(registry.RoomWithPlayers), args.Bool(1)
}

func (m *MockRoomStore) Roster(roomCode string) []game.RosterEntry {
	args := m.Called(roomCode)
	return args.Get(0).([]game.RosterEntry)
}
