package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return New(DefaultStaleTimeout)
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	room, player := r.CreateRoom("alice")

	assert.Len(t, room.RoomCode, 6)
	assert.Equal(t, StatusWaiting, room.Status)
	assert.Equal(t, 1, room.PlayerCount)
	assert.Equal(t, []int64{player.ID}, room.PlayerIDs)
	assert.Equal(t, player.ID, room.HostPlayerID)

	assert.True(t, player.IsHost)
	assert.Equal(t, "alice", player.PlayerName)
	assert.Equal(t, room.ID, player.RoomID)
}

func TestRoomCodesUniqueWhileRegistered(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	codes := make(map[string]bool)
	for i := 0; i < 200; i++ {
		room, _ := r.CreateRoom(fmt.Sprintf("host-%d", i))
		assert.False(t, codes[room.RoomCode], "code %s reused", room.RoomCode)
		codes[room.RoomCode] = true
	}
}

func TestJoinRoom(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	room, host := r.CreateRoom("alice")

	joined, bob, err := r.JoinRoom(room.RoomCode, "bob")
	require.NoError(t, err)

	assert.False(t, bob.IsHost)
	assert.Equal(t, 2, joined.PlayerCount)
	assert.Equal(t, []int64{host.ID, bob.ID}, joined.PlayerIDs)
	assert.Greater(t, bob.ID, host.ID)
}

func TestJoinRoomErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry()
		_, _, err := r.JoinRoom("000000", "bob")
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("name taken in room", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry()
		room, _ := r.CreateRoom("alice")
		_, _, err := r.JoinRoom(room.RoomCode, "alice")
		assert.ErrorIs(t, err, ErrNameTaken)
	})

	t.Run("game already started", func(t *testing.T) {
		t.Parallel()

		r := newTestRegistry()
		room, _ := startedRoom(t, r)
		_, _, err := r.JoinRoom(room.RoomCode, "late")
		assert.ErrorIs(t, err, ErrGameAlreadyStarted)
	})
}

func TestLookups(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	room, host := r.CreateRoom("alice")
	_, bob, err := r.JoinRoom(room.RoomCode, "bob")
	require.NoError(t, err)

	got, ok := r.GetRoom(room.RoomCode)
	require.True(t, ok)
	assert.Equal(t, room.RoomCode, got.RoomCode)

	player, ok := r.GetPlayer(bob.ID)
	require.True(t, ok)
	assert.Equal(t, "bob", player.PlayerName)

	byPlayer, ok := r.GetRoomByPlayer(bob.ID)
	require.True(t, ok)
	assert.Equal(t, room.RoomCode, byPlayer.RoomCode)

	members := r.GetPlayersInRoom(room.RoomCode)
	require.Len(t, members, 2)
	assert.Equal(t, host.ID, members[0].ID)
	assert.Equal(t, bob.ID, members[1].ID)

	view, ok := r.GetRoomWithPlayers(room.RoomCode)
	require.True(t, ok)
	assert.Equal(t, 2, view.PlayerCount)
	assert.Len(t, view.Players, 2)
}

func TestLookupsMissing(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	_, ok := r.GetRoom("123456")
	assert.False(t, ok)
	_, ok = r.GetPlayer(99)
	assert.False(t, ok)
	_, ok = r.GetRoomByPlayer(99)
	assert.False(t, ok)
	assert.Empty(t, r.GetPlayersInRoom("123456"))
	_, ok = r.GetRoomWithPlayers("123456")
	assert.False(t, ok)
	assert.Empty(t, r.Roster("123456"))
}

func TestSnapshotsAreCopies(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	room, _ := r.CreateRoom("alice")

	got, _ := r.GetRoom(room.RoomCode)
	got.PlayerIDs[0] = 999
	got.Status = StatusStarted

	fresh, _ := r.GetRoom(room.RoomCode)
	assert.Equal(t, StatusWaiting, fresh.Status)
	assert.NotEqual(t, int64(999), fresh.PlayerIDs[0])
}
