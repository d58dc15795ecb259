package registry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets eviction tests move time explicitly.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClockedRegistry() (*Registry, *fakeClock) {
	clock := newFakeClock()
	r := New(10 * time.Second)
	r.now = clock.Now
	return r, clock
}

func TestHeartbeatUpdatesLastSeen(t *testing.T) {
	t.Parallel()

	r, clock := newClockedRegistry()
	_, player := r.CreateRoom("alice")

	clock.Advance(5 * time.Second)
	r.Heartbeat(player.ID)

	got, ok := r.GetPlayer(player.ID)
	require.True(t, ok)
	assert.Equal(t, clock.Now(), got.LastSeen)
}

func TestHeartbeatUnknownPlayerIsNoop(t *testing.T) {
	t.Parallel()

	r, _ := newClockedRegistry()
	r.Heartbeat(12345)
}

func TestCleanupStaleEvictsPastThreshold(t *testing.T) {
	t.Parallel()

	r, clock := newClockedRegistry()
	room, host := r.CreateRoom("alice")
	_, bob, err := r.JoinRoom(room.RoomCode, "bob")
	require.NoError(t, err)

	// host stays fresh at 9s, bob goes silent for 11s
	clock.Advance(9 * time.Second)
	r.Heartbeat(host.ID)
	clock.Advance(2 * time.Second)
	r.Heartbeat(host.ID)

	evicted := r.CleanupStale(room.RoomCode)
	assert.Equal(t, []int64{bob.ID}, evicted)

	got, _ := r.GetRoom(room.RoomCode)
	assert.Equal(t, 1, got.PlayerCount)
	_, ok := r.GetPlayer(bob.ID)
	assert.False(t, ok)
}

func TestCleanupStaleRetainsWithinThreshold(t *testing.T) {
	t.Parallel()

	r, clock := newClockedRegistry()
	room, _ := r.CreateRoom("alice")
	_, bob, err := r.JoinRoom(room.RoomCode, "bob")
	require.NoError(t, err)

	clock.Advance(9 * time.Second)
	evicted := r.CleanupStale(room.RoomCode)
	assert.Empty(t, evicted)

	_, ok := r.GetPlayer(bob.ID)
	assert.True(t, ok)
}

func TestCleanupStaleExactThresholdRetained(t *testing.T) {
	t.Parallel()

	r, clock := newClockedRegistry()
	room, _ := r.CreateRoom("alice")

	clock.Advance(10 * time.Second)
	assert.Empty(t, r.CleanupStale(room.RoomCode))
}

func TestCleanupStaleReassignsHost(t *testing.T) {
	t.Parallel()

	r, clock := newClockedRegistry()
	room, host := r.CreateRoom("alice")
	_, bob, err := r.JoinRoom(room.RoomCode, "bob")
	require.NoError(t, err)
	_, carol, err := r.JoinRoom(room.RoomCode, "carol")
	require.NoError(t, err)

	// everyone but the host heartbeats; the host goes stale
	clock.Advance(11 * time.Second)
	r.Heartbeat(bob.ID)
	r.Heartbeat(carol.ID)

	evicted := r.CleanupStale(room.RoomCode)
	assert.Equal(t, []int64{host.ID}, evicted)

	got, _ := r.GetRoom(room.RoomCode)
	assert.Equal(t, bob.ID, got.HostPlayerID, "earliest remaining member becomes host")

	newHost, ok := r.GetPlayer(bob.ID)
	require.True(t, ok)
	assert.True(t, newHost.IsHost)
}

func TestCleanupStaleUnknownRoom(t *testing.T) {
	t.Parallel()

	r, _ := newClockedRegistry()
	assert.Nil(t, r.CleanupStale("000000"))
}

// A heartbeat that lands before the sweep decides must keep its player alive,
// no matter how the two interleave.
func TestHeartbeatRacesCleanup(t *testing.T) {
	t.Parallel()

	r := New(50 * time.Millisecond)
	room, host := r.CreateRoom("alice")
	_, bob, err := r.JoinRoom(room.RoomCode, "bob")
	require.NoError(t, err)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				r.Heartbeat(bob.ID)
				r.Heartbeat(host.ID)
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				r.CleanupStale(room.RoomCode)
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()

	time.Sleep(300 * time.Millisecond)
	close(stop)
	wg.Wait()

	got, ok := r.GetRoom(room.RoomCode)
	require.True(t, ok)
	assert.Equal(t, 2, got.PlayerCount, "freshly heartbeating players must never be evicted")
}
