package registry

import "github.com/rs/zerolog/log"

// Heartbeat refreshes a player's last-seen timestamp. Unknown players are a
// no-op; the client may simply have been evicted already.
func (r *Registry) Heartbeat(playerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if player, ok := r.players[playerID]; ok {
		player.LastSeen = r.now()
	}
}

// CleanupStale evicts every member of the room whose heartbeat is older than
// the stale timeout, reassigning the host when the host was evicted. It runs
// under the same lock as Heartbeat, so a heartbeat that lands first always
// keeps its player alive. Returns the evicted player ids.
func (r *Registry) CleanupStale(roomCode string) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomCode]
	if !ok {
		return nil
	}

	now := r.now()
	var evicted []int64
	for _, pid := range append([]int64{}, room.PlayerIDs...) {
		if now.Sub(r.players[pid].LastSeen) > r.staleTimeout {
			r.removeMember(room, pid)
			evicted = append(evicted, pid)
		}
	}

	if len(evicted) > 0 {
		log.Info().Str("room", roomCode).Ints64("players", evicted).Msg("stale players evicted")
	}
	return evicted
}
