package core

import "sync"

// Registry maps room ids to their live connections, in join order.
// A room has an entry only while at least one connection is present:
// the entry is removed the moment the last connection leaves.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string][]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string][]*Client)}
}

// Add inserts a client into the room's connection set, creating it if absent.
func (r *Registry) Add(room string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room] = append(r.rooms[room], c)
}

// Remove deletes a client from the room's connection set. Removing the last
// client drops the room entry entirely. No-op if the client is not present.
func (r *Registry) Remove(room string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.rooms[room]
	if !ok {
		return
	}
	for i, conn := range conns {
		if conn == c {
			conns = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(conns) == 0 {
		delete(r.rooms, room)
		return
	}
	r.rooms[room] = conns
}

// Nicknames returns the nicknames of the room's live connections in join
// order, or an empty slice if the room has no entry.
func (r *Registry) Nicknames(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.rooms[room]
	names := make([]string, 0, len(conns))
	for _, c := range conns {
		names = append(names, c.Nickname)
	}
	return names
}

// Connections returns a snapshot of the room's live connections.
func (r *Registry) Connections(room string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.rooms[room]
	out := make([]*Client, len(conns))
	copy(out, conns)
	return out
}

// Has reports whether the room currently has a registry entry.
func (r *Registry) Has(room string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[room]
	return ok
}
