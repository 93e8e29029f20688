package core

import (
	"sync"

	"github.com/rs/zerolog"
)

// SessionManager owns the live-session state of the process: the connection
// registry and the per-room document text. Every composite mutation of a
// room (register+broadcast, set-text+broadcast, remove+broadcast) runs under
// that room's lock, so events reach all members in the order the triggering
// operations were serialized. Rooms do not contend with each other.
type SessionManager struct {
	registry *Registry
	state    *StateStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	log *zerolog.Logger
}

// NewSessionManager constructs a session manager with empty registry and state.
func NewSessionManager(logger *zerolog.Logger) *SessionManager {
	return &SessionManager{
		registry: NewRegistry(),
		state:    NewStateStore(),
		locks:    make(map[string]*sync.Mutex),
		log:      logger,
	}
}

// Registry exposes the connection registry.
func (m *SessionManager) Registry() *Registry {
	return m.registry
}

// State exposes the document state store.
func (m *SessionManager) State() *StateStore {
	return m.state
}

// roomLock returns the lock serializing all mutations of one room.
// Locks are retained for the process lifetime, like document text.
func (m *SessionManager) roomLock(room string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[room]
	if !ok {
		l = &sync.Mutex{}
		m.locks[room] = l
	}
	return l
}

// Join registers the client, announces it to the room (the joiner included),
// then queues the current document text and nickname list to the joiner.
func (m *SessionManager) Join(room string, c *Client) {
	l := m.roomLock(room)
	l.Lock()
	defer l.Unlock()

	m.registry.Add(room, c)
	m.broadcastLocked(room, &Event{Kind: EventJoined, User: c.Nickname})
	c.Deliver(&Event{Kind: EventCodeSync, Code: m.state.Get(room)})
	c.Deliver(&Event{Kind: EventUsersSync, Users: m.registry.Nicknames(room)})
}

// Edit stores the new document text and announces it to the whole room,
// the sender included. Last write wins; there is no merge.
func (m *SessionManager) Edit(room string, c *Client, code string) {
	l := m.roomLock(room)
	l.Lock()
	defer l.Unlock()

	m.state.Set(room, code)
	m.broadcastLocked(room, &Event{Kind: EventEdited, User: c.Nickname, Code: code})
}

// Leave deregisters the client and announces the departure to the remaining
// members. Safe to call for a client already pruned by a broadcast.
func (m *SessionManager) Leave(room string, c *Client) {
	l := m.roomLock(room)
	l.Lock()
	defer l.Unlock()

	m.registry.Remove(room, c)
	m.broadcastLocked(room, &Event{Kind: EventLeft, User: c.Nickname})
}

// Broadcast delivers an event to every live connection of the room,
// pruning dead connections as a side effect.
func (m *SessionManager) Broadcast(room string, ev *Event) {
	l := m.roomLock(room)
	l.Lock()
	defer l.Unlock()

	m.broadcastLocked(room, ev)
}

// broadcastLocked attempts delivery to each connection independently.
// A refused delivery means the connection is dead; it is removed from the
// registry so later events stop trying it. Caller holds the room lock.
func (m *SessionManager) broadcastLocked(room string, ev *Event) {
	for _, conn := range m.registry.Connections(room) {
		if conn.Deliver(ev) {
			continue
		}
		m.registry.Remove(room, conn)
		m.log.Debug().
			Str("room", room).
			Str("user", conn.Nickname).
			Msg("pruned dead connection during broadcast")
	}
}
