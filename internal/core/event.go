package core

// EventKind is a notification the core emits to connections.
type EventKind int

const (
	// EventJoined notifies a room that a user joined.
	EventJoined EventKind = iota
	// EventLeft notifies a room that a user left.
	EventLeft
	// EventEdited notifies a room that the document text changed.
	EventEdited
	// EventCodeSync delivers the current document text to a joining connection.
	EventCodeSync
	// EventUsersSync delivers the current nickname list to a joining connection.
	EventUsersSync
	// EventError notifies a single connection about a session error.
	EventError
	// EventMalformed is a diagnostic sent only to the sender of an
	// unparseable message. Never broadcast.
	EventMalformed
)

// Event describes something that happened in a room session.
type Event struct {
	Kind  EventKind
	User  string
	Code  string
	Users []string
	Err   string
}
