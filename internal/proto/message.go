package proto

// Event names carried in the "event" discriminator field.
const (
	EventJoin      = "join"
	EventLeave     = "leave"
	EventEdit      = "edit"
	EventCodeSync  = "code_sync"
	EventUsersSync = "users_sync"
	EventError     = "error"
	EventMalformed = "malformed_event"
)

// Message is the structured envelope exchanged after the handshake.
// The handshake itself is a single raw text frame carrying the nickname;
// everything after it, in both directions, is this JSON object.
//
// Code is a pointer so that edit and code_sync always carry the field on
// the wire, an empty document included, while the other events omit it.
type Message struct {
	Event string   `json:"event"`
	User  string   `json:"user,omitempty"`
	Code  *string  `json:"code,omitempty"`
	Users []string `json:"users,omitempty"`
	Error string   `json:"error,omitempty"`
}
