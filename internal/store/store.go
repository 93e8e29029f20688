package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a room id is not in the directory.
var ErrNotFound = errors.New("room not found")

// Room is a persisted collaboration space. Roster is the historical list of
// nicknames that ever joined; it is independent of who is live right now.
type Room struct {
	ID        string
	Name      string
	Roster    []string
	CreatedAt time.Time
}

// Directory is the persisted room catalog consumed by the live-session layer
// and the REST surface. The session layer only checks existence and appends
// to the roster; roster writes are best-effort for it.
type Directory interface {
	// CreateRoom creates a room with a server-allocated id and empty roster.
	CreateRoom(ctx context.Context, name string) (*Room, error)

	// GetRoomByID retrieves a room, or ErrNotFound.
	GetRoomByID(ctx context.Context, id string) (*Room, error)

	// ListRooms lists all rooms.
	ListRooms(ctx context.Context) ([]*Room, error)

	// AppendRoster adds a nickname to the room's roster unless already present.
	AppendRoster(ctx context.Context, roomID, nickname string) error

	// Close closes the underlying database connection.
	Close() error
}
