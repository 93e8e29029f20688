package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/akulagin/codeshare-server/internal/store"
)

// SQLiteStore implements store.Directory for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	roster     TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// New opens (or creates) the SQLite database at dbPath and applies the schema.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateRoom creates a room with a fresh UUID and empty roster.
func (s *SQLiteStore) CreateRoom(ctx context.Context, name string) (*store.Room, error) {
	id := uuid.NewString()
	query := `INSERT INTO rooms (id, name, roster) VALUES (?, ?, '[]')`
	if _, err := s.db.ExecContext(ctx, query, id, name); err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return s.GetRoomByID(ctx, id)
}

// GetRoomByID retrieves a room by id.
func (s *SQLiteStore) GetRoomByID(ctx context.Context, id string) (*store.Room, error) {
	query := `SELECT id, name, roster, created_at FROM rooms WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)
	room, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select room: %w", err)
	}
	return room, nil
}

// ListRooms lists all rooms, newest first.
func (s *SQLiteStore) ListRooms(ctx context.Context) ([]*store.Room, error) {
	query := `SELECT id, name, roster, created_at FROM rooms ORDER BY created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*store.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return rooms, nil
}

// AppendRoster adds a nickname to the room's persisted roster unless it is
// already recorded. Duplicate nicknames from repeat visits are collapsed.
func (s *SQLiteStore) AppendRoster(ctx context.Context, roomID, nickname string) error {
	room, err := s.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}

	for _, n := range room.Roster {
		if n == nickname {
			return nil
		}
	}

	roster, err := json.Marshal(append(room.Roster, nickname))
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}

	query := `UPDATE rooms SET roster = ? WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, string(roster), roomID); err != nil {
		return fmt.Errorf("update roster: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*store.Room, error) {
	var (
		room      store.Room
		rosterRaw string
		createdAt time.Time
	)
	if err := row.Scan(&room.ID, &room.Name, &rosterRaw, &createdAt); err != nil {
		return nil, err
	}
	room.CreatedAt = createdAt

	if err := json.Unmarshal([]byte(rosterRaw), &room.Roster); err != nil {
		return nil, fmt.Errorf("unmarshal roster: %w", err)
	}
	if room.Roster == nil {
		room.Roster = []string{}
	}
	return &room, nil
}
