package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/akulagin/codeshare-server/internal/store"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestCreateAndGetRoom(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	room, err := st.CreateRoom(ctx, "python-101")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if room.ID == "" {
		t.Fatal("expected a generated room id")
	}
	if room.Name != "python-101" {
		t.Fatalf("room name = %q, want python-101", room.Name)
	}
	if len(room.Roster) != 0 {
		t.Fatalf("new room roster = %v, want empty", room.Roster)
	}

	got, err := st.GetRoomByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if got.ID != room.ID || got.Name != room.Name {
		t.Fatalf("got %+v, want %+v", got, room)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetRoomByID(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestListRooms(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.CreateRoom(ctx, "alpha"); err != nil {
		t.Fatalf("create alpha: %v", err)
	}
	if _, err := st.CreateRoom(ctx, "beta"); err != nil {
		t.Fatalf("create beta: %v", err)
	}

	rooms, err := st.ListRooms(ctx)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("listed %d rooms, want 2", len(rooms))
	}
}

func TestAppendRosterDeduplicates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	room, err := st.CreateRoom(ctx, "dedupe")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	if err := st.AppendRoster(ctx, room.ID, "alice"); err != nil {
		t.Fatalf("append alice: %v", err)
	}
	if err := st.AppendRoster(ctx, room.ID, "bob"); err != nil {
		t.Fatalf("append bob: %v", err)
	}
	if err := st.AppendRoster(ctx, room.ID, "alice"); err != nil {
		t.Fatalf("append alice again: %v", err)
	}

	got, err := st.GetRoomByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	want := []string{"alice", "bob"}
	if len(got.Roster) != len(want) {
		t.Fatalf("roster = %v, want %v", got.Roster, want)
	}
	for i := range want {
		if got.Roster[i] != want[i] {
			t.Fatalf("roster = %v, want %v", got.Roster, want)
		}
	}
}

func TestAppendRosterUnknownRoom(t *testing.T) {
	st := newTestStore(t)

	err := st.AppendRoster(context.Background(), "nope", "alice")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}
