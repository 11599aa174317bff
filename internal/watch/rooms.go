// internal/watch/rooms.go

// Package watch keeps local snapshots of server-side room and session state
// fresh. Rooms and session are independent domains: their watchers share no
// state and never serialize against each other.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
	"github.com/astrolabio1417/legacy-osu-bot/internal/poller"
)

// RoomStore holds the latest room-list snapshot. A successful fetch replaces
// the whole list; there is no field-level merge and no reconciliation of
// optimistic client state. The server is the only writer of room state.
type RoomStore struct {
	mu    sync.RWMutex
	rooms []models.Room
}

// Replace swaps in a new snapshot wholesale, preserving server order.
func (s *RoomStore) Replace(rooms []models.Room) {
	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()
}

// Snapshot returns a copy of the current room list.
func (s *RoomStore) Snapshot() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Find returns the room with the given id from the current snapshot.
func (s *RoomStore) Find(id string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// Lister is the read side of the backend room surface.
type Lister interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// RoomWatcher polls the room listing and maintains a RoomStore. A failed
// poll leaves the previous snapshot untouched and the loop running.
type RoomWatcher struct {
	store  *RoomStore
	api    Lister
	poller *poller.Poller
}

// NewRoomWatcher builds a watcher polling api on the given interval.
func NewRoomWatcher(api Lister, interval time.Duration, log *logrus.Logger) *RoomWatcher {
	w := &RoomWatcher{
		store: &RoomStore{},
		api:   api,
	}
	w.poller = &poller.Poller{
		Interval: interval,
		Fetch:    w.refresh,
		Log:      log,
	}
	return w
}

// Run polls until ctx is canceled. In-flight results that complete after
// cancellation are discarded, never applied.
func (w *RoomWatcher) Run(ctx context.Context) {
	w.poller.Run(ctx)
}

// Store exposes the snapshot store, e.g. for a stream subscriber that feeds
// the same replace-only reconciliation path.
func (w *RoomWatcher) Store() *RoomStore {
	return w.store
}

// Rooms returns the current snapshot.
func (w *RoomWatcher) Rooms() []models.Room {
	return w.store.Snapshot()
}

func (w *RoomWatcher) refresh(ctx context.Context) error {
	rooms, err := w.api.ListRooms(ctx)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	w.store.Replace(rooms)
	return nil
}
