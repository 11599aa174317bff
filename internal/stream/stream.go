// internal/stream/stream.go

// Package stream subscribes to the backend's websocket room-snapshot feed.
// It is a push substitution for the room-list poller with identical
// reconciliation: every frame is a full listing that replaces the local
// snapshot wholesale. Callers fall back to polling when the dial fails.
package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
	"github.com/astrolabio1417/legacy-osu-bot/internal/watch"
)

// Subscriber feeds a RoomStore from the /room/ws snapshot stream.
type Subscriber struct {
	// URL is the full websocket endpoint, e.g. ws://localhost:8000/room/ws.
	URL   string
	Store *watch.RoomStore
	Log   *logrus.Logger
}

// Run dials the stream and applies snapshots until ctx is canceled or the
// connection drops. Frames arriving after cancellation are discarded.
func (s *Subscriber) Run(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, s.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial room stream %s: %w", s.URL, err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "subscriber stopping")

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("room stream read: %w", err)
		}
		if typ != websocket.MessageText {
			continue
		}

		var rooms []models.Room
		if err := json.Unmarshal(data, &rooms); err != nil {
			if s.Log != nil {
				s.Log.WithError(err).Warn("dropping undecodable room snapshot frame")
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.Store.Replace(rooms)
	}
}
