// internal/botstub/stream.go
package botstub

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// handleRoomStream serves the push channel: every subscriber gets the
// current listing on connect and a fresh full listing after each mutation.
// Frames are whole snapshots so the client applies the same replace-only
// reconciliation it uses for polling.
func (s *Server) handleRoomStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.log.WithError(err).Warn("room stream accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream handler finished")

	outbox := make(chan []byte, 8)

	s.mu.Lock()
	s.subs[outbox] = struct{}{}
	initial, marshalErr := json.Marshal(s.snapshotLocked())
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.subs, outbox)
		s.mu.Unlock()
	}()

	if marshalErr != nil {
		s.log.WithError(marshalErr).Error("failed to marshal initial snapshot")
		return
	}

	ctx := r.Context()
	if err := writeFrame(ctx, conn, initial); err != nil {
		return
	}

	// The client never sends; reading only detects the close.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-readDone:
			return
		case frame := <-outbox:
			if err := writeFrame(ctx, conn, frame); err != nil {
				return
			}
		}
	}
}

// broadcast queues the current snapshot for every subscriber. Slow
// subscribers get their stale queued frame superseded rather than blocking
// the mutating request.
func (s *Server) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.subs) == 0 {
		return
	}
	frame, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		s.log.WithError(err).Error("failed to marshal room snapshot")
		return
	}
	for outbox := range s.subs {
		select {
		case outbox <- frame:
		default:
			// Drop the oldest queued frame; a later full snapshot
			// supersedes it anyway.
			select {
			case <-outbox:
			default:
			}
			select {
			case outbox <- frame:
			default:
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, frame)
}
