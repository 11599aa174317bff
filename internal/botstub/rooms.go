// internal/botstub/rooms.go
package botstub

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rooms := s.snapshotLocked()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	room := s.findLocked(id)
	if room == nil {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "No room found!")
		return
	}
	out := *room
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var form models.RoomForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid room payload")
		return
	}

	room := &models.Room{
		ID:      uuid.NewString(),
		Skips:   []string{},
		Users:   []string{},
		Beatmap: form.Beatmap,
	}
	applyForm(room, form)

	s.mu.Lock()
	s.rooms = append(s.rooms, room)
	out := *room
	s.mu.Unlock()
	s.broadcast()

	if s.opts.AutoAdvance > 0 {
		go s.autoAdvance(out.ID)
	}

	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing room_id on data")
		return
	}

	var form models.RoomForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid room payload")
		return
	}

	s.mu.Lock()
	room := s.findLocked(id)
	if room == nil {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "No room found!")
		return
	}
	applyForm(room, form)
	room.IsConfigured = false
	out := *room
	s.mu.Unlock()
	s.broadcast()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	idx := -1
	for i, room := range s.rooms {
		if room.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "No room found!")
		return
	}
	s.rooms = append(s.rooms[:idx], s.rooms[idx+1:]...)
	s.mu.Unlock()
	s.broadcast()

	w.WriteHeader(http.StatusNoContent)
}

// AdvanceAll promotes the first unset lifecycle flag of every room, in the
// order connected, created, configured. Tests use it in place of the real
// bot's IRC progress.
func (s *Server) AdvanceAll() {
	s.mu.Lock()
	for _, room := range s.rooms {
		advance(room)
	}
	s.mu.Unlock()
	s.broadcast()
}

// autoAdvance walks one room through its whole lifecycle on a timer.
func (s *Server) autoAdvance(id string) {
	for i := 0; i < 3; i++ {
		time.Sleep(s.opts.AutoAdvance)
		s.mu.Lock()
		room := s.findLocked(id)
		if room == nil {
			s.mu.Unlock()
			return
		}
		advance(room)
		s.mu.Unlock()
		s.broadcast()
	}
}

func advance(room *models.Room) {
	switch {
	case !room.IsConnected:
		room.IsConnected = true
	case !room.IsCreated:
		room.IsCreated = true
	default:
		room.IsConfigured = true
	}
}

// applyForm copies the mutable configuration subset onto a room. The
// password is write-only and never stored on the listing.
func applyForm(room *models.Room, form models.RoomForm) {
	room.Name = form.Name
	room.RoomSize = form.RoomSize
	room.BotMode = form.BotMode
	room.PlayMode = form.PlayMode
	room.ScoreMode = form.ScoreMode
	room.TeamMode = form.TeamMode
	room.Beatmap = form.Beatmap
}

func (s *Server) snapshotLocked() []models.Room {
	rooms := make([]models.Room, len(s.rooms))
	for i, room := range s.rooms {
		rooms[i] = *room
	}
	return rooms
}

func (s *Server) findLocked(id string) *models.Room {
	for _, room := range s.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}
