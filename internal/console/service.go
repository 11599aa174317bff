// internal/console/service.go

// Package console wires user intent to the backend: validated CRUD calls
// with notification-based outcome reporting. Nothing here writes the local
// room store; the next poll cycle is the only path by which the operator
// observes the effect of a call.
package console

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/client"
	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
	"github.com/astrolabio1417/legacy-osu-bot/internal/watch"
)

// API is the mutating slice of the backend surface the service drives.
// *client.Client satisfies it.
type API interface {
	CreateRoom(ctx context.Context, form models.RoomForm) (models.Room, error)
	UpdateRoom(ctx context.Context, id string, form models.RoomForm) (models.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	StartIRC(ctx context.Context) error
	StopIRC(ctx context.Context) error
}

// RoomService exposes the operator actions. Each mutating call is a single
// round-trip with no retry; failure comes back as false plus a notification
// so the operator can retry manually with the draft intact.
type RoomService struct {
	api    API
	rooms  *watch.RoomStore
	enums  models.EnumSource
	notify Notifier
	log    *logrus.Logger
}

// NewRoomService builds the service. rooms supplies the latest snapshot for
// action gating; enums supplies the fetched valid-value sets for validation.
func NewRoomService(api API, rooms *watch.RoomStore, enums models.EnumSource, notify Notifier, log *logrus.Logger) *RoomService {
	if log == nil {
		log = logrus.New()
	}
	return &RoomService{api: api, rooms: rooms, enums: enums, notify: notify, log: log}
}

// Create validates and submits a new room. The caller keeps the draft form
// on failure.
func (s *RoomService) Create(ctx context.Context, form models.RoomForm) bool {
	if err := form.Validate(s.enums); err != nil {
		s.notify.Failure(err.Error())
		return false
	}
	if _, err := s.api.CreateRoom(ctx, form); err != nil {
		s.notify.Failure(failureMessage(err, "Submission Failed"))
		return false
	}
	s.notify.Success("Room Created")
	return true
}

// Update validates and submits a configuration change for an existing room.
// Rooms the server has not yet connected and created are refused locally,
// since the backend rejects such requests anyway.
func (s *RoomService) Update(ctx context.Context, id string, form models.RoomForm) bool {
	room, ok := s.rooms.Find(id)
	if !ok {
		s.notify.Failure("Room not found")
		return false
	}
	if !room.CanModify() {
		s.notify.Failure("Room is not ready for changes")
		return false
	}
	if err := form.Validate(s.enums); err != nil {
		s.notify.Failure(err.Error())
		return false
	}
	if _, err := s.api.UpdateRoom(ctx, id, form); err != nil {
		s.notify.Failure(failureMessage(err, "Update Failed"))
		return false
	}
	s.notify.Success("Update Success")
	return true
}

// Delete asks the backend to close a room. Best-effort: failures are logged
// and notified but never propagated, since the poller reflects the eventual
// server state either way.
func (s *RoomService) Delete(ctx context.Context, id string) {
	// An id missing from the snapshot is submitted anyway: the snapshot may
	// simply be stale, and the backend answers authoritatively either way.
	if room, ok := s.rooms.Find(id); ok && !room.CanModify() {
		s.notify.Failure("Room is not ready for changes")
		return
	}
	if err := s.api.DeleteRoom(ctx, id); err != nil {
		s.log.WithError(err).WithField("room_id", id).Warn("room deletion failed")
		s.notify.Failure(failureMessage(err, "Deletion Failed"))
		return
	}
	s.notify.Success("Deletion Success")
}

// Login authenticates the operator and notifies the outcome, surfacing the
// backend's own message when it provides one.
func (s *RoomService) Login(ctx context.Context, username, password string) bool {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.notify.Failure(failureMessage(err, "Login Failed"))
		return false
	}
	if resp.Message != "" {
		s.notify.Success(resp.Message)
	} else {
		s.notify.Success("Login Success")
	}
	return true
}

// Logout ends the session.
func (s *RoomService) Logout(ctx context.Context) bool {
	if err := s.api.Logout(ctx); err != nil {
		s.notify.Failure(failureMessage(err, "Something went wrong"))
		return false
	}
	s.notify.Success("You have been logged out!")
	return true
}

// StartIRC asks the backend to open its IRC connection, regardless of the
// observed state. The admin check is advisory; the backend re-authorizes.
func (s *RoomService) StartIRC(ctx context.Context, session models.Session) bool {
	return s.setIRC(ctx, session, true)
}

// StopIRC asks the backend to close its IRC connection.
func (s *RoomService) StopIRC(ctx context.Context, session models.Session) bool {
	return s.setIRC(ctx, session, false)
}

// ToggleIRC flips the connection away from the state the given session view
// last observed.
func (s *RoomService) ToggleIRC(ctx context.Context, session models.Session) bool {
	return s.setIRC(ctx, session, !session.IsIRCRunning)
}

func (s *RoomService) setIRC(ctx context.Context, session models.Session, running bool) bool {
	if !session.IsAdmin {
		s.notify.Failure("Admin session required")
		return false
	}

	verb := "stop"
	var err error
	if running {
		verb = "start"
		err = s.api.StartIRC(ctx)
	} else {
		err = s.api.StopIRC(ctx)
	}
	if err != nil {
		s.notify.Failure(failureMessage(err, "IRC "+verb+" failed"))
		return false
	}
	s.notify.Success("IRC " + verb + " requested")
	return true
}

// failureMessage prefers the backend-supplied message over the generic
// fallback.
func failureMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
