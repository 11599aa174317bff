// internal/botclient/app.go

// Package botclient composes the REST client, the watchers, the enum cache
// and the console service into one application object for the CLI.
package botclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/client"
	"github.com/astrolabio1417/legacy-osu-bot/internal/config"
	"github.com/astrolabio1417/legacy-osu-bot/internal/console"
	"github.com/astrolabio1417/legacy-osu-bot/internal/enums"
	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
	"github.com/astrolabio1417/legacy-osu-bot/internal/stream"
	"github.com/astrolabio1417/legacy-osu-bot/internal/watch"
)

// App owns one backend connection and the local state that shadows it.
type App struct {
	cfg     *config.Config
	log     *logrus.Logger
	api     *client.Client
	cache   *enums.Cache
	rooms   *watch.RoomWatcher
	session *watch.SessionWatcher
	service *console.RoomService
}

// New wires the application against cfg's backend.
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	api, err := client.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	if err != nil {
		return nil, err
	}

	cache := &enums.Cache{}
	rooms := watch.NewRoomWatcher(api, cfg.PollInterval, log)
	session := watch.NewSessionWatcher(api, cfg.PollInterval, log)
	service := console.NewRoomService(api, rooms.Store(), cache, console.LogNotifier{Log: log}, log)

	return &App{
		cfg:     cfg,
		log:     log,
		api:     api,
		cache:   cache,
		rooms:   rooms,
		session: session,
		service: service,
	}, nil
}

// Client exposes the raw REST client.
func (a *App) Client() *client.Client { return a.api }

// Service exposes the console service.
func (a *App) Service() *console.RoomService { return a.service }

// loadEnums fills the one-shot cache; a failure is reported but not fatal,
// validation simply rejects everything until a fetch succeeds.
func (a *App) loadEnums(ctx context.Context) {
	if err := a.cache.Load(ctx, a.api); err != nil {
		a.log.WithError(err).Warn("enum sets unavailable; form validation will reject all modes")
	}
}

// refreshRooms pulls one listing into the store so gating decisions see a
// current snapshot outside of watch mode.
func (a *App) refreshRooms(ctx context.Context) {
	rooms, err := a.api.ListRooms(ctx)
	if err != nil {
		a.log.WithError(err).Warn("failed to refresh room listing")
		return
	}
	a.rooms.Store().Replace(rooms)
}

// CreateRoom validates against the fetched enum sets and submits.
func (a *App) CreateRoom(ctx context.Context, form models.RoomForm) bool {
	a.loadEnums(ctx)
	return a.service.Create(ctx, form)
}

// UpdateRoom refreshes the snapshot for gating, then submits.
func (a *App) UpdateRoom(ctx context.Context, id string, form models.RoomForm) bool {
	a.loadEnums(ctx)
	a.refreshRooms(ctx)
	return a.service.Update(ctx, id, form)
}

// DeleteRoom refreshes the snapshot for gating, then submits best-effort.
func (a *App) DeleteRoom(ctx context.Context, id string) {
	a.refreshRooms(ctx)
	a.service.Delete(ctx, id)
}

// WatchView is one rendered frame of watch mode.
type WatchView struct {
	Rooms   []models.Room
	Session models.Session
}

// Watch runs the room watcher (or the stream subscriber, falling back to
// polling when the dial fails) alongside the session heartbeat, invoking
// render once per poll interval until ctx is canceled.
func (a *App) Watch(ctx context.Context, useStream bool, render func(WatchView)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.session.Run(ctx)

	if useStream {
		go func() {
			sub := &stream.Subscriber{
				URL:   a.streamURL(),
				Store: a.rooms.Store(),
				Log:   a.log,
			}
			if err := sub.Run(ctx); err != nil && ctx.Err() == nil {
				a.log.WithError(err).Warn("room stream unavailable; falling back to polling")
				a.rooms.Run(ctx)
			}
		}()
	} else {
		go a.rooms.Run(ctx)
	}

	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			render(WatchView{
				Rooms:   a.rooms.Rooms(),
				Session: a.session.Session(),
			})
		}
	}
}

// streamURL derives the websocket endpoint from the configured base URL.
func (a *App) streamURL() string {
	base := a.api.BaseURL()
	switch base.Scheme {
	case "https":
		base.Scheme = "wss"
	default:
		base.Scheme = "ws"
	}
	base.Path = strings.TrimRight(base.Path, "/") + "/room/ws"
	return base.String()
}

// LoadForm reads a RoomForm draft from a JSON file.
func LoadForm(path string) (models.RoomForm, error) {
	var form models.RoomForm
	if path == "" {
		return form, fmt.Errorf("missing -f form file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return form, fmt.Errorf("failed to read form file: %w", err)
	}
	if err := json.Unmarshal(data, &form); err != nil {
		return form, fmt.Errorf("failed to parse form file %s: %w", path, err)
	}
	return form, nil
}
