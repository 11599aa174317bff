// internal/botstub/server.go

// Package botstub is an in-memory double of the lobby-bot backend. It serves
// the whole REST surface the client consumes, plus the /room/ws snapshot
// stream, with the same status codes and body shapes as the real backend.
// Tests drive it directly; cmd/stubd runs it for local development.
package botstub

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

// DefaultEnums returns the canonical valid-value sets the stub serves from
// /enums, matching the real bot's richer late revision.
func DefaultEnums() models.BotEnums {
	return models.BotEnums{
		BotMode:    []string{"AUTO_HOST", "AUTO_ROTATE_MAP"},
		PlayMode:   []string{"OSU", "TAIKO", "CATCH_THE_BEAT", "MANIA"},
		ScoreMode:  []string{"SCORE", "ACCURACY", "COMBO", "SCORE_V2"},
		TeamMode:   []string{"HEAD_TO_HEAD", "TAG_COOP", "TEAM_VS", "TAG_VS"},
		RankStatus: []string{"RANKED", "APPROVED", "QUALIFIED", "LOVED", "PENDING", "WIP", "GRAVEYARD"},
	}
}

// Options configures the stub.
type Options struct {
	AdminUser string
	AdminPass string

	// AutoAdvance promotes room lifecycle flags on this interval. Zero
	// means lifecycle only moves through AdvanceAll, which tests prefer
	// for determinism.
	AutoAdvance time.Duration

	Log *logrus.Logger
}

// Server holds all stub state in process memory, like the real bot's room
// manager.
type Server struct {
	log  *logrus.Logger
	opts Options

	passHash   string
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey

	mu         sync.Mutex
	rooms      []*models.Room
	ircRunning bool
	subs       map[chan []byte]struct{}
}

// New builds a stub with a fresh signing key pair and the hashed operator
// credential.
func New(opts Options) (*Server, error) {
	if opts.AdminUser == "" {
		opts.AdminUser = "operator"
	}
	if opts.AdminPass == "" {
		opts.AdminPass = "operator"
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
	}

	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	hash, err := hashPassword(opts.AdminPass)
	if err != nil {
		return nil, fmt.Errorf("failed to hash operator password: %w", err)
	}

	return &Server{
		log:        opts.Log,
		opts:       opts,
		passHash:   hash,
		privateKey: priv,
		publicKey:  pub,
		subs:       make(map[chan []byte]struct{}),
	}, nil
}

// Handler returns the stub's HTTP surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(logMiddleware(s.log))

	r.Get("/enums", s.handleEnums)

	r.Get("/room", s.handleListRooms)
	r.Post("/room", s.handleCreateRoom)
	r.Get("/room/ws", s.handleRoomStream)
	r.Get("/room/{id}", s.handleGetRoom)
	r.Put("/room/{id}", s.handleUpdateRoom)
	r.Delete("/room/{id}", s.handleDeleteRoom)

	r.Get("/session", s.handleSession)
	r.Post("/session/login", s.handleLogin)
	r.Post("/session/logout", s.handleLogout)

	r.Get("/start", s.handleStartIRC)
	r.Get("/stop", s.handleStopIRC)

	return r
}

// IRCRunning reports the stub's IRC flag.
func (s *Server) IRCRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ircRunning
}

func (s *Server) handleEnums(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DefaultEnums())
}

func (s *Server) handleStartIRC(w http.ResponseWriter, r *http.Request) {
	s.setIRC(w, r, true)
}

func (s *Server) handleStopIRC(w http.ResponseWriter, r *http.Request) {
	s.setIRC(w, r, false)
}

func (s *Server) setIRC(w http.ResponseWriter, r *http.Request, running bool) {
	if _, err := s.authenticate(r); err != nil {
		writeError(w, http.StatusUnauthorized, "Admin session required")
		return
	}
	s.mu.Lock()
	s.ircRunning = running
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"is_irc_running": running})
}

// authenticate parses the session cookie and returns the operator username.
func (s *Server) authenticate(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", err
	}
	return s.parseToken(cookie.Value)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"status": status, "message": message})
}
