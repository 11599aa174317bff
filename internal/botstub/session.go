// internal/botstub/session.go
package botstub

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

const sessionCookie = "session"

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	writeJSON(w, http.StatusOK, models.Session{
		Username:     username,
		IsAdmin:      true,
		IsIRCRunning: s.IRCRunning(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid login payload")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.opts.AdminUser)) == 1
	passOK, err := checkPassword(creds.Password, s.passHash)
	if err != nil {
		s.log.WithError(err).Error("password verification failed")
		writeError(w, http.StatusInternalServerError, "Login Failed")
		return
	}
	if !userOK || !passOK {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := s.newToken(creds.Username)
	if err != nil {
		s.log.WithError(err).Error("failed to sign session token")
		writeError(w, http.StatusInternalServerError, "Login Failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, models.LoginResponse{
		Session: models.Session{
			Username:     creds.Username,
			IsAdmin:      true,
			IsIRCRunning: s.IRCRunning(),
		},
		Message: "Login Success",
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
