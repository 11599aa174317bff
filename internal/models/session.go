// internal/models/session.go
package models

// Session is the operator's authenticated identity as reported by the
// backend. It is entirely server-derived and advisory: the backend
// re-authorizes every privileged request regardless of what the client
// believes.
type Session struct {
	Username     string `json:"username"`
	IsAdmin      bool   `json:"is_admin"`
	IsIRCRunning bool   `json:"is_irc_running"`
}

// AnonymousSession is the fail-closed default the client collapses to on any
// failed session fetch.
func AnonymousSession() Session {
	return Session{}
}

// LoginResponse is the /session/login payload: the established session plus
// an optional operator-facing message.
type LoginResponse struct {
	Session
	Message string `json:"message,omitempty"`
}
