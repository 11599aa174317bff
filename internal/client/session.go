// internal/client/session.go
package client

import (
	"context"
	"net/http"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

// GetSession returns the current cookie-authenticated session. An
// unauthenticated request fails with a 401 *APIError; callers collapse that
// to the anonymous session.
func (c *Client) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodGet, "/session", nil, &session)
	return session, err
}

// Login authenticates the operator. On success the session cookie lands in
// the client's jar and the established session is returned.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	creds := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	var resp models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/session/login", creds, &resp)
	return resp, err
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/session/logout", nil, nil)
}

// StartIRC asks the backend to open its IRC connection. Admin-only; the
// backend enforces that independently of the client's session view.
func (c *Client) StartIRC(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/start", nil, nil)
}

// StopIRC asks the backend to close its IRC connection. Admin-only.
func (c *Client) StopIRC(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/stop", nil, nil)
}
