// internal/client/client.go

// Package client implements the typed REST client for the lobby-bot backend.
// All operations are single round-trips with no retries; non-2xx responses
// surface as *APIError regardless of body shape.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// APIError is a non-2xx backend response. Message carries the backend's
// optional {message} field when present, so the operator sees the backend's
// own wording instead of a generic failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// IsAuthError reports whether err is a 401/403-equivalent API failure.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// Client talks to one backend instance. The embedded cookie jar holds the
// session cookie, so credentialed endpoints work after Login.
type Client struct {
	base *url.URL
	http *http.Client
	log  *logrus.Logger
}

// New builds a Client for the given base URL. Timeout zero means the
// transport default.
func New(baseURL string, timeout time.Duration, logger *logrus.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
		log:  logger,
	}, nil
}

// BaseURL returns the configured backend base.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// do issues one request. A non-nil body is sent as JSON; a non-nil out is
// decoded from a 2xx response body, and a body that fails to decode is an
// error, so callers never mistake garbage for an empty result. Endpoints
// that answer with bare acks pass a nil out and any body is ignored.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: decodeMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			c.log.WithFields(logrus.Fields{
				"method": method,
				"path":   path,
			}).WithError(err).Warn("undecodable success body")
			return fmt.Errorf("%s %s: failed to decode response body: %w", method, path, err)
		}
	}
	return nil
}

// decodeMessage pulls the optional {message} field out of an error body.
func decodeMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) != nil {
		return ""
	}
	return body.Message
}
