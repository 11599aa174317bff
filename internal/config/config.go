// internal/config/config.go
package config

import (
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config holds the client configuration, read from the environment. Mains
// load a .env file first via godotenv/autoload, so a local .env works too.
type Config struct {
	// APIBaseURL is the backend REST base, e.g. http://localhost:8000.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8000"`

	// PollInterval drives both the room-list poller and the session
	// heartbeat.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"1s"`

	// HTTPTimeout bounds individual requests. A hung request only delays
	// its own poller; ticks keep firing and get skipped while in flight.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// StreamEnabled lets `botctl watch` try the websocket snapshot stream
	// before falling back to polling.
	StreamEnabled bool `envconfig:"STREAM_ENABLED" default:"false"`
}

var (
	c    Config
	once sync.Once
)

// Get processes the environment exactly once and returns the shared config.
func Get() *Config {
	once.Do(func() {
		if err := envconfig.Process("OSUBOT", &c); err != nil {
			log.Fatalf("failed to process config: %v", err)
		}
	})
	return &c
}
