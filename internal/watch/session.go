// internal/watch/session.go
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
	"github.com/astrolabio1417/legacy-osu-bot/internal/poller"
)

// SessionGetter is the read side of the backend session surface.
type SessionGetter interface {
	GetSession(ctx context.Context) (models.Session, error)
}

// SessionWatcher is the heartbeat: the same overlap-suppressed polling
// discipline as the room watcher, applied to a single Session. Any failure,
// whether network, non-2xx or unauthenticated, collapses the local session
// to the anonymous default. It never fails open into a privileged state.
type SessionWatcher struct {
	mu      sync.RWMutex
	session models.Session

	api    SessionGetter
	poller *poller.Poller
}

// NewSessionWatcher builds a heartbeat polling api on the given interval.
func NewSessionWatcher(api SessionGetter, interval time.Duration, log *logrus.Logger) *SessionWatcher {
	w := &SessionWatcher{
		session: models.AnonymousSession(),
		api:     api,
	}
	w.poller = &poller.Poller{
		Interval: interval,
		Fetch:    w.refresh,
		Log:      log,
	}
	return w
}

// Run polls until ctx is canceled.
func (w *SessionWatcher) Run(ctx context.Context) {
	w.poller.Run(ctx)
}

// Session returns the latest observed session.
func (w *SessionWatcher) Session() models.Session {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.session
}

// Admin reports whether the latest heartbeat saw an admin session. Advisory
// only: the backend re-authorizes privileged requests on its own.
func (w *SessionWatcher) Admin() bool {
	return w.Session().IsAdmin
}

func (w *SessionWatcher) refresh(ctx context.Context) error {
	session, err := w.api.GetSession(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		w.set(models.AnonymousSession())
		return err
	}
	w.set(session)
	return nil
}

func (w *SessionWatcher) set(s models.Session) {
	w.mu.Lock()
	w.session = s
	w.mu.Unlock()
}
