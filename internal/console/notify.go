// internal/console/notify.go
package console

import log "github.com/sirupsen/logrus"

// Notifier receives operator-visible outcome notifications, the console
// equivalent of the web client's toasts.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// LogNotifier reports outcomes through logrus.
type LogNotifier struct {
	Log *log.Logger
}

func (n LogNotifier) Success(msg string) { n.logger().Info(msg) }
func (n LogNotifier) Failure(msg string) { n.logger().Error(msg) }

func (n LogNotifier) logger() *log.Logger {
	if n.Log != nil {
		return n.Log
	}
	return log.StandardLogger()
}
