package usecase

import "log"

// Notifier receives non-blocking, user-visible notifications, the toast
// channel of the studio. Failures are notified and abandoned; nothing here
// retries.
type Notifier interface {
	Notify(level, message string)
}

const (
	LevelInfo  = "info"
	LevelError = "error"
)

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(level, message string) {
	log.Printf("[studio:%s] %s", level, message)
}
