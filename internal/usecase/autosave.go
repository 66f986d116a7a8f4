package usecase

import (
	"sync"
	"time"
)

// Autosaver mirrors the current document into the local store on a fixed
// interval while the editor is open. The interval is the only retry
// mechanism: a failed tick is logged and the next one tries again.
type Autosaver struct {
	interval time.Duration
	save     func() error
	notify   Notifier

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewAutosaver(interval time.Duration, save func() error, notify Notifier) *Autosaver {
	return &Autosaver{interval: interval, save: save, notify: notify}
}

// Start begins the tick loop. Idempotent while running.
func (a *Autosaver) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stop != nil {
		return
	}
	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	go a.loop(a.stop, a.done)
}

func (a *Autosaver) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := a.save(); err != nil {
				a.notify.Notify(LevelError, "autosave failed: "+err.Error())
			}
		}
	}
}

// Stop tears the timer down and waits for an in-progress tick to finish. No
// tick runs after Stop returns.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	stop, done := a.stop, a.done
	a.stop, a.done = nil, nil
	a.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}
