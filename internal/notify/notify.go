// Package notify is the toast surface: every user-visible outcome of a core
// operation goes through a Notifier. Production wires the Log sink; tests
// assert on messages with a Recorder.
package notify

import (
	"log"
	"sync"
)

// Severity classifies a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// Notification is one transient user-facing message.
type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Notifier receives the outcome of an operation as soon as it is known.
type Notifier interface {
	Notify(severity Severity, message string)
}

// Func adapts a function to the Notifier interface.
type Func func(Severity, string)

func (f Func) Notify(s Severity, msg string) { f(s, msg) }

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) Notify(s Severity, msg string) {
	log.Printf("[%s] %s", s, msg)
}

// Recorder accumulates notifications for later inspection.
type Recorder struct {
	mu   sync.Mutex
	logs []Notification
}

func (r *Recorder) Notify(s Severity, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, Notification{Severity: s, Message: msg})
}

// All returns the recorded notifications in order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.logs))
	copy(out, r.logs)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.logs) == 0 {
		return Notification{}, false
	}
	return r.logs[len(r.logs)-1], true
}

// Reset discards recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = nil
}
