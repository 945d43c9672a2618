package events

import (
	"time"

	"github.com/brightpath/tutor/internal/logging"
)

// Type identifies the engine events the notification/reporting layer
// consumes. Delivery is one-way: the core never depends on it succeeding.
type Type string

const (
	MasteryAchieved  Type = "mastery_achieved"
	SessionCompleted Type = "session_completed"
	PlanAdvanced     Type = "plan_advanced"
)

// Event is one engine occurrence worth telling the outside world about.
type Event struct {
	Type       Type           `json:"type"`
	StudentID  string         `json:"studentId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Fields     map[string]any `json:"fields,omitempty"`
}

// Publisher delivers events to the notification/reporting layer.
// Implementations must not block the caller and must swallow delivery
// failures (logging them), never propagating to the engine.
type Publisher interface {
	Publish(ev Event)
}

// LogPublisher writes events to the structured log. It stands in for a
// real delivery channel and is the default wiring.
type LogPublisher struct {
	log *logging.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(log *logging.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	p.log.Info("engine event",
		"type", string(ev.Type),
		"studentId", ev.StudentID,
		"fields", ev.Fields,
	)
}

// Async wraps a publisher so delivery happens off the caller's goroutine,
// with panics contained and logged.
type Async struct {
	inner Publisher
	log   *logging.Logger
}

// NewAsync wraps inner in fire-and-forget delivery.
func NewAsync(inner Publisher, log *logging.Logger) *Async {
	return &Async{inner: inner, log: log}
}

func (a *Async) Publish(ev Event) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.log.Error("event publisher panicked", "type", string(ev.Type), "panic", r)
			}
		}()
		a.inner.Publish(ev)
	}()
}
