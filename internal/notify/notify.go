// Package notify delivers user-facing events (the toasts of a UI) to one or
// more sinks. Delivery is best effort: sink failures are logged and never
// returned to the caller.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// Kind identifies what happened.
type Kind string

const (
	LoginSucceeded        Kind = "login_succeeded"
	LoginFailed           Kind = "login_failed"
	LoggedOut             Kind = "logged_out"
	RegistrationSucceeded Kind = "registration_succeeded"
	RegistrationFailed    Kind = "registration_failed"
	JobPosted             Kind = "job_posted"
	PermissionDenied      Kind = "permission_denied"
	ProfileNotFound       Kind = "profile_not_found"
	ProfileUpdated        Kind = "profile_updated"
	DataExported          Kind = "data_exported"
)

// Variant is the display style of an event.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Event is a single notification.
type Event struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	UserID      string    `json:"userId,omitempty"`
	At          time.Time `json:"at"`
}

// Notifier is the event sink.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Info builds a default-variant event stamped with the current time.
func Info(kind Kind, title, description string) Event {
	return Event{Kind: kind, Title: title, Description: description, Variant: VariantDefault, At: time.Now().UTC()}
}

// Failure builds a destructive-variant event stamped with the current time.
func Failure(kind Kind, title, description string) Event {
	return Event{Kind: kind, Title: title, Description: description, Variant: VariantDestructive, At: time.Now().UTC()}
}

// For attaches the affected user id.
func (e Event) For(userID string) Event {
	e.UserID = userID
	return e
}

// Log writes events to a structured logger.
type Log struct {
	log *slog.Logger
}

// NewLog returns a Log notifier. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{log: logger.With("component", "notify")}
}

func (l *Log) Notify(ctx context.Context, ev Event) {
	level := slog.LevelInfo
	if ev.Variant == VariantDestructive {
		level = slog.LevelWarn
	}
	l.log.Log(ctx, level, ev.Title,
		"kind", ev.Kind,
		"description", ev.Description,
		"user_id", ev.UserID,
	)
}

// Multi fans an event out to every sink in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, ev Event) {
	for _, n := range m {
		n.Notify(ctx, ev)
	}
}

// Discard drops every event.
type Discard struct{}

func (Discard) Notify(context.Context, Event) {}
