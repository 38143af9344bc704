package notify

import (
	"context"
	"log/slog"
)

// Kind classifies a user-facing notification.
type Kind int

const (
	Info Kind = iota
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notifier receives user-facing messages.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Func adapts a plain function to Notifier.
type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) { f(kind, message) }

// Multi fans each notification out to every non-nil notifier.
func Multi(notifiers ...Notifier) Notifier {
	var out multi
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

type multi []Notifier

func (m multi) Notify(kind Kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

// LogNotifier records notifications in the structured log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(kind Kind, message string) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), kind.level(), message, "kind", kind.String())
}

func (k Kind) level() slog.Level {
	switch k {
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
