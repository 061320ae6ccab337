package logger

import (
	"log/slog"
	"time"
)

// optionalString drops the attribute when v is empty.
func optionalString(key, v string) slog.Attr {
	if v == "" {
		return slog.Attr{}
	}
	return slog.String(key, v)
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr { return optionalString("request_id", id) }

// SessionID records the page session the log line belongs to.
func SessionID(id string) slog.Attr { return optionalString("session_id", id) }

func ToastID(id string) slog.Attr { return slog.String("toast_id", id) }

// Kind records a toast kind.
func Kind(kind string) slog.Attr { return slog.String("kind", kind) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr { return slog.String("component", name) }
