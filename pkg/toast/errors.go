package toast

import "errors"

var (
	// ErrUnknownKind is returned when a toast kind is outside the supported set.
	ErrUnknownKind = errors.New("toast: unknown kind")

	// ErrEmptyMessage is returned when a toast has no visible text.
	ErrEmptyMessage = errors.New("toast: message is empty")

	// ErrCenterClosed is returned by Notify after the center has been closed.
	ErrCenterClosed = errors.New("toast: center is closed")
)
