package toast

import (
	"context"
	"time"
)

// EventType names a change in a center's container.
type EventType string

const (
	EventStylesRegistered EventType = "styles_registered"
	EventContainerCreated EventType = "container_created"
	EventToastAdded       EventType = "toast_added"
	EventToastSteady      EventType = "toast_steady"
	EventToastDismissing  EventType = "toast_dismissing"
	EventToastRemoved     EventType = "toast_removed"
	EventContainerRemoved EventType = "container_removed"
)

// Event describes one change. Toast is set for toast_* events only.
// Seq numbers the events of one center, starting at 1.
type Event struct {
	Type      EventType     `json:"type"`
	SessionID string        `json:"session_id,omitempty"`
	Center    string        `json:"center"`
	Seq       uint64        `json:"seq"`
	Toast     *Notification `json:"toast,omitempty"`
	At        time.Time     `json:"at"`
}

// Observer receives events in the order the center applies them.
// It is called with the center locked and must not call back into the center.
type Observer func(ctx context.Context, ev Event)

func eventForState(s State) (EventType, bool) {
	switch s {
	case StateEntering:
		return EventToastAdded, true
	case StateSteady:
		return EventToastSteady, true
	case StateDismissing:
		return EventToastDismissing, true
	case StateRemoved:
		return EventToastRemoved, true
	default:
		return "", false
	}
}
