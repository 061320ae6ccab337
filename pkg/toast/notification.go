package toast

import "time"

// Notification is a single transient toast owned by a Center.
// Values handed to callers are copies; mutating them has no effect on the center.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// Style returns the icon and accent color for the notification's kind.
func (n Notification) Style() Style {
	return n.Kind.Style()
}

// Visible reports whether the toast is on screen, including while it animates out.
func (n Notification) Visible() bool {
	switch n.State {
	case StateEntering, StateSteady, StateDismissing:
		return true
	default:
		return false
	}
}

// Snapshot is a point-in-time copy of a center's container.
// The zero Snapshot stands for a session without a center.
type Snapshot struct {
	Center    string         `json:"center,omitempty"`
	Seq       uint64         `json:"seq"`
	Container bool           `json:"container"`
	Toasts    []Notification `json:"toasts"`
}

// Covers reports whether ev is already reflected in s. Events of another
// center, or of the same center after s was taken, are not.
func (s Snapshot) Covers(ev Event) bool {
	return s.Center != "" && ev.Center == s.Center && ev.Seq <= s.Seq
}
