package toast_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/studentorbit/toastkit/pkg/toast"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	events []toast.Event
}

func (r *recorder) observe(_ context.Context, ev toast.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) all() []toast.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]toast.Event(nil), r.events...)
}

func (r *recorder) types() []toast.EventType {
	evs := r.all()
	out := make([]toast.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) count(typ toast.EventType) int {
	n := 0
	for _, ev := range r.all() {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// toastIDs returns the IDs carried by events of type typ, in order.
func (r *recorder) toastIDs(typ toast.EventType) []string {
	var ids []string
	for _, ev := range r.all() {
		if ev.Type == typ && ev.Toast != nil {
			ids = append(ids, ev.Toast.ID)
		}
	}
	return ids
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newTestCenter(t *testing.T, opts ...toast.Option) (*toast.Center, *toast.ManualClock, *recorder) {
	t.Helper()

	clock := toast.NewManualClock(epoch)
	rec := &recorder{}
	base := []toast.Option{
		toast.WithClock(clock),
		toast.WithObserver(rec.observe),
		toast.WithIDGenerator(sequentialIDs()),
		toast.WithLogger(slog.New(slog.DiscardHandler)),
	}
	c := toast.NewCenter(append(base, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c, clock, rec
}

func states(s toast.Snapshot) []toast.State {
	out := make([]toast.State, len(s.Toasts))
	for i, n := range s.Toasts {
		out[i] = n.State
	}
	return out
}
