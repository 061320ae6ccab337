package toast

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studentorbit/toastkit/pkg/logger"
)

// Center owns one notification container and every toast inside it.
// The container is created by the first Notify and torn down as soon as the
// last toast is removed. All methods are safe for concurrent use.
type Center struct {
	id         string
	clock      Clock
	observer   Observer
	logger     *slog.Logger
	newID      func() string
	enter      time.Duration
	display    time.Duration
	exit       time.Duration
	maxVisible int

	mu        sync.Mutex
	seq       uint64
	styled    bool
	container bool
	closed    bool
	entries   []*entry
}

type entry struct {
	n     Notification
	ctx   context.Context
	timer Timer
}

// NewCenter creates an empty center. No container exists until the first Notify.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		id:      uuid.NewString(),
		clock:   SystemClock(),
		logger:  slog.Default(),
		newID:   uuid.NewString,
		enter:   DefaultEnterDuration,
		display: DefaultDisplayDuration,
		exit:    DefaultExitDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify validates the request and appends a new toast to the container,
// creating the container first if needed. An empty kind means DefaultKind.
// The returned value is a copy taken when the toast entered the screen.
func (c *Center) Notify(ctx context.Context, message string, kind Kind) (Notification, error) {
	if kind == "" {
		kind = DefaultKind
	}
	if !kind.Valid() {
		return Notification{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if strings.TrimSpace(message) == "" {
		return Notification{}, ErrEmptyMessage
	}

	// Timers outlive the request that created the toast.
	ctx = context.WithoutCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Notification{}, ErrCenterClosed
	}

	c.registerStyles(ctx)
	c.ensureContainer(ctx)

	e := &entry{
		ctx: ctx,
		n: Notification{
			ID:        c.newID(),
			Message:   message,
			Kind:      kind,
			State:     StateCreated,
			CreatedAt: c.clock.Now(),
		},
	}
	c.entries = append(c.entries, e)
	c.apply(e, triggerShow)
	shown := e.n

	c.enforceCap()

	return shown, nil
}

// Success is shorthand for Notify with KindSuccess.
func (c *Center) Success(ctx context.Context, message string) (Notification, error) {
	return c.Notify(ctx, message, KindSuccess)
}

// Error is shorthand for Notify with KindError.
func (c *Center) Error(ctx context.Context, message string) (Notification, error) {
	return c.Notify(ctx, message, KindError)
}

// Info is shorthand for Notify with KindInfo.
func (c *Center) Info(ctx context.Context, message string) (Notification, error) {
	return c.Notify(ctx, message, KindInfo)
}

// Warning is shorthand for Notify with KindWarning.
func (c *Center) Warning(ctx context.Context, message string) (Notification, error) {
	return c.Notify(ctx, message, KindWarning)
}

// Snapshot returns the container state and live toasts in arrival order,
// stamped with the sequence number of the last event it reflects.
func (c *Center) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Center:    c.id,
		Seq:       c.seq,
		Container: c.container,
		Toasts:    make([]Notification, 0, len(c.entries)),
	}
	for _, e := range c.entries {
		s.Toasts = append(s.Toasts, e.n)
	}
	return s
}

// Len returns the number of toasts currently in the container.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops every pending timer and tears the container down.
// Close is idempotent.
func (c *Center) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	for _, e := range c.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	c.entries = nil

	if c.container {
		c.container = false
		c.emit(context.Background(), EventContainerRemoved, nil)
	}
	return nil
}

// registerStyles runs once per center. Must be called with lock held.
func (c *Center) registerStyles(ctx context.Context) {
	if c.styled {
		return
	}
	c.styled = true
	c.emit(ctx, EventStylesRegistered, nil)
}

// Must be called with lock held.
func (c *Center) ensureContainer(ctx context.Context) {
	if c.container {
		return
	}
	c.container = true
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Notification container created")
	c.emit(ctx, EventContainerCreated, nil)
}

// apply moves e along trigger t, emits the matching event and schedules the
// next step. Stale triggers are dropped. Must be called with lock held.
func (c *Center) apply(e *entry, t trigger) {
	next, ok := nextState(e.n.State, t)
	if !ok {
		return
	}
	e.n.State = next

	if typ, ok := eventForState(next); ok {
		n := e.n
		c.emit(e.ctx, typ, &n)
	}

	switch next {
	case StateEntering:
		e.timer = c.clock.AfterFunc(c.enter, c.fire(e, triggerEntered))
	case StateSteady:
		remaining := c.display - c.clock.Now().Sub(e.n.CreatedAt)
		e.timer = c.clock.AfterFunc(max(remaining, 0), c.fire(e, triggerExpire))
	case StateDismissing:
		e.timer = c.clock.AfterFunc(c.exit, c.fire(e, triggerExited))
	case StateRemoved:
		c.remove(e)
	}
}

func (c *Center) fire(e *entry, t trigger) func() {
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		c.apply(e, t)
	}
}

// Must be called with lock held.
func (c *Center) remove(e *entry) {
	for i, cur := range c.entries {
		if cur == e {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	e.timer = nil

	if len(c.entries) == 0 && c.container {
		c.container = false
		c.logger.LogAttrs(e.ctx, slog.LevelDebug, "Notification container removed")
		c.emit(e.ctx, EventContainerRemoved, nil)
	}
}

// enforceCap starts the exit of the oldest toasts beyond maxVisible.
// Must be called with lock held.
func (c *Center) enforceCap() {
	if c.maxVisible <= 0 {
		return
	}

	active := 0
	for _, e := range c.entries {
		if e.n.State != StateDismissing {
			active++
		}
	}

	for _, e := range c.entries {
		if active <= c.maxVisible {
			return
		}
		if e.n.State == StateDismissing {
			continue
		}
		if e.timer != nil {
			e.timer.Stop()
		}
		c.logger.LogAttrs(e.ctx, slog.LevelDebug, "Toast evicted by visible limit",
			logger.ToastID(e.n.ID),
			slog.Int("max_visible", c.maxVisible),
		)
		c.apply(e, triggerEvict)
		active--
	}
}

// Must be called with lock held.
func (c *Center) emit(ctx context.Context, typ EventType, n *Notification) {
	c.seq++
	if c.observer == nil {
		return
	}
	c.observer(ctx, Event{
		Type:   typ,
		Center: c.id,
		Seq:    c.seq,
		Toast:  n,
		At:     c.clock.Now(),
	})
}
