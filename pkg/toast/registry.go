package toast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/studentorbit/toastkit/pkg/broadcast"
	"github.com/studentorbit/toastkit/pkg/cache"
	"github.com/studentorbit/toastkit/pkg/logger"
)

// DefaultMaxSessions bounds the number of live centers held by a Registry.
const DefaultMaxSessions = 10000

// Registry hands out one Center per page session and publishes every center
// event to a broadcaster under the session ID as topic.
// Least recently used centers are closed once the session limit is exceeded.
type Registry struct {
	broadcaster broadcast.Broadcaster[Event]
	opts        []Option
	maxSessions int
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions *cache.LRUCache[string, *Center]
	closed   bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxSessions bounds the number of live centers. Non-positive values keep the default.
func WithMaxSessions(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.maxSessions = n
		}
	}
}

// WithCenterOptions sets the options applied to every center the registry creates.
func WithCenterOptions(opts ...Option) RegistryOption {
	return func(r *Registry) {
		r.opts = append(r.opts, opts...)
	}
}

// WithRegistryLogger sets the logger for the Registry and its centers.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates a registry publishing to b. A nil broadcaster disables publishing.
func NewRegistry(b broadcast.Broadcaster[Event], opts ...RegistryOption) *Registry {
	r := &Registry{
		broadcaster: b,
		maxSessions: DefaultMaxSessions,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.sessions = cache.NewLRUCache[string, *Center](r.maxSessions)
	// Close emits container_removed, which still reaches the session's stream.
	r.sessions.SetEvictCallback(func(id string, c *Center) {
		if err := c.Close(); err != nil {
			r.logger.LogAttrs(context.Background(), slog.LevelError, "Failed to close notification center",
				logger.SessionID(id),
				logger.Error(err),
			)
			return
		}
		r.logger.LogAttrs(context.Background(), slog.LevelDebug, "Notification center released",
			logger.SessionID(id),
		)
	})

	return r
}

// Get returns the center for sessionID, creating it on first use.
// It returns ErrCenterClosed once the registry has been closed.
func (r *Registry) Get(sessionID string) (*Center, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrCenterClosed
	}

	c, _ := r.sessions.GetOrCreate(sessionID, func() *Center {
		opts := make([]Option, 0, len(r.opts)+2)
		opts = append(opts, r.opts...)
		opts = append(opts,
			WithLogger(r.logger.With(logger.SessionID(sessionID))),
			WithObserver(r.publisher(sessionID)),
		)
		return NewCenter(opts...)
	})
	return c, nil
}

// Lookup returns the center for sessionID without creating one or refreshing its recency.
func (r *Registry) Lookup(sessionID string) (*Center, bool) {
	return r.sessions.Peek(sessionID)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// Subscribe returns a subscriber for the events of one session. Without a
// broadcaster the subscriber is already closed.
func (r *Registry) Subscribe(ctx context.Context, sessionID string) broadcast.Subscriber[Event] {
	if r.broadcaster == nil {
		return broadcast.Closed[Event](sessionID)
	}
	return r.broadcaster.Subscribe(ctx, sessionID)
}

// Close closes every center. The broadcaster is left to its owner.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.sessions.Clear()
	return nil
}

func (r *Registry) publisher(sessionID string) Observer {
	return func(ctx context.Context, ev Event) {
		if r.broadcaster == nil {
			return
		}
		ev.SessionID = sessionID
		if err := r.broadcaster.Broadcast(ctx, broadcast.Message[Event]{Topic: sessionID, Data: ev}); err != nil {
			r.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to publish toast event",
				logger.SessionID(sessionID),
				slog.String("event", string(ev.Type)),
				logger.Error(err),
			)
		}
	}
}
