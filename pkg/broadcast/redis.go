package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/studentorbit/toastkit/pkg/logger"
)

// RedisBroadcaster relays messages through Redis pub/sub so that subscribers
// on any instance receive messages published on any other. Payloads are JSON.
// Slow local consumers are dropped exactly like MemoryBroadcaster does.
type RedisBroadcaster[T any] struct {
	client     redis.UniversalClient
	prefix     string
	bufferSize int
	logger     *slog.Logger

	mu     sync.Mutex
	subs   map[*subscriber[T]]*redis.PubSub
	closed bool
	wg     sync.WaitGroup
}

type redisOptions struct {
	prefix     string
	bufferSize int
	logger     *slog.Logger
}

// RedisOption configures a RedisBroadcaster.
type RedisOption func(*redisOptions)

// WithChannelPrefix namespaces Redis channels. Default is "broadcast:".
func WithChannelPrefix(prefix string) RedisOption {
	return func(o *redisOptions) { o.prefix = prefix }
}

// WithBufferSize sets the per-subscriber buffer. Default is 64.
func WithBufferSize(n int) RedisOption {
	return func(o *redisOptions) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithRedisLogger sets the logger used for decode and transport failures.
func WithRedisLogger(l *slog.Logger) RedisOption {
	return func(o *redisOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewRedisBroadcaster creates a broadcaster on top of client.
// The client is owned by the caller and is not closed by Close.
func NewRedisBroadcaster[T any](client redis.UniversalClient, opts ...RedisOption) *RedisBroadcaster[T] {
	o := redisOptions{
		prefix:     "broadcast:",
		bufferSize: 64,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &RedisBroadcaster[T]{
		client:     client,
		prefix:     o.prefix,
		bufferSize: o.bufferSize,
		logger:     o.logger,
		subs:       make(map[*subscriber[T]]*redis.PubSub),
	}
}

// Subscribe opens a Redis subscription for topic and returns once Redis has
// confirmed it, so messages published afterwards are not missed. Cancelling
// ctx or closing the subscriber releases the underlying connection. When the
// subscription cannot be established the returned subscriber is closed.
func (b *RedisBroadcaster[T]) Subscribe(ctx context.Context, topic string) Subscriber[T] {
	if b.isClosed() {
		return closedSubscriber[T](topic)
	}

	ps := b.client.Subscribe(ctx, b.channel(topic))
	if err := confirmSubscription(ctx, ps); err != nil {
		_ = ps.Close()
		b.logger.LogAttrs(ctx, slog.LevelError, "Failed to subscribe to broadcast channel",
			slog.String("channel", b.channel(topic)),
			logger.Error(err),
		)
		return closedSubscriber[T](topic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		_ = ps.Close()
		return closedSubscriber[T](topic)
	}

	sub := newSubscriber[T](topic, b.bufferSize)
	sub.release = func() { _ = ps.Close() }
	b.subs[sub] = ps

	b.wg.Add(1)
	go b.forward(ctx, sub, ps)

	return sub
}

// confirmSubscription waits for the SUBSCRIBE reply.
func confirmSubscription(ctx context.Context, ps *redis.PubSub) error {
	reply, err := ps.Receive(ctx)
	if err != nil {
		return errors.Join(ErrSubscribe, err)
	}
	if _, ok := reply.(*redis.Subscription); !ok {
		return fmt.Errorf("%w: unexpected reply %T", ErrSubscribe, reply)
	}
	return nil
}

func (b *RedisBroadcaster[T]) isClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Broadcast publishes msg.Data as JSON on the topic channel.
func (b *RedisBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	if b.isClosed() {
		return ErrClosed
	}

	payload, err := json.Marshal(msg.Data)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	if err := b.client.Publish(ctx, b.channel(msg.Topic), payload).Err(); err != nil {
		return errors.Join(ErrPublish, err)
	}
	return nil
}

// Close closes all subscriptions and waits for their forwarders to exit.
func (b *RedisBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	pubsubs := make([]*redis.PubSub, 0, len(b.subs))
	for _, ps := range b.subs {
		pubsubs = append(pubsubs, ps)
	}
	b.mu.Unlock()

	var errs []error
	for _, ps := range pubsubs {
		if err := ps.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.wg.Wait()
	return errors.Join(errs...)
}

func (b *RedisBroadcaster[T]) channel(topic string) string {
	return b.prefix + topic
}

func (b *RedisBroadcaster[T]) forward(ctx context.Context, sub *subscriber[T], ps *redis.PubSub) {
	defer b.wg.Done()
	defer func() {
		b.mu.Lock()
		delete(b.subs, sub)
		b.mu.Unlock()
		_ = sub.Close()
	}()

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var data T
			if err := json.Unmarshal([]byte(m.Payload), &data); err != nil {
				b.logger.LogAttrs(ctx, slog.LevelWarn, "Dropping undecodable broadcast payload",
					slog.String("channel", m.Channel),
					logger.Error(err),
				)
				continue
			}
			if !sub.offer(Message[T]{Topic: sub.topic, Data: data}) {
				// Slow consumer: drop it like the in-memory broadcaster does.
				return
			}
		}
	}
}
