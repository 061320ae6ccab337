package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster fans messages out inside one process.
type MemoryBroadcaster[T any] struct {
	buffer int

	mu     sync.RWMutex
	topics map[string]map[*subscriber[T]]struct{}
	closed bool
}

// NewMemoryBroadcaster returns a broadcaster whose subscribers buffer up to
// buffer messages each (at least one).
func NewMemoryBroadcaster[T any](buffer int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		buffer: max(buffer, 1),
		topics: make(map[string]map[*subscriber[T]]struct{}),
	}
}

// Subscribe registers a subscriber for topic that lives until ctx ends or it
// is closed. After Close the returned subscriber is already closed.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context, topic string) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return closedSubscriber[T](topic)
	}

	sub := newSubscriber[T](topic, b.buffer)
	sub.release = func() { b.detach(sub) }
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*subscriber[T]]struct{})
	}
	b.topics[topic][sub] = struct{}{}

	if done := ctx.Done(); done != nil {
		go func() {
			select {
			case <-done:
				_ = sub.Close()
			case <-sub.done:
			}
		}()
	}
	return sub
}

// Broadcast offers msg to every subscriber of msg.Topic. Subscribers with a
// full buffer are closed and forgotten.
func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	var slow []*subscriber[T]
	for sub := range b.topics[msg.Topic] {
		if !sub.offer(msg) {
			slow = append(slow, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range slow {
		_ = sub.Close()
	}
	return nil
}

// SubscriberCount reports how many subscribers listen to topic.
func (b *MemoryBroadcaster[T]) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// Close closes every subscriber. Later calls are no-ops.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	var all []*subscriber[T]
	for _, subs := range b.topics {
		for sub := range subs {
			all = append(all, sub)
		}
	}
	clear(b.topics)
	b.mu.Unlock()

	for _, sub := range all {
		_ = sub.Close()
	}
	return nil
}

func (b *MemoryBroadcaster[T]) detach(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[sub.topic]
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, sub.topic)
	}
}
