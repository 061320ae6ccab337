package broadcast

import (
	"context"
	"sync"
)

// subscriber is the channel-backed Subscriber shared by both broadcasters.
// done is closed together with ch and lets watchers stop early.
type subscriber[T any] struct {
	topic string
	ch    chan Message[T]
	done  chan struct{}

	mu      sync.RWMutex
	closed  bool
	release func()
}

func newSubscriber[T any](topic string, buffer int) *subscriber[T] {
	return &subscriber[T]{
		topic: topic,
		ch:    make(chan Message[T], buffer),
		done:  make(chan struct{}),
	}
}

// Closed returns a subscriber for topic that never delivers: its channel is
// already closed.
func Closed[T any](topic string) Subscriber[T] {
	return closedSubscriber[T](topic)
}

func closedSubscriber[T any](topic string) *subscriber[T] {
	s := newSubscriber[T](topic, 0)
	_ = s.Close()
	return s
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] { return s.ch }

func (s *subscriber[T]) Topic() string { return s.topic }

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.ch)
	close(s.done)
	release := s.release
	s.mu.Unlock()

	if release != nil {
		release()
	}
	return nil
}

// offer hands msg over without blocking. False means the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) offer(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
