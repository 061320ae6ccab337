package broadcast

import "context"

// Message carries data of type T published under a topic.
type Message[T any] struct {
	Topic string `json:"topic"`
	Data  T      `json:"data"`
}

// Subscriber receives the messages of one topic.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the delivery channel. It is closed when the
	// subscriber is closed, dropped as a slow consumer, or the broadcaster shuts down.
	Receive(ctx context.Context) <-chan Message[T]

	// Topic returns the topic this subscriber listens to.
	Topic() string

	// Close releases the subscription. Close is idempotent.
	Close() error
}

// Broadcaster fans messages out to every subscriber of the message topic.
// Slow consumers are dropped rather than blocking the publisher.
type Broadcaster[T any] interface {
	// Subscribe listens to topic until ctx is cancelled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string) Subscriber[T]

	// Broadcast delivers msg to the subscribers of msg.Topic.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}
