// Package broadcast delivers typed messages to the subscribers of a topic.
//
// The toast registry publishes every center event under the page session ID,
// and each open SSE stream subscribes to its own session:
//
//	events := broadcast.NewMemoryBroadcaster[toast.Event](64)
//	sub := events.Subscribe(r.Context(), sessionID)
//	for msg := range sub.Receive(r.Context()) {
//		// patch the page with msg.Data
//	}
//
// MemoryBroadcaster serves a single process. RedisBroadcaster carries the
// same messages over Redis pub/sub so a stream may be served by another
// instance than the one handling the notify request; Connect and Healthcheck
// manage its client.
//
// Publishing never waits on a subscriber. One whose buffer is full is closed
// and has to subscribe again.
package broadcast
