package broadcast_test

import (
	"context"
	"fmt"

	"github.com/studentorbit/toastkit/pkg/broadcast"
)

func ExampleMemoryBroadcaster() {
	ctx := context.Background()
	events := broadcast.NewMemoryBroadcaster[string](4)
	defer events.Close()

	tab := events.Subscribe(ctx, "session-1")

	_ = events.Broadcast(ctx, broadcast.Message[string]{Topic: "session-2", Data: "elsewhere"})
	_ = events.Broadcast(ctx, broadcast.Message[string]{Topic: "session-1", Data: "Added to favorites!"})

	msg := <-tab.Receive(ctx)
	fmt.Printf("%s: %s\n", msg.Topic, msg.Data)
	// Output: session-1: Added to favorites!
}
