// Package toast implements a notification center for short-lived toast
// messages.
//
// A Center owns a single fixed-position container. The first Notify creates
// it, every later Notify appends to it in arrival order, and the container is
// torn down as soon as its last toast is removed. Each toast walks a fixed
// lifecycle driven by its own timer:
//
//	created → entering → steady → dismissing → removed
//
// With the default durations a toast slides in for 300ms, starts leaving 3s
// after it was created and is removed 300ms later. Lifetimes of different
// toasts overlap independently.
//
// # Usage
//
//	center := toast.NewCenter(toast.WithObserver(func(ctx context.Context, ev toast.Event) {
//		log.Println(ev.Type)
//	}))
//	defer center.Close()
//
//	if _, err := center.Notify(ctx, "Added to favorites!", toast.KindSuccess); err != nil {
//		return err
//	}
//
// Unknown kinds fail with ErrUnknownKind before anything is rendered; an empty
// kind falls back to DefaultKind.
//
// # Sessions
//
// A Registry keeps one Center per browser session and publishes every event
// through a broadcast.Broadcaster using the session ID as topic, so SSE
// streams can translate them into page patches.
//
// # Testing
//
// Time is injected with WithClock. ManualClock fires timers only when advanced:
//
//	clock := toast.NewManualClock(time.Now())
//	center := toast.NewCenter(toast.WithClock(clock))
//	center.Info(ctx, "hello")
//	clock.Advance(3300 * time.Millisecond) // toast removed
package toast
