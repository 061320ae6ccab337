package orbit

import (
	"log/slog"

	"github.com/studentorbit/toastkit/handler"
	"github.com/studentorbit/toastkit/pkg/logger"
	"github.com/studentorbit/toastkit/pkg/toast"
	"github.com/studentorbit/toastkit/pkg/toast/view"
)

// stream keeps the page's toast root in sync with the session's center.
// It subscribes before taking the snapshot so no event is lost in between,
// then skips the queued events the snapshot already covers.
func (m *Module) stream(ctx handler.Context, _ struct{}) handler.Response {
	sessionID := SessionID(ctx)
	if sessionID == "" {
		return handler.Error(errNoSession)
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		sub := m.registry.Subscribe(stream, sessionID)
		defer sub.Close()

		var snapshot toast.Snapshot
		if c, ok := m.registry.Lookup(sessionID); ok {
			snapshot = c.Snapshot()
		}
		if err := stream.SendComponent(m.view.Root(snapshot)); err != nil {
			return err
		}

		m.logger.LogAttrs(stream, slog.LevelDebug, "Toast stream opened",
			logger.SessionID(sessionID),
			slog.Int("toasts", len(snapshot.Toasts)),
		)

		events := sub.Receive(stream)
		for {
			select {
			case <-stream.Done():
				return nil
			case msg, ok := <-events:
				if !ok {
					// Dropped as a slow consumer or the broadcaster shut down;
					// the client reconnects and starts from a fresh snapshot.
					return nil
				}
				if snapshot.Covers(msg.Data) {
					continue
				}
				if err := m.patch(stream, msg.Data); err != nil {
					return err
				}
			}
		}
	})
}

// patch translates one center event into a DOM patch.
func (m *Module) patch(stream handler.StreamContext, ev toast.Event) error {
	switch ev.Type {
	case toast.EventStylesRegistered:
		return stream.SendComponent(m.view.Styles())
	case toast.EventContainerCreated:
		return stream.SendComponent(m.view.Container(nil),
			handler.WithTarget("#"+view.RootID),
			handler.WithPatchMode(handler.PatchAppend),
		)
	case toast.EventToastAdded:
		if ev.Toast == nil {
			return nil
		}
		return stream.SendComponent(m.view.Item(*ev.Toast),
			handler.WithTarget(view.ContainerSelector),
			handler.WithPatchMode(handler.PatchAppend),
		)
	case toast.EventToastSteady, toast.EventToastDismissing:
		if ev.Toast == nil {
			return nil
		}
		return stream.SendComponent(m.view.Item(*ev.Toast))
	case toast.EventToastRemoved:
		if ev.Toast == nil {
			return nil
		}
		return stream.RemoveElement(view.ItemSelector(ev.Toast.ID))
	case toast.EventContainerRemoved:
		return stream.RemoveElement(view.ContainerSelector)
	default:
		m.logger.LogAttrs(stream, slog.LevelWarn, "Unknown toast event",
			slog.String("event", string(ev.Type)),
		)
		return nil
	}
}
