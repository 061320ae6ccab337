// Package view renders the notification container and its toasts as templ
// components.
package view

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/studentorbit/toastkit/pkg/toast"
)

const (
	// ContainerID is the DOM id of the notification container.
	ContainerID = "notification-container"
	// RootID is the id of the permanent element the container is mounted into.
	RootID = "toast-root"
	// StylesID is the id of the toast stylesheet.
	StylesID = "toast-styles"
)

// ContainerSelector selects the notification container.
const ContainerSelector = "#" + ContainerID

// ItemID returns the DOM id of a toast.
func ItemID(id string) string {
	return "toast-" + id
}

// ItemSelector selects the toast with the given id.
func ItemSelector(id string) string {
	return "#" + ItemID(id)
}

// Renderer renders toasts with animation timings matching the center's lifecycle.
type Renderer struct {
	enter time.Duration
	exit  time.Duration
	once  *templ.OnceHandle
}

// NewRenderer creates a renderer for the given slide-in and slide-out durations.
func NewRenderer(enter, exit time.Duration) *Renderer {
	return &Renderer{
		enter: enter,
		exit:  exit,
		once:  templ.NewOnceHandle(),
	}
}

// DefaultRenderer uses the center's default durations.
func DefaultRenderer() *Renderer {
	return NewRenderer(toast.DefaultEnterDuration, toast.DefaultExitDuration)
}

// Styles renders the toast keyframes. Within one render context the
// stylesheet is written at most once, however often Styles is used.
func (v *Renderer) Styles() templ.Component {
	sheet := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<style id="%s">
@keyframes slideInRight { from { transform: translateX(100%%); opacity: 0; } to { transform: translateX(0); opacity: 1; } }
@keyframes slideOutRight { from { transform: translateX(0); opacity: 1; } to { transform: translateX(100%%); opacity: 0; } }
.toast-entering { animation: slideInRight %s ease; }
.toast-dismissing { animation: slideOutRight %s ease forwards; }
</style>`, StylesID, cssSeconds(v.enter), cssSeconds(v.exit))
		return err
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return v.once.Once().Render(templ.WithChildren(ctx, sheet), w)
	})
}

// Container renders the fixed-position container with the given toasts.
func (v *Renderer) Container(items []toast.Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" style="position: fixed; top: 100px; right: 20px; z-index: 9999; display: flex; flex-direction: column; gap: 10px;">`, ContainerID); err != nil {
			return err
		}
		for _, n := range items {
			if err := v.Item(n).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Root renders the permanent mount point holding the container, if any.
func (v *Renderer) Root(s toast.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s">`, RootID); err != nil {
			return err
		}
		if s.Container {
			if err := v.Container(s.Toasts).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Item renders one toast. The message is HTML-escaped.
func (v *Renderer) Item(n toast.Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		style := n.Style()
		_, err := fmt.Fprintf(w,
			`<div id="%s" class="toast toast-%s toast-%s" role="status" data-kind="%s" style="background: white; padding: 16px 20px; border-radius: 12px; box-shadow: 0 10px 40px rgba(0,0,0,0.15); display: flex; align-items: center; gap: 12px; min-width: 300px;">`+
				`<div class="toast-icon" style="width: 32px; height: 32px; border-radius: 50%%; background: %s; color: white; display: flex; align-items: center; justify-content: center; font-weight: bold;">%s</div>`+
				`<div class="toast-message" style="color: #1F2937; font-weight: 500;">%s</div>`+
				`</div>`,
			templ.EscapeString(ItemID(n.ID)),
			templ.EscapeString(string(n.Kind)),
			templ.EscapeString(string(n.State)),
			templ.EscapeString(string(n.Kind)),
			templ.EscapeString(style.Color),
			templ.EscapeString(style.Icon),
			templ.EscapeString(n.Message),
		)
		return err
	})
}

func cssSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
