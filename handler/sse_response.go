package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is the Context of a long-lived datastar stream.
type StreamContext interface {
	Context

	// SendComponent patches component into the page.
	SendComponent(component templ.Component, opts ...TemplOption) error
	// RemoveElement deletes every element matching selector.
	RemoveElement(selector string) error
	SendSignals(signals map[string]any) error
}

// SSEHandler owns one stream. The connection ends when it returns or the
// client goes away, whichever comes first.
type SSEHandler func(stream StreamContext) error

// SSE serves h as a datastar event stream. Requests that did not come from
// the datastar client fail with ErrNotDataStar before any byte is written.
func SSE(h SSEHandler) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if !IsDataStar(r) {
			return ErrNotDataStar
		}
		return h(stream{Context: NewContext(w, r), gen: NewSSE(w, r)})
	})
}

type stream struct {
	Context
	gen *datastar.ServerSentEventGenerator
}

func (s stream) SendComponent(component templ.Component, opts ...TemplOption) error {
	return s.gen.PatchElementTempl(component, opts...)
}

func (s stream) RemoveElement(selector string) error {
	return s.gen.PatchElements("", datastar.WithSelector(selector), datastar.WithMode(PatchRemove))
}

func (s stream) SendSignals(signals map[string]any) error {
	raw, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.gen.PatchSignals(raw)
}
