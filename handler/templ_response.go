package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption tunes how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches into the elements matching selector instead of the
// element with the component's own id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets the patch mode, PatchOuter by default.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// Templ renders component as a DataStar element patch for DataStar requests
// and as an HTML document fragment for everything else.
//
//	return handler.Templ(view.FavoriteButton(card))
//
//	return handler.Templ(view.Item(n),
//		handler.WithTarget(view.ContainerSelector),
//		handler.WithPatchMode(handler.PatchAppend),
//	)
func Templ(component templ.Component, opts ...TemplOption) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return NewSSE(w, r).PatchElementTempl(component, opts...)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(r.Context(), w)
	})
}

// ResponseFunc adapts a function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}
