package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Patch modes accepted by WithPatchMode.
const (
	PatchOuter  = datastar.ElementPatchModeOuter
	PatchAppend = datastar.ElementPatchModeAppend
	PatchRemove = datastar.ElementPatchModeRemove
)

// IsDataStar reports whether r comes from the datastar client: it sets the
// Datastar-Request header on actions, accepts an event stream, or carries
// its signals in the "datastar" query parameter.
func IsDataStar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true" ||
		strings.Contains(r.Header.Get("Accept"), "text/event-stream") ||
		r.URL.Query().Has("datastar")
}

// NewSSE starts a datastar event stream on w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
