package binder

import (
	"net/http"
	"strings"
)

// Func decodes one part of r into v, which must be a pointer to a struct.
type Func func(r *http.Request, v any) error

const (
	mimeJSON = "application/json"
	mimeForm = "application/x-www-form-urlencoded"
)

// mediaType returns the lowercased Content-Type of r without parameters.
func mediaType(r *http.Request) string {
	ct, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
	return strings.ToLower(strings.TrimSpace(ct))
}
