package binder

import (
	"fmt"
	"net/http"
)

// Path fills fields tagged `path:"name"` from route parameters read with
// param, typically chi.URLParam:
//
//	r.Post("/favorites/{schoolID}", handler.Wrap(toggle,
//		handler.WithBinders(binder.Path(chi.URLParam)),
//	))
func Path(param func(r *http.Request, name string) string) Func {
	return func(r *http.Request, v any) error {
		if param == nil {
			return fmt.Errorf("%w: no parameter reader", ErrFailedToParsePath)
		}
		return bindFields(v, "path", ErrFailedToParsePath, func(name string) []string {
			if s := param(r, name); s != "" {
				return []string{s}
			}
			return nil
		})
	}
}
