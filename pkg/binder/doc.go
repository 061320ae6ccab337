// Package binder fills request structs from HTTP requests.
//
// Each binder reads one source and its own struct tag: JSON bodies (json),
// urlencoded forms (form), query strings (query), router path parameters
// (path) and DataStar signals (json). Binders that find nothing to read in a
// request return ErrNotApplicable, so several can be chained:
//
//	type NotifyRequest struct {
//		Message string `json:"message" form:"message"`
//		Kind    string `json:"kind" form:"kind"`
//	}
//
//	r.Post("/toasts", handler.Wrap(notify,
//		handler.WithBinders(binder.JSON(), binder.Form()),
//	))
package binder
