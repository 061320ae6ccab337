package binder

import "net/http"

// Query fills fields tagged `query:"name"` from the URL query. The datastar
// signals parameter is left to Signals.
//
//	type SearchRequest struct {
//		Query string `query:"q"`
//	}
func Query() Func {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		values.Del(signalsParam)
		return bindToStruct(v, "query", values, ErrFailedToParseQuery)
	}
}
