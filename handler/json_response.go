package handler

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the envelope of every JSON body: exactly one of Data and
// Error is set.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the machine key and the user-facing text of an error.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONMeta attaches metadata next to the payload.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON wraps v under "data" with status 200. An error value is rendered
// as JSONError instead.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}
	return newJSON(jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}, opts)
}

// JSONError renders err under "error". HTTPErrors keep their status and
// message; any other error is a 500 with a generic message.
func JSONError(err error, opts ...JSONOption) Response {
	c := classify(err)
	return newJSON(jsonResponse{
		status: c.status,
		body:   JSONResponse{Error: &ErrorDetail{Code: c.key, Message: c.message}},
	}, opts)
}

func newJSON(r jsonResponse, opts []JSONOption) Response {
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
