package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar indicates a streaming endpoint was hit by a plain HTTP client
	ErrNotDataStar = NewHTTPError(http.StatusBadRequest, "datastar_required")
)

// HTTPError carries a status code and a machine-readable key.
// Err, when set, is the underlying cause.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

// NewHTTPError creates an HTTPError without an underlying cause.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// NewHTTPErrorWrap creates an HTTPError wrapping err.
func NewHTTPErrorWrap(code int, key string, err error) HTTPError {
	return HTTPError{Code: code, Key: key, Err: err}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to users: the cause when present, the status text otherwise.
func (e HTTPError) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

// Error creates a response that hands err to the wrapped handler's error
// handler, so the error is rendered the way the client expects.
//
//	if errors.Is(err, toast.ErrUnknownKind) {
//		return handler.Error(handler.NewHTTPErrorWrap(http.StatusBadRequest, "unknown_kind", err))
//	}
func Error(err error) Response {
	return ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
}
