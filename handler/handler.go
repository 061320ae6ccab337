package handler

import (
	"errors"
	"net/http"

	"github.com/studentorbit/toastkit/pkg/binder"
)

// HandlerFunc handles a request whose input has been bound into R.
//
//	notify := func(ctx handler.Context, req NotifyRequest) handler.Response {
//		n, err := center.Notify(ctx, req.Message, toast.Kind(req.Kind))
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(n, handler.WithJSONStatus(http.StatusAccepted))
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes part of a request into v. A binder with nothing to read
// returns binder.ErrNotApplicable and is skipped.
type Bind = binder.Func

// ErrorHandler renders errors from binding, handlers and responses.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option func(*options)

type options struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders adds binders, applied in order, each filling the fields it owns.
//
//	r.Post("/toasts", handler.Wrap(notify, handler.WithBinders(binder.JSON(), binder.Form())))
func WithBinders(binders ...Bind) Option {
	return func(o *options) {
		o.binders = append(o.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// plainErrorHandler writes the error key of an HTTPError, or a bare 500.
func plainErrorHandler(ctx Context, err error) {
	status, text := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status, text = httpErr.Code, httpErr.Key
	}
	http.Error(ctx.ResponseWriter(), text, status)
}

// Wrap adapts h to net/http. Bind failures become 400 "bad_request";
// a nil response is reported as ErrNilResponse.
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	o := options{errorHandler: plainErrorHandler}
	for _, opt := range opts {
		opt(&o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		if err := bind(r, &req, o.binders); err != nil {
			o.errorHandler(ctx, NewHTTPErrorWrap(http.StatusBadRequest, "bad_request", err))
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			o.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			o.errorHandler(ctx, err)
		}
	}
}

func bind(r *http.Request, v any, binders []Bind) error {
	for _, b := range binders {
		if err := b(r, v); err != nil && !errors.Is(err, binder.ErrNotApplicable) {
			return err
		}
	}
	return nil
}
