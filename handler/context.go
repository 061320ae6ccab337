package handler

import (
	"context"
	"net/http"
)

// Context is the request context handed to handlers. It is the request's own
// context.Context with access to the request and the response writer.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext binds w and r into a Context. Cancellation, deadline and values
// are those of r.Context().
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{Context: r.Context(), w: w, r: r}
}

type requestContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *requestContext) Request() *http.Request              { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }

// Key is a typed context key. Distinct keys never collide, even with equal names.
//
//	var sessionKey = handler.NewKey[string]("session")
//
//	ctx = sessionKey.With(ctx, id)
//	id, ok := sessionKey.From(ctx)
type Key[T any] struct {
	name *string
}

// NewKey creates a key for values of type T. The name is used for debugging only.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: &name}
}

func (k Key[T]) String() string {
	return *k.name
}

// With returns a copy of ctx carrying v under k.
func (k Key[T]) With(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, k, v)
}

// From returns the value stored under k.
func (k Key[T]) From(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// Get is From without the presence flag.
func (k Key[T]) Get(ctx context.Context) T {
	v, _ := k.From(ctx)
	return v
}
