package binder

import "errors"

// ErrNotApplicable tells the caller that a binder found nothing to read in
// the request and the next binder should run.
var ErrNotApplicable = errors.New("binder: not applicable")

// Decoding failures, one per source.
var (
	ErrFailedToParseJSON   = errors.New("binder: invalid json body")
	ErrFailedToParseForm   = errors.New("binder: invalid form body")
	ErrFailedToParseQuery  = errors.New("binder: invalid query parameters")
	ErrFailedToParsePath   = errors.New("binder: invalid path parameters")
	ErrFailedToReadSignals = errors.New("binder: invalid datastar signals")
)
