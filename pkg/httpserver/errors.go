package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrAlreadyStarted is joined with ErrStart when Run is called twice.
	ErrAlreadyStarted = errors.New("httpserver: server already started")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
