package cookie

import "errors"

// Configuration errors.
var (
	ErrNoSecret       = errors.New("cookie: no secret configured")
	ErrSecretTooShort = errors.New("cookie: secret too short")
)

// Read errors.
var (
	ErrCookieNotFound   = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: malformed signed value")
	ErrInvalidSignature = errors.New("cookie: signature mismatch")
)
