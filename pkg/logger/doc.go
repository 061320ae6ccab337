// Package logger builds context-aware *slog.Logger instances.
//
// New applies functional options (format, level, static attributes,
// per-environment defaults). Context extractors registered with
// WithContextExtractors or WithContextValue add attributes taken from the
// context of every log call, such as the chi request ID.
//
// Attribute helpers keep key names consistent across packages:
//
//	log.InfoContext(ctx, "toast shown",
//	    logger.SessionID(sessionID),
//	    logger.ToastID(n.ID),
//	    logger.Kind(string(n.Kind)),
//	)
//
// Error and RequestID return an empty Attr for empty input, so they can be
// passed unconditionally.
package logger
