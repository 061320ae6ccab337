package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/studentorbit/toastkit/pkg/logger"
)

// genericErrorMessage replaces the text of errors that are not HTTPErrors.
const genericErrorMessage = "An error occurred processing your request"

// ErrorToastParams describes an error shown to a DataStar client as a toast.
type ErrorToastParams struct {
	Message   string
	Type      string // toast kind: "warning" for 4xx, "error" for 5xx
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorToast shows the error in the caller's notification container.
	// When nil, DataStar requests get the JSON body too.
	ErrorToast func(ctx Context, params ErrorToastParams) error
}

type classifiedError struct {
	status  int
	key     string
	message string
}

func classify(err error) classifiedError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return classifiedError{status: httpErr.Code, key: httpErr.Key, message: httpErr.Message()}
	}
	return classifiedError{
		status:  http.StatusInternalServerError,
		key:     "internal_error",
		message: genericErrorMessage,
	}
}

func (c classifiedError) clientError() bool {
	return c.status >= http.StatusBadRequest && c.status < http.StatusInternalServerError
}

func (c classifiedError) toastKind() string {
	switch {
	case c.clientError():
		return "warning"
	case c.status >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func (c classifiedError) level() slog.Level {
	if c.clientError() {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler returns an error handler that answers in the client's terms:
// DataStar requests get the error as a toast and an empty 204, everything else
// a JSON error body with the error's status.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		c := classify(err)
		reqID := middleware.GetReqID(r.Context())

		log.LogAttrs(r.Context(), c.level(), "Request failed",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", c.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) && cfg.ErrorToast != nil {
			toastErr := cfg.ErrorToast(ctx, ErrorToastParams{
				Message:   c.message,
				Type:      c.toastKind(),
				RequestID: reqID,
			})
			if toastErr == nil {
				ctx.ResponseWriter().WriteHeader(http.StatusNoContent)
				return
			}
			log.LogAttrs(r.Context(), slog.LevelError, "Failed to show error toast",
				logger.RequestID(reqID),
				logger.Error(toastErr),
				logger.Component("error_handler"),
			)
		}

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "Failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
