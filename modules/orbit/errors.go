package orbit

import (
	"net/http"

	"github.com/studentorbit/toastkit/handler"
)

var (
	errNoSession      = handler.NewHTTPError(http.StatusUnauthorized, "session_required")
	errSchoolNotFound = handler.NewHTTPError(http.StatusNotFound, "school_not_found")
)
