package handler

import "net/http"

// statusResponse writes a status code and no body.
type statusResponse int

func (s statusResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(s))
	return nil
}

// Empty answers 204 No Content. DataStar actions that only trigger toasts
// use it; the toast itself arrives on the event stream.
func Empty() Response {
	return statusResponse(http.StatusNoContent)
}

// EmptyWithStatus answers with status and no body.
func EmptyWithStatus(status int) Response {
	return statusResponse(status)
}
