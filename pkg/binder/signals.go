package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

const signalsParam = "datastar"

// Signals decodes datastar signals into json-tagged fields. GET requests
// carry them in the "datastar" query parameter, other methods in a JSON body
// sent with the Datastar-Request header. Anything else is not applicable.
func Signals() Func {
	return func(r *http.Request, v any) error {
		if !hasSignals(r) {
			return ErrNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToReadSignals, err)
		}
		return nil
	}
}

func hasSignals(r *http.Request) bool {
	if r.Method == http.MethodGet {
		return r.URL.Query().Has(signalsParam)
	}
	return r.Header.Get("Datastar-Request") == "true" && mediaType(r) == mimeJSON
}
