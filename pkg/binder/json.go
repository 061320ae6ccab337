package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize caps JSON bodies at 1MB.
const DefaultMaxJSONSize = 1 << 20

// JSON decodes application/json bodies. Other content types are not applicable.
//
//	type NotifyRequest struct {
//		Message string `json:"message" form:"message"`
//		Kind    string `json:"kind" form:"kind"`
//	}
func JSON() Func {
	return func(r *http.Request, v any) error {
		if mediaType(r) != mimeJSON {
			return ErrNotApplicable
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		switch {
		case err != nil:
			return fmt.Errorf("%w: read body: %v", ErrFailedToParseJSON, err)
		case len(body) > DefaultMaxJSONSize:
			return fmt.Errorf("%w: body too large, limit is %d bytes", ErrFailedToParseJSON, DefaultMaxJSONSize)
		case len(body) == 0:
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		if err := json.Unmarshal(body, v); err != nil {
			if se := (*json.SyntaxError)(nil); errors.As(err, &se) {
				return fmt.Errorf("%w: syntax error at offset %d", ErrFailedToParseJSON, se.Offset)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}
