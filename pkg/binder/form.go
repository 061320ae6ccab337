package binder

import (
	"fmt"
	"net/http"
)

// Form decodes url-encoded bodies into fields tagged `form:"name"`.
// `form:"-"` skips a field. Other content types are not applicable.
func Form() Func {
	return func(r *http.Request, v any) error {
		if mediaType(r) != mimeForm {
			return ErrNotApplicable
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
