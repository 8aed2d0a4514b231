package errs

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is one violated constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError flattens ozzo validation errors into a single 400 that
// lists every violated field. Non-validation errors become internal errors.
func NewValidationError(err error) *ApiErr {
	fields := FieldErrors(err)
	if fields == nil {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return NewInternalErrorWithCause("validation could not run", err)
		}
		return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrValidation, Details: err.Error(), Cause: err}
	}

	parts := make([]string, 0, len(fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
		names = append(names, f.Field)
	}

	apiErr := &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    strings.Join(parts, "; "),
		Cause:      err,
	}
	if len(names) == 1 {
		apiErr.Field = names[0]
	}
	return apiErr
}

// FieldErrors returns the violated fields sorted by name, or nil when err is
// not a validation.Errors value. Nested errors are reported as parent.child.
func FieldErrors(err error) []FieldError {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}

	var out []FieldError
	collect("", verrs, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func collect(prefix string, verrs validation.Errors, out *[]FieldError) {
	for field, ferr := range verrs {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(ferr, &nested) {
			collect(name, nested, out)
			continue
		}
		*out = append(*out, FieldError{Field: name, Message: ferr.Error()})
	}
}
