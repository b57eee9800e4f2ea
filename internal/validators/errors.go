package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages attached to rejected label attributes.
const (
	MsgBlank        = "can't be blank"
	MsgTooLong      = "is too long (maximum is 255 characters)"
	MsgHasComma     = "can't contain commas"
	MsgInvalidColor = "must be a valid color code"
	MsgTaken        = "has already been taken"
	MsgInvalidUTF8  = "contains invalid characters"
)

// ValidationError reports every attribute that failed validation.
//
// Errors maps an attribute name to its messages and is rendered as-is in
// the 422 response body.
type ValidationError struct {
	Errors map[string][]string
}

// NewValidationError returns a ValidationError with a single message.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

// Add appends message to the messages of field.
func (e *ValidationError) Add(field, message string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], message)
}

// Empty reports whether no attribute was rejected.
func (e *ValidationError) Empty() bool {
	return len(e.Errors) == 0
}

// Error lists the rejected attributes in a stable order, e.g.
// "validation failed: color must be a valid color code; title can't be blank".
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, field := range slices.Sorted(maps.Keys(e.Errors)) {
		for _, msg := range e.Errors[field] {
			parts = append(parts, field+" "+msg)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
