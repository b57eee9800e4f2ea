package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-label-keeper/models"
)

// Label attribute names used for field-level scoping and as keys of
// [ValidationError.Errors].
const (
	FieldTitle       = "title"
	FieldColor       = "color"
	FieldDescription = "description"
)

// MaxTitleLength is the maximum number of characters in a label title.
const MaxTitleLength = 255

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// LabelValidator validates [models.Label] and [models.LabelUpdate].
//
// Unlike a fail-fast check it collects every rejected attribute into one
// [*ValidationError].
type LabelValidator struct{}

// NewLabelValidator constructs a LabelValidator and returns it as Validator.
func NewLabelValidator() Validator {
	return &LabelValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Label / *models.Label: all attributes by default
//   - models.LabelUpdate / *models.LabelUpdate: only the attributes present
//     in the update
//
// Optional fields restrict validation to the named subset.
func (v *LabelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Label:
		return v.validateLabel(value, fields...)
	case *models.Label:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLabel(*value, fields...)
	case models.LabelUpdate:
		return v.validateLabelUpdate(value, fields...)
	case *models.LabelUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLabelUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LabelValidator) validateLabel(label models.Label, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldColor, FieldDescription}
	}

	vErr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			checkTitle(vErr, label.Title)
		case FieldColor:
			checkColor(vErr, label.Color)
		case FieldDescription:
			if label.Description != nil {
				checkDescription(vErr, *label.Description)
			}
		default:
			return ErrUnknownField
		}
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// validateLabelUpdate skips attributes the update does not carry, so an
// absent attribute is never rejected.
func (v *LabelValidator) validateLabelUpdate(update models.LabelUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldColor, FieldDescription}
	}

	vErr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil {
				checkTitle(vErr, *update.Title)
			}
		case FieldColor:
			if update.Color != nil {
				checkColor(vErr, *update.Color)
			}
		case FieldDescription:
			if update.Description != nil {
				checkDescription(vErr, *update.Description)
			}
		default:
			return ErrUnknownField
		}
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

func checkTitle(vErr *ValidationError, title string) {
	switch {
	case !utf8.ValidString(title):
		vErr.Add(FieldTitle, MsgInvalidUTF8)
	case strings.TrimSpace(title) == "":
		vErr.Add(FieldTitle, MsgBlank)
	case utf8.RuneCountInString(title) > MaxTitleLength:
		vErr.Add(FieldTitle, MsgTooLong)
	}

	if strings.Contains(title, ",") {
		vErr.Add(FieldTitle, MsgHasComma)
	}
}

// checkDescription accepts any valid UTF-8 text, including "".
func checkDescription(vErr *ValidationError, description string) {
	if !utf8.ValidString(description) {
		vErr.Add(FieldDescription, MsgInvalidUTF8)
	}
}

func checkColor(vErr *ValidationError, color string) {
	if !colorPattern.MatchString(color) {
		vErr.Add(FieldColor, MsgInvalidColor)
	}
}
