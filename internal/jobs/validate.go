package jobs

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Error codes for field-level validation failures.
const (
	CodeMissingField  = "MissingField"
	CodeInvalidEnum   = "InvalidEnum"
	CodeInvalidFormat = "InvalidFormat"
	CodeTooShort      = "TooShort"
	CodeTooLong       = "TooLong"
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors maps field names (JSON names) to their first rejection.
type FieldErrors map[string]FieldError

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf(" %s: %s;", f, fe[f].Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Fields returns the rejected field names in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Plain-text length floors for rich-text fields.
const (
	descriptionMinChars      = 100
	requirementsMinChars     = 50
	responsibilitiesMinChars = 50
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field names the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks a submission against the full rule set: required-field
// presence, enum membership, numeric well-formedness, email format, the
// city-unless-remote conditional, and plain-text length floors on the
// rich-text fields. It is pure and always terminates; a nil result means the
// submission is acceptable.
func Validate(sub *JobSubmission) FieldErrors {
	errs := FieldErrors{}

	if err := validate.Struct(sub); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				name := ve.Field()
				if _, seen := errs[name]; seen {
					continue
				}
				errs[name] = fieldErrorFor(ve)
			}
		}
	}

	// Length floors apply to the stripped text, which struct tags cannot
	// express. Skipped when the field already failed a structural check.
	checkFloor := func(field, value string, floor int, label string) {
		if _, seen := errs[field]; seen || value == "" {
			return
		}
		if utf8.RuneCountInString(ExtractText(value)) < floor {
			errs[field] = FieldError{
				Code:    CodeTooShort,
				Message: fmt.Sprintf("%s must be at least %d characters (excluding formatting)", label, floor),
			}
		}
	}
	checkFloor("description", sub.Description, descriptionMinChars, "Description")
	checkFloor("requirements", sub.Requirements, requirementsMinChars, "Requirements")
	checkFloor("keyResponsibilities", sub.KeyResponsibilities, responsibilitiesMinChars, "Key responsibilities")

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func fieldErrorFor(ve validator.FieldError) FieldError {
	switch ve.Tag() {
	case "required":
		return FieldError{Code: CodeMissingField, Message: fmt.Sprintf("%s is required", ve.Field())}
	case "required_unless":
		return FieldError{Code: CodeMissingField, Message: "city is required unless the role is remote"}
	case "oneof":
		return FieldError{Code: CodeInvalidEnum, Message: fmt.Sprintf("%s must be one of: %s", ve.Field(), ve.Param())}
	case "email":
		return FieldError{Code: CodeInvalidFormat, Message: "Please enter a valid email address"}
	case "url":
		return FieldError{Code: CodeInvalidFormat, Message: "Please enter a valid URL"}
	case "min":
		// min on a collection means the set cannot be empty; on a string or
		// number it is a length/range floor.
		switch ve.Kind() {
		case reflect.Slice, reflect.Map, reflect.Array:
			return FieldError{Code: CodeMissingField, Message: fmt.Sprintf("At least one %s entry is required", ve.Field())}
		case reflect.String:
			return FieldError{Code: CodeTooShort, Message: fmt.Sprintf("%s must be at least %s characters", ve.Field(), ve.Param())}
		default:
			return FieldError{Code: CodeInvalidFormat, Message: fmt.Sprintf("%s must be at least %s", ve.Field(), ve.Param())}
		}
	case "max":
		return FieldError{Code: CodeTooLong, Message: fmt.Sprintf("%s is too long", ve.Field())}
	default:
		return FieldError{Code: CodeInvalidFormat, Message: fmt.Sprintf("%s is invalid", ve.Field())}
	}
}
