package apperror

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// formatFieldName turns "fromDate" or "from_date" into "From Date".
func formatFieldName(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError converts a binding error into a 400 AppError naming the first bad field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return New(CodeInvalidInput, "Invalid request body", 400)
}
