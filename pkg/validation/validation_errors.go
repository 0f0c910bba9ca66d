package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps control names to user-facing labels
var FieldLabels = map[string]string{
	"name":        "Name",
	"email":       "Email",
	"designation": "Designation",
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(label string, e validator.FieldError) string {
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a control
func getFieldLabel(name string) string {
	if label, ok := FieldLabels[name]; ok {
		return label
	}
	return formatCamelCase(name)
}

// formatCamelCase converts camelCase to capitalised, spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case i == 0:
			r = unicode.ToUpper(r)
		case r >= 'A' && r <= 'Z':
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
