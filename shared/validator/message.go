package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	messageSeparator = "; "
	fallbackMessage  = "{field} is invalid"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"date":     "{field} must be a date in YYYY-MM-DD format",
		"enum":     "{field} has an unsupported value",
		"ne":       "{field} cannot be {param}",
	}
)

// message renders every field error of err, in struct order, joined by messageSeparator.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	rendered := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			tmpl = fallbackMessage
		}

		rendered = append(rendered, strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl))
	}

	return strings.Join(rendered, messageSeparator)
}
