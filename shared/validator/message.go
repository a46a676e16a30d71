package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":         "{field} is required",
		"required_without": "{field} is required when {param} is missing",
		"gte":              "{field} must be greater than or equal to {param}",
		"lte":              "{field} must be less than or equal to {param}",
		"gt":               "{field} must be greater than {param}",
		"oneof":            "{field} must be one of {param}",
		"max":              "{field} must be at most {param}",
		"min":              "{field} must be at least {param}",
		"email":            "{field} must be a valid email address",
		"uuid":             "{field} must be a valid UUID",
		"hotelops":         "{field} has an unsupported value",
		"datetime":         "{field} must be a date formatted as {param}",
	}
)

// message renders every failing field, in declaration order, joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		if field == "" {
			field = "value"
		}

		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, field+" is invalid")

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", field, "{param}", valErr.Param()).Replace(template))
	}

	return strings.Join(parts, "; ")
}
