package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	listkiterrors "github.com/alexisbeaulieu97/listkit/pkg/errors"
)

// convertValidationError normalizes validator errors into listkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return listkiterrors.NewValidationError(field, msg, err)
	}

	return listkiterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Divider.HidePositions[0] into
// divider.hidepositions[0].
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForDivider(field string) string {
	return "divider." + field
}
