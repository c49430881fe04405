package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldErrors collects one message per field, keyed by the JSON field name.
type FieldErrors map[string]string

// Check validates value against a validator rule (e.g. "required", "min=70,max=600")
// and records msg for field when it fails. The first failure per field wins.
func (e FieldErrors) Check(field string, value any, rule, msg string) {
	if _, failed := e[field]; failed {
		return
	}
	if err := validate.Var(value, rule); err != nil {
		e[field] = msg
	}
}

// Err returns nil when no field failed.
func (e FieldErrors) Err() map[string]string {
	if len(e) == 0 {
		return nil
	}
	return e
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
