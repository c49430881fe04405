package usecase

import (
	"errors"
	"strings"

	"filmes-api/internal/patch"
	"filmes-api/pkg/utils"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrConflict         = errors.New("already exists")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

// patchError turns a failed patch operation into a field-level validation error.
func patchError(err error) *ValidationError {
	field := "patch"
	var opErr *patch.OperationError
	if errors.As(err, &opErr) {
		if name := strings.Trim(opErr.Path, "/"); name != "" {
			field = strings.ReplaceAll(strings.ToLower(name), "/", ".")
		}
	}
	return &ValidationError{Fields: map[string]string{field: err.Error()}}
}
