package usecase

import (
	"errors"
	"fmt"

	"car-rental/pkg/utils"
)

var ErrCarNotFound = errors.New("car not found")

// ValidationError carries per-field messages keyed by json field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}
