package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrValueNotFound    = errors.New("option value not found")
	ErrDuplicateValue   = errors.New("duplicate option value")
	ErrNoOrders         = errors.New("no order data available")
)

// ValidationError names the fields that failed required-field or format
// checks so handlers can surface them in the 400 body.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid required fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
