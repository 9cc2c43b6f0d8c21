// Package apperror provides the error envelopes shown to the operator.
// Input problems are collected per field so the shell can list all of them at
// once instead of failing on the first one.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AppError is a plain operator-facing message.
type AppError struct {
	Detail string
}

func New(msg string) *AppError {
	return &AppError{Detail: msg}
}

func (e *AppError) Error() string { return e.Detail }

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string
	Fields map[string]string
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%s)", name, e.Fields[name]))
	}
	return e.Detail + ": " + strings.Join(parts, ", ")
}

// FromValidator converts go-playground/validator output into a ValidationError.
// Any other error is returned unchanged.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return NewValidation(fields)
}
