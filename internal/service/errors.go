package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidInputError lists the fields that failed validation. It matches
// ErrInvalidInput and unwraps to the underlying validator errors.
type InvalidInputError struct {
	Fields []string
	err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InvalidInputError) Unwrap() error {
	return e.err
}

func newInvalidInputError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &InvalidInputError{Fields: fields, err: verrs}
}

// storageError classifies a repository failure as a transient storage fault
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
