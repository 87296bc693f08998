package advertising

import (
	"errors"
	"fmt"
)

var ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

// ValidationError aponta qual campo da campanha foi rejeitado
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
