package authenticating

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials cobre tanto usuário inexistente quanto senha
	// incorreta: os dois casos são indistinguíveis para o chamador.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserAlreadyExists  = errors.New("username ou email já cadastrado")
	ErrInvalidToken       = errors.New("token inválido")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidEmail        = errors.New("formato de email inválido")
)

// AuthError é um erro com código de API associado
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
