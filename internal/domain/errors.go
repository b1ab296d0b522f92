package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrAuthRequired       = errors.New("autenticação obrigatória")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
)

// FieldError anota um erro de domínio com o campo e o valor que o causaram,
// para que o chamador monte uma mensagem precisa. Unwrap devolve o erro base,
// então errors.Is(err, ErrInvalidInput) continua funcionando.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: campo %q com valor %v", e.Err.Error(), e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Invalid constrói um FieldError de validação para o campo informado.
func Invalid(field string, value any) error {
	return &FieldError{Field: field, Value: value, Err: ErrInvalidInput}
}

// Insufficient constrói um FieldError de estoque insuficiente.
func Insufficient(field string, value any) error {
	return &FieldError{Field: field, Value: value, Err: ErrInsufficientStock}
}
