package dto

// ErrorResponse corpo de erro HTTP: código estável + mensagem legível.
// Field e Value identificam o campo rejeitado quando o erro é de validação
// ou de estoque insuficiente.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Value   any    `json:"value,omitempty"`
}
