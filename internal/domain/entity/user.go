package entity

import "time"

// User é a conta dona de todos os registros (estoque, caminhões, produção,
// vendas, notificações). Nenhuma operação enxerga dados de outra conta.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
