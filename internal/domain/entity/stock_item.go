package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa o estoque de um tipo de madeira da serraria.
// O tipo de madeira é único por conta; as quantidades nunca ficam negativas.
type StockItem struct {
	ID              string
	UserID          string
	WoodType        string
	CurrentQuantity decimal.Decimal // em m³ (ou na unidade informada)
	MinimumQuantity decimal.Decimal // ponto de reposição
	Unit            string
	Supplier        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsLowStock indica se o item está no ponto de reposição ou abaixo dele.
// A igualdade conta como estoque baixo (limite inclusivo).
func (s *StockItem) IsLowStock() bool {
	return s.CurrentQuantity.LessThanOrEqual(s.MinimumQuantity)
}
