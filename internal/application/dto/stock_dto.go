package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterStockItemRequest entrada para cadastrar um tipo de madeira.
type RegisterStockItemRequest struct {
	WoodType        string          `json:"wood_type"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	Unit            string          `json:"unit"`
	Supplier        string          `json:"supplier"`
}

// AdjustStockRequest entrada para creditar/debitar um item (delta com sinal).
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// StockItemResponse item de estoque com o indicador de estoque baixo derivado.
type StockItemResponse struct {
	ID              string          `json:"id"`
	WoodType        string          `json:"wood_type"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	Unit            string          `json:"unit"`
	Supplier        string          `json:"supplier,omitempty"`
	IsLowStock      bool            `json:"is_low_stock"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
