package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar uma venda de paletes.
// SaleDate no formato 2006-01-02; vazio usa o dia corrente.
type RecordSaleRequest struct {
	SaleDate      string          `json:"sale_date"`
	CustomerName  string          `json:"customer_name"`
	PalletSize    string          `json:"pallet_size"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

// SaleResponse venda registrada, com o total derivado na criação.
type SaleResponse struct {
	ID            string          `json:"id"`
	SaleDate      time.Time       `json:"sale_date"`
	CustomerName  string          `json:"customer_name"`
	PalletSize    string          `json:"pallet_size"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
}
