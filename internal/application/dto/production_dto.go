package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordProductionRequest entrada para registrar um lote de produção.
// ProductionDate no formato 2006-01-02; vazio usa o dia corrente.
type RecordProductionRequest struct {
	ProductionDate   string          `json:"production_date"`
	PalletSize       string          `json:"pallet_size"`
	QuantityProduced int64           `json:"quantity_produced"`
	WoodType         string          `json:"wood_type"`
	WoodConsumed     decimal.Decimal `json:"wood_consumed"`
	Notes            string          `json:"notes"`
}

// ProductionRunResponse lote de produção registrado.
type ProductionRunResponse struct {
	ID               string          `json:"id"`
	ProductionDate   time.Time       `json:"production_date"`
	PalletSize       string          `json:"pallet_size"`
	QuantityProduced int64           `json:"quantity_produced"`
	WoodType         string          `json:"wood_type"`
	WoodConsumed     decimal.Decimal `json:"wood_consumed"`
	Notes            string          `json:"notes,omitempty"`
}
