package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRun registra um lote de paletes produzido e a madeira consumida.
// Imutável depois de criado.
type ProductionRun struct {
	ID               string
	UserID           string
	ProductionDate   time.Time
	PalletSize       string // rótulo livre de dimensão, ex: "120x100"
	QuantityProduced int64
	WoodType         string
	WoodConsumed     decimal.Decimal // volume de madeira debitado do estoque
	Notes            string
	CreatedAt        time.Time
}
