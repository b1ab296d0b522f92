package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um caminhão no pátio.
const (
	TruckStatusEntrada = "entrada" // na serraria
	TruckStatusSaida   = "saida"   // já deixou o pátio
)

// TruckEntry registra a chegada (e eventual saída) de um caminhão de madeira.
// A placa é sempre armazenada em maiúsculas. ExitDate, quando presente,
// é posterior ou igual a EntryDate.
type TruckEntry struct {
	ID           string
	UserID       string
	LicensePlate string
	DriverName   string
	Supplier     string
	WoodType     string
	Quantity     decimal.Decimal
	Unit         string
	Status       string
	EntryDate    time.Time
	ExitDate     *time.Time
	CreatedAt    time.Time
}
