package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordArrivalRequest entrada para registrar a chegada de um caminhão.
type RecordArrivalRequest struct {
	LicensePlate string          `json:"license_plate"`
	DriverName   string          `json:"driver_name"`
	Supplier     string          `json:"supplier"`
	WoodType     string          `json:"wood_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

// TruckEntryResponse registro de caminhão no pátio.
type TruckEntryResponse struct {
	ID           string          `json:"id"`
	LicensePlate string          `json:"license_plate"`
	DriverName   string          `json:"driver_name"`
	Supplier     string          `json:"supplier"`
	WoodType     string          `json:"wood_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Status       string          `json:"status"`
	EntryDate    time.Time       `json:"entry_date"`
	ExitDate     *time.Time      `json:"exit_date,omitempty"`
}
