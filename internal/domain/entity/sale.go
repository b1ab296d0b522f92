package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas.
const (
	PaymentDinheiro = "dinheiro"
	PaymentPix      = "pix"
	PaymentCartao   = "cartao"
	PaymentBoleto   = "boleto"
	PaymentPrazo    = "prazo"
)

// ValidPaymentMethod informa se o valor é uma forma de pagamento conhecida.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentDinheiro, PaymentPix, PaymentCartao, PaymentBoleto, PaymentPrazo:
		return true
	}
	return false
}

// Sale registra uma venda de paletes. TotalPrice é derivado uma única vez na
// criação (quantidade × preço unitário, arredondado a 2 casas) e nunca
// recalculado depois.
type Sale struct {
	ID            string
	UserID        string
	SaleDate      time.Time
	CustomerName  string
	PalletSize    string
	Quantity      int64
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
}
