package entity

import "time"

// PalletStock mantém o saldo de paletes acabados por tamanho.
// Creditado pela produção e debitado pelas vendas, sempre dentro da mesma
// transação do registro correspondente.
type PalletStock struct {
	UserID     string
	PalletSize string
	Quantity   int64
	UpdatedAt  time.Time
}
