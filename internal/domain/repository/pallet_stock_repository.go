package repository

import "github.com/serranorte/serraria-api/internal/domain/entity"

// PalletStockRepository define o porto do saldo de paletes acabados.
// Usado somente dentro de transações (produção credita, venda debita).
type PalletStockRepository interface {
	// GetForUpdate bloqueia a linha; se o tamanho ainda não existe devolve
	// um registro zerado para o upsert posterior.
	GetForUpdate(userID, palletSize string) (*entity.PalletStock, error)
	Upsert(stock *entity.PalletStock) error
}
