package stock

import (
	"context"

	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação, entregando um
// repositório de estoque atado à transação (Commit se fn devolve nil,
// Rollback caso contrário).
type TxRunner interface {
	RunStock(ctx context.Context, fn func(stockRepo repository.StockItemRepository) error) error
}
