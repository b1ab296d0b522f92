package production

import (
	"context"

	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação: débito da madeira,
// crédito de paletes acabados e gravação do lote confirmam juntos.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		runRepo repository.ProductionRunRepository,
		stockRepo repository.StockItemRepository,
		palletRepo repository.PalletStockRepository,
	) error) error
}
