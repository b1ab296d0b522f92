package trucks

import (
	"context"

	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação com os repositórios
// de pátio e estoque atados a ela: a saída do caminhão e o crédito de
// madeira são confirmados juntos ou desfeitos juntos.
type TxRunner interface {
	RunIntake(ctx context.Context, fn func(
		truckRepo repository.TruckEntryRepository,
		stockRepo repository.StockItemRepository,
	) error) error
}
