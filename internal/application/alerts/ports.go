package alerts

import (
	"context"

	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// TxRunner executa a varredura de alertas dentro de uma transação.
type TxRunner interface {
	RunAlertSweep(ctx context.Context, fn func(
		notifRepo repository.NotificationRepository,
		stockRepo repository.StockItemRepository,
	) error) error
}
