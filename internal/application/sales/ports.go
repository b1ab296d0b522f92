package sales

import (
	"context"

	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// TxRunner executa o callback dentro de uma transação: débito de paletes,
// gravação da venda e notificação de sucesso confirmam juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		palletRepo repository.PalletStockRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
