package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// UseCase notificações do painel e varredura de estoque baixo.
type UseCase struct {
	txRunner   TxRunner
	notifRepo  repository.NotificationRepository
	stockRepo  repository.StockItemRepository
	reportRepo repository.ReportRepository
	log        zerolog.Logger
}

// New constrói o caso de uso.
func New(txRunner TxRunner, notifRepo repository.NotificationRepository, stockRepo repository.StockItemRepository, reportRepo repository.ReportRepository, log zerolog.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, notifRepo: notifRepo, stockRepo: stockRepo, reportRepo: reportRepo, log: log}
}

// SweepLowStock percorre o estoque da conta e cria um alerta para cada item
// no ponto de reposição ou abaixo. Itens que já têm alerta não lido são
// pulados. A checagem e a criação rodam na mesma transação, com a linha do
// item travada, então varreduras simultâneas (manual e agendada) não duplicam.
func (uc *UseCase) SweepLowStock(ctx context.Context, userID string) (*dto.SweepResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	items, err := uc.stockRepo.ListLowStock(userID)
	if err != nil {
		return nil, err
	}

	created := 0
	now := time.Now()
	err = uc.txRunner.RunAlertSweep(ctx, func(
		notifRepo repository.NotificationRepository,
		stockRepo repository.StockItemRepository,
	) error {
		for _, listed := range items {
			// trava a linha do item; itens ajustados desde a listagem
			// são reavaliados sob a trava
			item, err := stockRepo.GetForUpdate(listed.ID)
			if err != nil {
				return err
			}
			if item == nil || !item.IsLowStock() {
				continue
			}
			exists, err := notifRepo.HasUnreadAlertForItem(userID, item.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			itemID := item.ID
			n := &entity.Notification{
				ID:          uuid.New().String(),
				UserID:      userID,
				Title:       "Estoque baixo",
				Message:     fmt.Sprintf("%s em %s %s (mínimo %s %s)", item.WoodType, item.CurrentQuantity.String(), item.Unit, item.MinimumQuantity.String(), item.Unit),
				Type:        entity.NotificationAlert,
				StockItemID: &itemID,
				CreatedAt:   now,
			}
			if err := notifRepo.Create(n); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SweepResponse{Created: created}, nil
}

// SweepAll roda a varredura para todas as contas com estoque baixo. Usada
// pelo agendador; falhas por conta são registradas e não interrompem as demais.
func (uc *UseCase) SweepAll(ctx context.Context) {
	userIDs, err := uc.reportRepo.ListUsersWithLowStock(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("varredura de estoque baixo: falha ao listar contas")
		return
	}
	for _, userID := range userIDs {
		res, err := uc.SweepLowStock(ctx, userID)
		if err != nil {
			uc.log.Error().Err(err).Str("user_id", userID).Msg("varredura de estoque baixo: falha na conta")
			continue
		}
		if res.Created > 0 {
			uc.log.Info().Str("user_id", userID).Int("created", res.Created).Msg("alertas de estoque baixo criados")
		}
	}
}

// List devolve as notificações da conta com o contador de não lidas.
func (uc *UseCase) List(ctx context.Context, userID string) (*dto.NotificationListResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	notifs, err := uc.notifRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	unread, err := uc.notifRepo.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items, UnreadCount: unread}, nil
}

// MarkRead marca uma notificação como lida.
func (uc *UseCase) MarkRead(ctx context.Context, userID, id string) error {
	if userID == "" {
		return domain.ErrAuthRequired
	}
	ok, err := uc.notifRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead marca todas as notificações da conta como lidas.
func (uc *UseCase) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrAuthRequired
	}
	return uc.notifRepo.MarkAllRead(userID)
}
