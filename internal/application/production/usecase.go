package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// UseCase casos de uso da produção de paletes. Cada lote debita a madeira
// consumida do estoque e credita os paletes acabados, de forma atômica.
type UseCase struct {
	txRunner TxRunner
	repo     repository.ProductionRunRepository
}

// New constrói o caso de uso.
func New(txRunner TxRunner, repo repository.ProductionRunRepository) *UseCase {
	return &UseCase{txRunner: txRunner, repo: repo}
}

// RecordProduction registra um lote. O tipo de madeira precisa estar
// cadastrado no estoque; se o saldo não cobre o consumo, a operação inteira
// aborta com estoque insuficiente (nenhum registro é gravado).
func (uc *UseCase) RecordProduction(ctx context.Context, userID string, in dto.RecordProductionRequest) (*dto.ProductionRunResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	if in.PalletSize == "" {
		return nil, domain.Invalid("pallet_size", in.PalletSize)
	}
	if in.QuantityProduced <= 0 {
		return nil, domain.Invalid("quantity_produced", in.QuantityProduced)
	}
	if in.WoodType == "" {
		return nil, domain.Invalid("wood_type", in.WoodType)
	}
	if !in.WoodConsumed.IsPositive() {
		return nil, domain.Invalid("wood_consumed", in.WoodConsumed)
	}
	date, err := parseDateOrToday(in.ProductionDate)
	if err != nil {
		return nil, domain.Invalid("production_date", in.ProductionDate)
	}

	now := time.Now()
	run := &entity.ProductionRun{
		ID:               uuid.New().String(),
		UserID:           userID,
		ProductionDate:   date,
		PalletSize:       in.PalletSize,
		QuantityProduced: in.QuantityProduced,
		WoodType:         in.WoodType,
		WoodConsumed:     in.WoodConsumed,
		Notes:            in.Notes,
		CreatedAt:        now,
	}

	err = uc.txRunner.RunProduction(ctx, func(
		runRepo repository.ProductionRunRepository,
		stockRepo repository.StockItemRepository,
		palletRepo repository.PalletStockRepository,
	) error {
		item, err := stockRepo.GetForUpdateByWoodType(userID, in.WoodType)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newQty := item.CurrentQuantity.Sub(in.WoodConsumed)
		if newQty.IsNegative() {
			return domain.Insufficient("wood_consumed", in.WoodConsumed)
		}
		if err := stockRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
			return err
		}

		pallets, err := palletRepo.GetForUpdate(userID, in.PalletSize)
		if err != nil {
			return err
		}
		pallets.Quantity += in.QuantityProduced
		pallets.UpdatedAt = now
		if err := palletRepo.Upsert(pallets); err != nil {
			return err
		}

		return runRepo.Create(run)
	})
	if err != nil {
		return nil, err
	}
	return toProductionRunResponse(run), nil
}

// List devolve os lotes da conta, mais recentes primeiro.
func (uc *UseCase) List(ctx context.Context, userID string) ([]dto.ProductionRunResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	runs, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, *toProductionRunResponse(r))
	}
	return out, nil
}

// parseDateOrToday interpreta 2006-01-02 no fuso local; vazio vira a
// meia-noite do dia corrente.
func parseDateOrToday(s string) (time.Time, error) {
	now := time.Now()
	if s == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.ParseInLocation("2006-01-02", s, now.Location())
}

func toProductionRunResponse(r *entity.ProductionRun) *dto.ProductionRunResponse {
	if r == nil {
		return nil
	}
	return &dto.ProductionRunResponse{
		ID:               r.ID,
		ProductionDate:   r.ProductionDate,
		PalletSize:       r.PalletSize,
		QuantityProduced: r.QuantityProduced,
		WoodType:         r.WoodType,
		WoodConsumed:     r.WoodConsumed,
		Notes:            r.Notes,
	}
}
