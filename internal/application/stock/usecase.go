package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

const defaultUnit = "m³"

// UseCase casos de uso do estoque de madeira: cadastro de tipos e ajustes
// de quantidade com serialização por item.
type UseCase struct {
	txRunner TxRunner
	repo     repository.StockItemRepository
}

// New constrói o caso de uso.
func New(txRunner TxRunner, repo repository.StockItemRepository) *UseCase {
	return &UseCase{txRunner: txRunner, repo: repo}
}

// RegisterItem cadastra um tipo de madeira. Quantidades negativas são
// rejeitadas; o tipo de madeira é único por conta.
func (uc *UseCase) RegisterItem(ctx context.Context, userID string, in dto.RegisterStockItemRequest) (*dto.StockItemResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	if in.WoodType == "" {
		return nil, domain.Invalid("wood_type", in.WoodType)
	}
	if in.CurrentQuantity.IsNegative() {
		return nil, domain.Invalid("current_quantity", in.CurrentQuantity)
	}
	if in.MinimumQuantity.IsNegative() {
		return nil, domain.Invalid("minimum_quantity", in.MinimumQuantity)
	}
	existing, err := uc.repo.GetByWoodType(userID, in.WoodType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	unit := in.Unit
	if unit == "" {
		unit = defaultUnit
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:              uuid.New().String(),
		UserID:          userID,
		WoodType:        in.WoodType,
		CurrentQuantity: in.CurrentQuantity,
		MinimumQuantity: in.MinimumQuantity,
		Unit:            unit,
		Supplier:        in.Supplier,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// AdjustQuantity aplica um delta (crédito positivo, débito negativo) sob
// bloqueio de fila. Se o resultado ficar negativo, a operação aborta com
// estoque insuficiente e nada é alterado.
func (uc *UseCase) AdjustQuantity(ctx context.Context, userID, itemID string, delta decimal.Decimal) (*dto.StockItemResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	if itemID == "" {
		return nil, domain.Invalid("item_id", itemID)
	}

	var out *dto.StockItemResponse
	err := uc.txRunner.RunStock(ctx, func(stockRepo repository.StockItemRepository) error {
		item, err := stockRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.UserID != userID {
			return domain.ErrNotFound
		}
		newQty := item.CurrentQuantity.Add(delta)
		if newQty.IsNegative() {
			return domain.Insufficient("delta", delta)
		}
		now := time.Now()
		if err := stockRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
			return err
		}
		item.CurrentQuantity = newQty
		item.UpdatedAt = now
		out = toStockItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devolve o estoque da conta ordenado por tipo de madeira.
func (uc *UseCase) List(ctx context.Context, userID string) ([]dto.StockItemResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	items, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toStockItemResponse(item))
	}
	return out, nil
}

func toStockItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	if item == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:              item.ID,
		WoodType:        item.WoodType,
		CurrentQuantity: item.CurrentQuantity,
		MinimumQuantity: item.MinimumQuantity,
		Unit:            item.Unit,
		Supplier:        item.Supplier,
		IsLowStock:      item.IsLowStock(),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
