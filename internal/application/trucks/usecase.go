package trucks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

const defaultUnit = "m³"

// UseCase casos de uso do pátio de caminhões: chegada, saída (com crédito
// de estoque) e busca.
type UseCase struct {
	txRunner TxRunner
	repo     repository.TruckEntryRepository
}

// New constrói o caso de uso.
func New(txRunner TxRunner, repo repository.TruckEntryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, repo: repo}
}

// RecordArrival registra a chegada de um caminhão com status entrada.
// A placa é normalizada para maiúsculas; quantidade deve ser positiva.
func (uc *UseCase) RecordArrival(ctx context.Context, userID string, in dto.RecordArrivalRequest) (*dto.TruckEntryResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	plate := strings.ToUpper(strings.TrimSpace(in.LicensePlate))
	if plate == "" {
		return nil, domain.Invalid("license_plate", in.LicensePlate)
	}
	if in.DriverName == "" {
		return nil, domain.Invalid("driver_name", in.DriverName)
	}
	if in.Supplier == "" {
		return nil, domain.Invalid("supplier", in.Supplier)
	}
	if in.WoodType == "" {
		return nil, domain.Invalid("wood_type", in.WoodType)
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.Invalid("quantity", in.Quantity)
	}

	unit := in.Unit
	if unit == "" {
		unit = defaultUnit
	}
	now := time.Now()
	entry := &entity.TruckEntry{
		ID:           uuid.New().String(),
		UserID:       userID,
		LicensePlate: plate,
		DriverName:   in.DriverName,
		Supplier:     in.Supplier,
		WoodType:     in.WoodType,
		Quantity:     in.Quantity,
		Unit:         unit,
		Status:       entity.TruckStatusEntrada,
		EntryDate:    now,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toTruckEntryResponse(entry), nil
}

// RecordDeparture marca a saída do caminhão e credita a madeira entregue no
// estoque, tudo na mesma transação. Se o tipo de madeira ainda não está
// cadastrado, o item é criado com mínimo zero.
func (uc *UseCase) RecordDeparture(ctx context.Context, userID, entryID string) (*dto.TruckEntryResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}

	var out *dto.TruckEntryResponse
	err := uc.txRunner.RunIntake(ctx, func(
		truckRepo repository.TruckEntryRepository,
		stockRepo repository.StockItemRepository,
	) error {
		entry, err := truckRepo.GetByID(entryID)
		if err != nil {
			return err
		}
		if entry == nil || entry.UserID != userID || entry.Status != entity.TruckStatusEntrada {
			return domain.ErrNotFound
		}

		now := time.Now()
		ok, err := truckRepo.SetDeparture(entry.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			// outra transação concluiu a saída entre a leitura e o update
			return domain.ErrNotFound
		}

		item, err := stockRepo.GetForUpdateByWoodType(userID, entry.WoodType)
		if err != nil {
			return err
		}
		if item == nil {
			item = &entity.StockItem{
				ID:              uuid.New().String(),
				UserID:          userID,
				WoodType:        entry.WoodType,
				CurrentQuantity: entry.Quantity,
				Unit:            entry.Unit,
				Supplier:        entry.Supplier,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := stockRepo.Create(item); err != nil {
				return err
			}
		} else {
			newQty := item.CurrentQuantity.Add(entry.Quantity)
			if err := stockRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
				return err
			}
		}

		entry.Status = entity.TruckStatusSaida
		entry.ExitDate = &now
		out = toTruckEntryResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devolve os caminhões da conta, mais recentes primeiro, filtrando por
// placa/motorista/fornecedor quando term não é vazio.
func (uc *UseCase) List(ctx context.Context, userID, term string) ([]dto.TruckEntryResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	entries, err := uc.repo.ListByUser(userID, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}
	out := make([]dto.TruckEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toTruckEntryResponse(e))
	}
	return out, nil
}

func toTruckEntryResponse(e *entity.TruckEntry) *dto.TruckEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.TruckEntryResponse{
		ID:           e.ID,
		LicensePlate: e.LicensePlate,
		DriverName:   e.DriverName,
		Supplier:     e.Supplier,
		WoodType:     e.WoodType,
		Quantity:     e.Quantity,
		Unit:         e.Unit,
		Status:       e.Status,
		EntryDate:    e.EntryDate,
		ExitDate:     e.ExitDate,
	}
}
