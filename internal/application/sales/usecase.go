package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// UseCase casos de uso de vendas. O total é derivado uma única vez na
// criação (quantidade × preço unitário, arredondado a 2 casas) e a venda
// debita os paletes acabados na mesma transação.
type UseCase struct {
	txRunner TxRunner
	repo     repository.SaleRepository
}

// New constrói o caso de uso.
func New(txRunner TxRunner, repo repository.SaleRepository) *UseCase {
	return &UseCase{txRunner: txRunner, repo: repo}
}

// RecordSale registra uma venda. Se o saldo de paletes do tamanho vendido
// não cobre a quantidade, a operação inteira aborta com estoque
// insuficiente. Em caso de sucesso cria uma notificação do tipo success.
func (uc *UseCase) RecordSale(ctx context.Context, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	if in.CustomerName == "" {
		return nil, domain.Invalid("customer_name", in.CustomerName)
	}
	if in.PalletSize == "" {
		return nil, domain.Invalid("pallet_size", in.PalletSize)
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity", in.Quantity)
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("unit_price", in.UnitPrice)
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.Invalid("payment_method", in.PaymentMethod)
	}
	date, err := parseDateOrToday(in.SaleDate)
	if err != nil {
		return nil, domain.Invalid("sale_date", in.SaleDate)
	}

	now := time.Now()
	total := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)).Round(2)
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		UserID:        userID,
		SaleDate:      date,
		CustomerName:  in.CustomerName,
		PalletSize:    in.PalletSize,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		TotalPrice:    total,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		palletRepo repository.PalletStockRepository,
		notifRepo repository.NotificationRepository,
	) error {
		pallets, err := palletRepo.GetForUpdate(userID, in.PalletSize)
		if err != nil {
			return err
		}
		if pallets.Quantity < in.Quantity {
			return domain.Insufficient("quantity", in.Quantity)
		}
		pallets.Quantity -= in.Quantity
		pallets.UpdatedAt = now
		if err := palletRepo.Upsert(pallets); err != nil {
			return err
		}

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		return notifRepo.Create(&entity.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Title:     "Venda registrada",
			Message:   fmt.Sprintf("%d palete(s) %s para %s — R$ %s", sale.Quantity, sale.PalletSize, sale.CustomerName, sale.TotalPrice.StringFixed(2)),
			Type:      entity.NotificationSuccess,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devolve as vendas da conta, mais recentes primeiro.
func (uc *UseCase) List(ctx context.Context, userID string) ([]dto.SaleResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	sales, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func parseDateOrToday(s string) (time.Time, error) {
	now := time.Now()
	if s == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.ParseInLocation("2006-01-02", s, now.Location())
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		SaleDate:      s.SaleDate,
		CustomerName:  s.CustomerName,
		PalletSize:    s.PalletSize,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalPrice:    s.TotalPrice,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
	}
}
