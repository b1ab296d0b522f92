package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/application/sales"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

const testUserID = "user-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePalletRepo struct {
	stocks map[string]*entity.PalletStock
}

func (r *fakePalletRepo) GetForUpdate(userID, palletSize string) (*entity.PalletStock, error) {
	if s, ok := r.stocks[userID+"/"+palletSize]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.PalletStock{UserID: userID, PalletSize: palletSize}, nil
}

func (r *fakePalletRepo) Upsert(stock *entity.PalletStock) error {
	cp := *stock
	r.stocks[stock.UserID+"/"+stock.PalletSize] = &cp
	return nil
}

type fakeNotifRepo struct {
	notifs []*entity.Notification
}

func (r *fakeNotifRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifs = append(r.notifs, &cp)
	return nil
}

func (r *fakeNotifRepo) ListByUser(userID string) ([]*entity.Notification, error) { return nil, nil }
func (r *fakeNotifRepo) MarkRead(id, userID string) (bool, error)                 { return false, nil }
func (r *fakeNotifRepo) MarkAllRead(userID string) error                          { return nil }
func (r *fakeNotifRepo) CountUnread(userID string) (int64, error)                 { return 0, nil }
func (r *fakeNotifRepo) HasUnreadAlertForItem(userID, stockItemID string) (bool, error) {
	return false, nil
}

type fakeTxRunner struct {
	saleRepo   *fakeSaleRepo
	palletRepo *fakePalletRepo
	notifRepo  *fakeNotifRepo
}

// RunSale aplica o callback sobre cópias e só propaga no sucesso.
func (tr *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.SaleRepository,
	repository.PalletStockRepository,
	repository.NotificationRepository,
) error) error {
	saleCopy := &fakeSaleRepo{sales: append([]*entity.Sale{}, tr.saleRepo.sales...)}
	palletCopy := &fakePalletRepo{stocks: map[string]*entity.PalletStock{}}
	for k, v := range tr.palletRepo.stocks {
		cp := *v
		palletCopy.stocks[k] = &cp
	}
	notifCopy := &fakeNotifRepo{notifs: append([]*entity.Notification{}, tr.notifRepo.notifs...)}

	if err := fn(saleCopy, palletCopy, notifCopy); err != nil {
		return err
	}
	tr.saleRepo.sales = saleCopy.sales
	tr.palletRepo.stocks = palletCopy.stocks
	tr.notifRepo.notifs = notifCopy.notifs
	return nil
}

func newUseCase() (*sales.UseCase, *fakeTxRunner) {
	tr := &fakeTxRunner{
		saleRepo:   &fakeSaleRepo{},
		palletRepo: &fakePalletRepo{stocks: map[string]*entity.PalletStock{}},
		notifRepo:  &fakeNotifRepo{},
	}
	return sales.New(tr, tr.saleRepo), tr
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedPallets(tr *fakeTxRunner, size string, qty int64) {
	tr.palletRepo.stocks[testUserID+"/"+size] = &entity.PalletStock{
		UserID: testUserID, PalletSize: size, Quantity: qty,
	}
}

func request() dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		CustomerName:  "Transportadora Sul",
		PalletSize:    "120x100",
		Quantity:      50,
		UnitPrice:     dec("100.00"),
		PaymentMethod: entity.PaymentPix,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Total derivado
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_TotalQuantidadeVezesPreco(t *testing.T) {
	uc, tr := newUseCase()
	seedPallets(tr, "120x100", 100)

	out, err := uc.RecordSale(context.Background(), testUserID, request())
	require.NoError(t, err)
	assert.Equal(t, "5000.00", out.TotalPrice.StringFixed(2), "50 × 100.00 = 5000.00")
}

func TestRecordSale_TotalArredondadoADuasCasas(t *testing.T) {
	uc, tr := newUseCase()
	seedPallets(tr, "120x100", 100)

	in := request()
	in.Quantity = 3
	in.UnitPrice = dec("33.33")
	out, err := uc.RecordSale(context.Background(), testUserID, in)
	require.NoError(t, err)
	assert.Equal(t, "99.99", out.TotalPrice.StringFixed(2), "3 × 33.33 = 99.99")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_FormaPagamentoDesconhecida_RetornaValidacao(t *testing.T) {
	uc, tr := newUseCase()
	seedPallets(tr, "120x100", 100)

	in := request()
	in.PaymentMethod = "cheque"
	_, err := uc.RecordSale(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "payment_method", fe.Field)
	assert.Equal(t, "cheque", fe.Value)
}

func TestRecordSale_QuantidadeZero_RetornaValidacao(t *testing.T) {
	uc, _ := newUseCase()
	in := request()
	in.Quantity = 0
	_, err := uc.RecordSale(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_PrecoNegativo_RetornaValidacao(t *testing.T) {
	uc, _ := newUseCase()
	in := request()
	in.UnitPrice = dec("-1")
	_, err := uc.RecordSale(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Débito de paletes e notificação
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DebitaPaletesECriaNotificacao(t *testing.T) {
	uc, tr := newUseCase()
	seedPallets(tr, "120x100", 100)

	_, err := uc.RecordSale(context.Background(), testUserID, request())
	require.NoError(t, err)

	pallets := tr.palletRepo.stocks[testUserID+"/120x100"]
	assert.Equal(t, int64(50), pallets.Quantity, "100 - 50 = 50")

	require.Len(t, tr.notifRepo.notifs, 1)
	assert.Equal(t, entity.NotificationSuccess, tr.notifRepo.notifs[0].Type)
	assert.False(t, tr.notifRepo.notifs[0].IsRead)
}

func TestRecordSale_PaletesInsuficientes_NadaEGravado(t *testing.T) {
	uc, tr := newUseCase()
	seedPallets(tr, "120x100", 30)

	_, err := uc.RecordSale(context.Background(), testUserID, request())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	pallets := tr.palletRepo.stocks[testUserID+"/120x100"]
	assert.Equal(t, int64(30), pallets.Quantity, "o saldo não pode mudar")
	assert.Empty(t, tr.saleRepo.sales, "nenhuma venda pode ser gravada")
	assert.Empty(t, tr.notifRepo.notifs, "nenhuma notificação pode ser criada")
}

func TestRecordSale_SaldoExato_ZeraPaletes(t *testing.T) {
	uc, tr := newUseCase()
	seedPallets(tr, "120x100", 50)

	_, err := uc.RecordSale(context.Background(), testUserID, request())
	require.NoError(t, err)

	pallets := tr.palletRepo.stocks[testUserID+"/120x100"]
	assert.Equal(t, int64(0), pallets.Quantity, "vender o saldo inteiro é permitido")
}
