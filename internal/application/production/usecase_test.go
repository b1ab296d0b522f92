package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/application/production"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

const testUserID = "user-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória (a transação fake só aplica as escritas no commit,
// descartando tudo quando o callback devolve erro)
// ──────────────────────────────────────────────────────────────────────────────

type fakeRunRepo struct {
	runs []*entity.ProductionRun
}

func (r *fakeRunRepo) Create(run *entity.ProductionRun) error {
	cp := *run
	r.runs = append(r.runs, &cp)
	return nil
}

func (r *fakeRunRepo) ListByUser(userID string) ([]*entity.ProductionRun, error) {
	var out []*entity.ProductionRun
	for _, run := range r.runs {
		if run.UserID == userID {
			cp := *run
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func (r *fakeStockRepo) Create(item *entity.StockItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	if it, ok := r.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) GetByWoodType(userID, woodType string) (*entity.StockItem, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.WoodType == woodType {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) GetForUpdateByWoodType(userID, woodType string) (*entity.StockItem, error) {
	return r.GetByWoodType(userID, woodType)
}

func (r *fakeStockRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	it := r.items[id]
	it.CurrentQuantity = quantity
	it.UpdatedAt = updatedAt
	return nil
}

func (r *fakeStockRepo) ListByUser(userID string) ([]*entity.StockItem, error) { return nil, nil }
func (r *fakeStockRepo) ListLowStock(userID string) ([]*entity.StockItem, error) {
	return nil, nil
}

type fakePalletRepo struct {
	stocks map[string]*entity.PalletStock // chave: userID + "/" + palletSize
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

type fakeTxRunner struct {
	runRepo    *fakeRunRepo
	stockRepo  *fakeStockRepo
	palletRepo *fakePalletRepo
}

// RunProduction aplica o callback sobre cópias e só propaga no sucesso,
// imitando o rollback da transação real.
func (tr *fakeTxRunner) RunProduction(_ context.Context, fn func(
	repository.ProductionRunRepository,
	repository.StockItemRepository,
	repository.PalletStockRepository,
) error) error {
	runCopy := &fakeRunRepo{runs: append([]*entity.ProductionRun{}, tr.runRepo.runs...)}
	stockCopy := &fakeStockRepo{items: map[string]*entity.StockItem{}}
	for k, v := range tr.stockRepo.items {
		cp := *v
		stockCopy.items[k] = &cp
	}
	palletCopy := &fakePalletRepo{stocks: map[string]*entity.PalletStock{}}
	for k, v := range tr.palletRepo.stocks {
		cp := *v
		palletCopy.stocks[k] = &cp
	}

	if err := fn(runCopy, stockCopy, palletCopy); err != nil {
		return err
	}
	tr.runRepo.runs = runCopy.runs
	tr.stockRepo.items = stockCopy.items
	tr.palletRepo.stocks = palletCopy.stocks
	return nil
}

func newUseCase() (*production.UseCase, *fakeTxRunner) {
	tr := &fakeTxRunner{
		runRepo:    &fakeRunRepo{},
		stockRepo:  &fakeStockRepo{items: map[string]*entity.StockItem{}},
		palletRepo: &fakePalletRepo{stocks: map[string]*entity.PalletStock{}},
	}
	return production.New(tr, tr.runRepo), tr
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedPinus(tr *fakeTxRunner, qty string) {
	tr.stockRepo.items["item-1"] = &entity.StockItem{
		ID: "item-1", UserID: testUserID, WoodType: "Pinus",
		CurrentQuantity: dec(qty), Unit: "m³",
	}
}

func request() dto.RecordProductionRequest {
	return dto.RecordProductionRequest{
		PalletSize:       "120x100",
		QuantityProduced: 80,
		WoodType:         "Pinus",
		WoodConsumed:     dec("12.5"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de lote
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordProduction_DebitaMadeiraECreditaPaletes(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "40")

	out, err := uc.RecordProduction(context.Background(), testUserID, request())
	require.NoError(t, err)
	assert.Equal(t, int64(80), out.QuantityProduced)

	item := tr.stockRepo.items["item-1"]
	assert.True(t, dec("27.5").Equal(item.CurrentQuantity), "40 - 12.5 = 27.5")

	pallets := tr.palletRepo.stocks[testUserID+"/120x100"]
	require.NotNil(t, pallets)
	assert.Equal(t, int64(80), pallets.Quantity)
}

func TestRecordProduction_LotesAcumulamPaletes(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "100")

	_, err := uc.RecordProduction(context.Background(), testUserID, request())
	require.NoError(t, err)
	_, err = uc.RecordProduction(context.Background(), testUserID, request())
	require.NoError(t, err)

	pallets := tr.palletRepo.stocks[testUserID+"/120x100"]
	assert.Equal(t, int64(160), pallets.Quantity)
	assert.Len(t, tr.runRepo.runs, 2)
}

func TestRecordProduction_MadeiraInsuficiente_NadaEGravado(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "10")

	_, err := uc.RecordProduction(context.Background(), testUserID, request())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item := tr.stockRepo.items["item-1"]
	assert.True(t, dec("10").Equal(item.CurrentQuantity), "o saldo não pode mudar")
	assert.Empty(t, tr.runRepo.runs, "nenhum lote pode ser gravado")
	assert.Empty(t, tr.palletRepo.stocks, "nenhum palete pode ser creditado")
}

func TestRecordProduction_MadeiraNaoCadastrada_RetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RecordProduction(context.Background(), testUserID, request())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordProduction_ConsumoExato_ZeraEstoque(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "12.5")

	_, err := uc.RecordProduction(context.Background(), testUserID, request())
	require.NoError(t, err)

	item := tr.stockRepo.items["item-1"]
	assert.True(t, item.CurrentQuantity.IsZero(), "consumir o saldo inteiro é permitido")
}

func TestRecordProduction_QuantidadeZero_RetornaValidacao(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "40")
	in := request()
	in.QuantityProduced = 0
	_, err := uc.RecordProduction(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordProduction_DataInvalida_RetornaValidacao(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "40")
	in := request()
	in.ProductionDate = "01/02/2024"
	_, err := uc.RecordProduction(context.Background(), testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordProduction_DataExplicita(t *testing.T) {
	uc, tr := newUseCase()
	seedPinus(tr, "40")
	in := request()
	in.ProductionDate = "2024-01-15"
	out, err := uc.RecordProduction(context.Background(), testUserID, in)
	require.NoError(t, err)
	assert.Equal(t, 2024, out.ProductionDate.Year())
	assert.Equal(t, time.January, out.ProductionDate.Month())
	assert.Equal(t, 15, out.ProductionDate.Day())
}
