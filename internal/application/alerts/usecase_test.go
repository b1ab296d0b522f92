package alerts_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranorte/serraria-api/internal/application/alerts"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

const testUserID = "user-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items []*entity.StockItem
}

func (r *fakeStockRepo) Create(item *entity.StockItem) error          { return nil }
func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) { return nil, nil }
func (r *fakeStockRepo) GetByWoodType(userID, woodType string) (*entity.StockItem, error) {
	return nil, nil
}
func (r *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeStockRepo) GetForUpdateByWoodType(userID, woodType string) (*entity.StockItem, error) {
	return nil, nil
}
func (r *fakeStockRepo) UpdateQuantity(id string, q decimal.Decimal, t time.Time) error { return nil }
func (r *fakeStockRepo) ListByUser(userID string) ([]*entity.StockItem, error)          { return nil, nil }

func (r *fakeStockRepo) ListLowStock(userID string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.items {
		if it.UserID == userID && it.IsLowStock() {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeNotifRepo struct {
	notifs []*entity.Notification
}

func (r *fakeNotifRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifs = append(r.notifs, &cp)
	return nil
}

func (r *fakeNotifRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifs {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkRead(id, userID string) (bool, error) {
	for _, n := range r.notifs {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotifRepo) MarkAllRead(userID string) error {
	for _, n := range r.notifs {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotifRepo) CountUnread(userID string) (int64, error) {
	var count int64
	for _, n := range r.notifs {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotifRepo) HasUnreadAlertForItem(userID, stockItemID string) (bool, error) {
	for _, n := range r.notifs {
		if n.UserID == userID && n.Type == entity.NotificationAlert && !n.IsRead &&
			n.StockItemID != nil && *n.StockItemID == stockItemID {
			return true, nil
		}
	}
	return false, nil
}

type fakeReportRepo struct {
	lowStockUsers []string
}

func (r *fakeReportRepo) DailyProductionTotal(ctx context.Context, userID string, day time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeReportRepo) DailyRevenue(ctx context.Context, userID string, day time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fakeReportRepo) TotalRevenue(ctx context.Context, userID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fakeReportRepo) TotalProduction(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}
func (r *fakeReportRepo) TotalSalesCount(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}
func (r *fakeReportRepo) StockItemCount(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}
func (r *fakeReportRepo) ListUsersWithLowStock(ctx context.Context) ([]string, error) {
	return r.lowStockUsers, nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func item(id, woodType, current, minimum string) *entity.StockItem {
	return &entity.StockItem{
		ID: id, UserID: testUserID, WoodType: woodType,
		CurrentQuantity: dec(current), MinimumQuantity: dec(minimum), Unit: "m³",
	}
}

// fakeTxRunner serializa as varreduras com um mutex, como a trava de linha
// faz no banco.
type fakeTxRunner struct {
	mu        sync.Mutex
	notifRepo *fakeNotifRepo
	stockRepo *fakeStockRepo
}

func (tr *fakeTxRunner) RunAlertSweep(_ context.Context, fn func(
	repository.NotificationRepository,
	repository.StockItemRepository,
) error) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return fn(tr.notifRepo, tr.stockRepo)
}

func newUseCase(items ...*entity.StockItem) (*alerts.UseCase, *fakeNotifRepo) {
	stockRepo := &fakeStockRepo{items: items}
	notifRepo := &fakeNotifRepo{}
	reportRepo := &fakeReportRepo{lowStockUsers: []string{testUserID}}
	txRunner := &fakeTxRunner{notifRepo: notifRepo, stockRepo: stockRepo}
	return alerts.New(txRunner, notifRepo, stockRepo, reportRepo, zerolog.Nop()), notifRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Varredura de estoque baixo
// ──────────────────────────────────────────────────────────────────────────────

func TestSweepLowStock_SoAlertaItensNoPontoDeReposicao(t *testing.T) {
	uc, notifRepo := newUseCase(
		item("item-1", "Pinus", "15", "20"),     // abaixo do mínimo: alerta
		item("item-2", "Eucalipto", "50", "20"), // acima: sem alerta
		item("item-3", "Cedro", "20", "20"),     // igual ao mínimo: alerta
	)

	out, err := uc.SweepLowStock(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Created)

	types := map[string]bool{}
	for _, n := range notifRepo.notifs {
		assert.Equal(t, entity.NotificationAlert, n.Type)
		require.NotNil(t, n.StockItemID)
		types[*n.StockItemID] = true
	}
	assert.True(t, types["item-1"])
	assert.True(t, types["item-3"])
	assert.False(t, types["item-2"], "Eucalipto 50/20 não pode gerar alerta")
}

func TestSweepLowStock_SegundaVarreduraNaoDuplica(t *testing.T) {
	uc, notifRepo := newUseCase(item("item-1", "Pinus", "15", "20"))

	out, err := uc.SweepLowStock(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)

	out, err = uc.SweepLowStock(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Created, "alerta não lido suprime a duplicata")
	assert.Len(t, notifRepo.notifs, 1)
}

func TestSweepLowStock_AlertaLidoPermiteNovoAlerta(t *testing.T) {
	uc, notifRepo := newUseCase(item("item-1", "Pinus", "15", "20"))

	_, err := uc.SweepLowStock(context.Background(), testUserID)
	require.NoError(t, err)
	require.NoError(t, uc.MarkRead(context.Background(), testUserID, notifRepo.notifs[0].ID))

	out, err := uc.SweepLowStock(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created, "alerta lido não bloqueia nova varredura")
	assert.Len(t, notifRepo.notifs, 2)
}

func TestSweepLowStock_VarredurasSimultaneasNaoDuplicam(t *testing.T) {
	uc, notifRepo := newUseCase(item("item-1", "Pinus", "15", "20"))

	// Varredura manual e agendada disparando ao mesmo tempo: a checagem de
	// duplicata e a criação rodam sob a mesma trava, então só um alerta sai.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.SweepLowStock(context.Background(), testUserID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, notifRepo.notifs, 1, "varreduras simultâneas devem criar um único alerta")
}

func TestSweepAll_VarreTodasAsContas(t *testing.T) {
	uc, notifRepo := newUseCase(item("item-1", "Pinus", "15", "20"))

	uc.SweepAll(context.Background())
	assert.Len(t, notifRepo.notifs, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificações
// ──────────────────────────────────────────────────────────────────────────────

func TestList_DevolveContadorDeNaoLidas(t *testing.T) {
	uc, _ := newUseCase(
		item("item-1", "Pinus", "15", "20"),
		item("item-3", "Cedro", "20", "20"),
	)
	_, err := uc.SweepLowStock(context.Background(), testUserID)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.UnreadCount)

	require.NoError(t, uc.MarkAllRead(context.Background(), testUserID))
	out, err = uc.List(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.UnreadCount)
}

func TestMarkRead_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newUseCase()
	err := uc.MarkRead(context.Background(), testUserID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
