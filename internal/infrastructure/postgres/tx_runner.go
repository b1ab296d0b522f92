package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serranorte/serraria-api/internal/application/alerts"
	"github.com/serranorte/serraria-api/internal/application/production"
	"github.com/serranorte/serraria-api/internal/application/sales"
	"github.com/serranorte/serraria-api/internal/application/stock"
	"github.com/serranorte/serraria-api/internal/application/trucks"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ trucks.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ alerts.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStock transação para ajustes de estoque de madeira.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunIntake transação para a saída de caminhão com crédito de estoque.
func (r *TxRunner) RunIntake(ctx context.Context, fn func(
	truckRepo repository.TruckEntryRepository,
	stockRepo repository.StockItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTruckEntryRepository(tx), NewStockItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduction transação para lote de produção (débito de madeira e
// crédito de paletes).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	runRepo repository.ProductionRunRepository,
	stockRepo repository.StockItemRepository,
	palletRepo repository.PalletStockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductionRunRepository(tx), NewStockItemRepository(tx), NewPalletStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAlertSweep transação para a varredura de alertas de estoque baixo
// (checagem de duplicata e criação sob a trava da linha do item).
func (r *TxRunner) RunAlertSweep(ctx context.Context, fn func(
	notifRepo repository.NotificationRepository,
	stockRepo repository.StockItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewNotificationRepository(tx), NewStockItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale transação para venda (débito de paletes, venda e notificação).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	palletRepo repository.PalletStockRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleRepository(tx), NewPalletStockRepository(tx), NewNotificationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
