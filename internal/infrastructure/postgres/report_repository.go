package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregação somente-leitura para dashboard e
// relatórios. COALESCE garante o elemento neutro em conjunto vazio.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// dayRange devolve [início do dia, início do dia seguinte) no fuso do dia.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// DailyProductionTotal soma quantity_produced dos lotes do dia.
func (r *ReportRepo) DailyProductionTotal(ctx context.Context, userID string, day time.Time) (int64, error) {
	start, end := dayRange(day)
	query := `
		SELECT COALESCE(SUM(quantity_produced), 0)
		FROM pallets_production
		WHERE user_id = $1 AND production_date >= $2 AND production_date < $3`
	var total int64
	if err := r.q.QueryRow(ctx, query, userID, start, end).Scan(&total); err != nil {
		return 0, fmt.Errorf("daily production total: %w", err)
	}
	return total, nil
}

// DailyRevenue soma total_price das vendas do dia.
func (r *ReportRepo) DailyRevenue(ctx context.Context, userID string, day time.Time) (decimal.Decimal, error) {
	start, end := dayRange(day)
	query := `
		SELECT COALESCE(SUM(total_price), 0)
		FROM sales
		WHERE user_id = $1 AND sale_date >= $2 AND sale_date < $3`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, userID, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("daily revenue: %w", err)
	}
	return total, nil
}

// TotalRevenue soma total_price de todas as vendas da conta.
func (r *ReportRepo) TotalRevenue(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_price), 0) FROM sales WHERE user_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// TotalProduction soma quantity_produced de todos os lotes da conta.
func (r *ReportRepo) TotalProduction(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COALESCE(SUM(quantity_produced), 0) FROM pallets_production WHERE user_id = $1`
	var total int64
	if err := r.q.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total production: %w", err)
	}
	return total, nil
}

// TotalSalesCount conta as vendas da conta.
func (r *ReportRepo) TotalSalesCount(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM sales WHERE user_id = $1`
	var n int64
	if err := r.q.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("total sales count: %w", err)
	}
	return n, nil
}

// StockItemCount conta os tipos de madeira cadastrados.
func (r *ReportRepo) StockItemCount(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM wood_stock WHERE user_id = $1`
	var n int64
	if err := r.q.QueryRow(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("stock item count: %w", err)
	}
	return n, nil
}

// ListUsersWithLowStock devolve as contas com pelo menos um item no ponto
// de reposição ou abaixo.
func (r *ReportRepo) ListUsersWithLowStock(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT user_id
		FROM wood_stock
		WHERE current_quantity <= minimum_quantity
		ORDER BY user_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users with low stock: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list users with low stock: scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
