package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRepository concentra as consultas de agregação somente-leitura usadas
// pelo dashboard e pelos relatórios. Toda soma sobre conjunto vazio devolve
// o elemento neutro (0), nunca erro.
type ReportRepository interface {
	// DailyProductionTotal soma quantity_produced dos lotes cuja data cai no
	// dia informado (intervalo [início do dia, início do dia seguinte)).
	DailyProductionTotal(ctx context.Context, userID string, day time.Time) (int64, error)
	// DailyRevenue soma total_price das vendas do dia, mesma regra de intervalo.
	DailyRevenue(ctx context.Context, userID string, day time.Time) (decimal.Decimal, error)
	TotalRevenue(ctx context.Context, userID string) (decimal.Decimal, error)
	// TotalProduction soma quantity_produced de todos os lotes da conta.
	TotalProduction(ctx context.Context, userID string) (int64, error)
	TotalSalesCount(ctx context.Context, userID string) (int64, error)
	StockItemCount(ctx context.Context, userID string) (int64, error)
	// ListUsersWithLowStock devolve os IDs das contas com pelo menos um item
	// no ponto de reposição ou abaixo (usado pela varredura agendada).
	ListUsersWithLowStock(ctx context.Context) ([]string, error)
}
