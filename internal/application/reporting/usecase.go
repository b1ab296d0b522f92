package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/serranorte/serraria-api/internal/application/dto"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// UseCase relatórios e painel: métricas do dia, totais consolidados e
// exportação em PDF. Só consultas, nada aqui escreve no banco.
type UseCase struct {
	reportRepo repository.ReportRepository
	stockRepo  repository.StockItemRepository
	pdf        PDFGenerator
}

// New constrói o caso de uso.
func New(reportRepo repository.ReportRepository, stockRepo repository.StockItemRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{reportRepo: reportRepo, stockRepo: stockRepo, pdf: pdf}
}

// Dashboard monta o resumo do dia corrente para o painel.
//
// Quatro consultas em paralelo:
//  1. DailyProductionTotal(hoje) → paletes produzidos hoje
//  2. DailyRevenue(hoje)         → faturamento de hoje
//  3. StockItemCount             → tipos de madeira cadastrados
//  4. ListLowStock               → itens no ponto de reposição
func (uc *UseCase) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	today := time.Now()

	type countResult struct {
		n   int64
		err error
	}
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		items []*entity.StockItem
		err   error
	}

	prodCh := make(chan countResult, 1)
	revCh := make(chan revenueResult, 1)
	stockCh := make(chan countResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.reportRepo.DailyProductionTotal(ctx, userID, today)
		prodCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.reportRepo.DailyRevenue(ctx, userID, today)
		revCh <- revenueResult{total, err}
	}()
	go func() {
		n, err := uc.reportRepo.StockItemCount(ctx, userID)
		stockCh <- countResult{n, err}
	}()
	go func() {
		items, err := uc.stockRepo.ListLowStock(userID)
		lowCh <- lowStockResult{items, err}
	}()

	prod := <-prodCh
	rev := <-revCh
	stock := <-stockCh
	low := <-lowCh

	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: produção de hoje: %w", prod.err)
	}
	if rev.err != nil {
		return nil, fmt.Errorf("dashboard: faturamento de hoje: %w", rev.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: contagem de estoque: %w", stock.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", low.err)
	}

	lowItems := toStockItemResponses(low.items)
	return &dto.DashboardResponse{
		PalletsProducedToday: prod.n,
		RevenueToday:         rev.total.Round(2),
		StockItemCount:       stock.n,
		LowStockCount:        len(lowItems),
		LowStockItems:        lowItems,
	}, nil
}

// Summary devolve os totais consolidados de toda a história da conta.
func (uc *UseCase) Summary(ctx context.Context, userID string) (*dto.ReportSummaryResponse, error) {
	if userID == "" {
		return nil, domain.ErrAuthRequired
	}
	totalProd, err := uc.reportRepo.TotalProduction(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: produção total: %w", err)
	}
	salesCount, err := uc.reportRepo.TotalSalesCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: total de vendas: %w", err)
	}
	revenue, err := uc.reportRepo.TotalRevenue(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: faturamento total: %w", err)
	}
	stockCount, err := uc.reportRepo.StockItemCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("relatório: contagem de estoque: %w", err)
	}
	return &dto.ReportSummaryResponse{
		TotalProduction: totalProd,
		TotalSalesCount: salesCount,
		TotalRevenue:    revenue.Round(2),
		StockItemCount:  stockCount,
	}, nil
}

// SummaryPDF renderiza o relatório consolidado em PDF, incluindo a lista de
// itens com estoque baixo.
func (uc *UseCase) SummaryPDF(ctx context.Context, userID string) ([]byte, error) {
	summary, err := uc.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	low, err := uc.stockRepo.ListLowStock(userID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSummary(*summary, toStockItemResponses(low), time.Now())
}

// DailyProduction soma os paletes produzidos no dia informado.
func (uc *UseCase) DailyProduction(ctx context.Context, userID string, day time.Time) (int64, error) {
	if userID == "" {
		return 0, domain.ErrAuthRequired
	}
	return uc.reportRepo.DailyProductionTotal(ctx, userID, day)
}

// DailyRevenue soma o faturamento do dia informado.
func (uc *UseCase) DailyRevenue(ctx context.Context, userID string, day time.Time) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, domain.ErrAuthRequired
	}
	total, err := uc.reportRepo.DailyRevenue(ctx, userID, day)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

func toStockItemResponses(items []*entity.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.StockItemResponse{
			ID:              item.ID,
			WoodType:        item.WoodType,
			CurrentQuantity: item.CurrentQuantity,
			MinimumQuantity: item.MinimumQuantity,
			Unit:            item.Unit,
			Supplier:        item.Supplier,
			IsLowStock:      item.IsLowStock(),
			CreatedAt:       item.CreatedAt,
			UpdatedAt:       item.UpdatedAt,
		})
	}
	return out
}
