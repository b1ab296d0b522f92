package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas do dia corrente para o painel.
type DashboardResponse struct {
	PalletsProducedToday int64               `json:"pallets_produced_today"`
	RevenueToday         decimal.Decimal     `json:"revenue_today"`
	StockItemCount       int64               `json:"stock_item_count"`
	LowStockCount        int                 `json:"low_stock_count"`
	LowStockItems        []StockItemResponse `json:"low_stock_items"`
}

// ReportSummaryResponse totais de toda a história da conta.
type ReportSummaryResponse struct {
	TotalProduction int64           `json:"total_production"`
	TotalSalesCount int64           `json:"total_sales_count"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	StockItemCount  int64           `json:"stock_item_count"`
}
