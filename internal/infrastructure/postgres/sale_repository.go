package postgres

import (
	"context"
	"fmt"

	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de vendas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create insere a venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, user_id, sale_date, customer_name, pallet_size, quantity, unit_price, total_price, payment_method, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.SaleDate, sale.CustomerName, sale.PalletSize,
		sale.Quantity, sale.UnitPrice, sale.TotalPrice, sale.PaymentMethod, sale.Notes, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// ListByUser devolve as vendas da conta, mais recentes primeiro.
func (r *SaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, user_id, sale_date, customer_name, pallet_size, quantity, unit_price, total_price, payment_method, notes, created_at
		FROM sales WHERE user_id = $1
		ORDER BY sale_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.SaleDate, &s.CustomerName, &s.PalletSize,
			&s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.PaymentMethod, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list sales: scan: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}
