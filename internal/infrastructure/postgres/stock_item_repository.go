package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/serranorte/serraria-api/internal/domain"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementação de StockItemRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository constrói o adaptador de estoque. Passar pool ou tx.
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, user_id, wood_type, current_quantity, minimum_quantity, unit, supplier, created_at, updated_at`

// Create insere um item de estoque. Violação do unique (user_id, wood_type)
// vira ErrDuplicate.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO wood_stock (id, user_id, wood_type, current_quantity, minimum_quantity, unit, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.WoodType, item.CurrentQuantity, item.MinimumQuantity,
		item.Unit, item.Supplier, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock item: %w", err)
	}
	return nil
}

// GetByID busca um item pelo ID. Devolve nil se não existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM wood_stock WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item")
}

// GetByWoodType busca o item da conta pelo tipo de madeira. Devolve nil se
// não existe.
func (r *StockItemRepo) GetByWoodType(userID, woodType string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM wood_stock WHERE user_id = $1 AND wood_type = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID, woodType), "get stock item by wood type")
}

// GetForUpdate busca o item e bloqueia a linha (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM wood_stock WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item for update")
}

// GetForUpdateByWoodType busca o item da conta pelo tipo de madeira e
// bloqueia a linha.
func (r *StockItemRepo) GetForUpdateByWoodType(userID, woodType string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM wood_stock WHERE user_id = $1 AND wood_type = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID, woodType), "get stock item for update by wood type")
}

// UpdateQuantity grava a nova quantidade corrente do item.
func (r *StockItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE wood_stock SET current_quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// ListByUser devolve todos os itens da conta ordenados por tipo de madeira.
func (r *StockItemRepo) ListByUser(userID string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM wood_stock WHERE user_id = $1 ORDER BY wood_type`
	return r.scanMany(query, "list stock items", userID)
}

// ListLowStock devolve os itens com current <= minimum, ordenados por tipo
// de madeira.
func (r *StockItemRepo) ListLowStock(userID string) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM wood_stock
		WHERE user_id = $1 AND current_quantity <= minimum_quantity
		ORDER BY wood_type`
	return r.scanMany(query, "list low stock", userID)
}

func (r *StockItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var item entity.StockItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.WoodType, &item.CurrentQuantity, &item.MinimumQuantity,
		&item.Unit, &item.Supplier, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

func (r *StockItemRepo) scanMany(query, op string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []*entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.WoodType, &item.CurrentQuantity, &item.MinimumQuantity,
			&item.Unit, &item.Supplier, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
