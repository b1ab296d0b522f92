package postgres

import (
	"context"
	"fmt"

	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ repository.ProductionRunRepository = (*ProductionRunRepo)(nil)

// ProductionRunRepo implementação de ProductionRunRepository sobre PostgreSQL.
type ProductionRunRepo struct {
	q Querier
}

// NewProductionRunRepository constrói o adaptador da produção.
func NewProductionRunRepository(q Querier) *ProductionRunRepo {
	return &ProductionRunRepo{q: q}
}

// Create insere o lote de produção.
func (r *ProductionRunRepo) Create(run *entity.ProductionRun) error {
	query := `
		INSERT INTO pallets_production (id, user_id, production_date, pallet_size, quantity_produced, wood_type, wood_consumed, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		run.ID, run.UserID, run.ProductionDate, run.PalletSize, run.QuantityProduced,
		run.WoodType, run.WoodConsumed, run.Notes, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create production run: %w", err)
	}
	return nil
}

// ListByUser devolve os lotes da conta, mais recentes primeiro.
func (r *ProductionRunRepo) ListByUser(userID string) ([]*entity.ProductionRun, error) {
	query := `
		SELECT id, user_id, production_date, pallet_size, quantity_produced, wood_type, wood_consumed, notes, created_at
		FROM pallets_production WHERE user_id = $1
		ORDER BY production_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list production runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.ProductionRun
	for rows.Next() {
		var run entity.ProductionRun
		if err := rows.Scan(
			&run.ID, &run.UserID, &run.ProductionDate, &run.PalletSize, &run.QuantityProduced,
			&run.WoodType, &run.WoodConsumed, &run.Notes, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list production runs: scan: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
