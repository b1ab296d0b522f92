package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

var _ repository.PalletStockRepository = (*PalletStockRepo)(nil)

// PalletStockRepo implementação de PalletStockRepository sobre PostgreSQL.
type PalletStockRepo struct {
	q Querier
}

// NewPalletStockRepository constrói o adaptador do saldo de paletes.
func NewPalletStockRepository(q Querier) *PalletStockRepo {
	return &PalletStockRepo{q: q}
}

// GetForUpdate busca o saldo e bloqueia a linha (SELECT FOR UPDATE).
// Se o tamanho ainda não existe, devolve um registro zerado para o upsert.
func (r *PalletStockRepo) GetForUpdate(userID, palletSize string) (*entity.PalletStock, error) {
	query := `
		SELECT user_id, pallet_size, quantity, updated_at
		FROM pallet_stock WHERE user_id = $1 AND pallet_size = $2
		FOR UPDATE`
	var s entity.PalletStock
	err := r.q.QueryRow(context.Background(), query, userID, palletSize).Scan(
		&s.UserID, &s.PalletSize, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.PalletStock{UserID: userID, PalletSize: palletSize}, nil
		}
		return nil, fmt.Errorf("get pallet stock for update: %w", err)
	}
	return &s, nil
}

// Upsert insere ou atualiza o saldo (por conta e tamanho).
func (r *PalletStockRepo) Upsert(stock *entity.PalletStock) error {
	query := `
		INSERT INTO pallet_stock (user_id, pallet_size, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, pallet_size)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, stock.UserID, stock.PalletSize, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert pallet stock: %w", err)
	}
	return nil
}
