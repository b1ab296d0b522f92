package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/serranorte/serraria-api/internal/domain/entity"
	"github.com/serranorte/serraria-api/internal/domain/repository"
)

// likeEscaper neutraliza os curingas do ILIKE no termo de busca, para que
// um % ou _ digitado pelo usuário seja tratado como texto literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var _ repository.TruckEntryRepository = (*TruckEntryRepo)(nil)

// TruckEntryRepo implementação de TruckEntryRepository sobre PostgreSQL.
type TruckEntryRepo struct {
	q Querier
}

// NewTruckEntryRepository constrói o adaptador do pátio de caminhões.
func NewTruckEntryRepository(q Querier) *TruckEntryRepo {
	return &TruckEntryRepo{q: q}
}

const truckColumns = `id, user_id, license_plate, driver_name, supplier, wood_type, quantity, unit, status, entry_date, exit_date, created_at`

// Create insere o registro de chegada.
func (r *TruckEntryRepo) Create(entry *entity.TruckEntry) error {
	query := `
		INSERT INTO trucks (id, user_id, license_plate, driver_name, supplier, wood_type, quantity, unit, status, entry_date, exit_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.LicensePlate, entry.DriverName, entry.Supplier,
		entry.WoodType, entry.Quantity, entry.Unit, entry.Status, entry.EntryDate, entry.ExitDate, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create truck entry: %w", err)
	}
	return nil
}

// GetByID busca um caminhão pelo ID. Devolve nil se não existe.
func (r *TruckEntryRepo) GetByID(id string) (*entity.TruckEntry, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE id = $1`
	var e entity.TruckEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.LicensePlate, &e.DriverName, &e.Supplier,
		&e.WoodType, &e.Quantity, &e.Unit, &e.Status, &e.EntryDate, &e.ExitDate, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck entry: %w", err)
	}
	return &e, nil
}

// SetDeparture marca a saída do caminhão. A transição é condicionada ao
// status entrada: duas saídas concorrentes sobre a mesma entrada passam pela
// leitura sem trava, mas só uma muda a linha e credita o estoque.
func (r *TruckEntryRepo) SetDeparture(id string, exitDate time.Time) (bool, error) {
	query := `UPDATE trucks SET status = $2, exit_date = $3 WHERE id = $1 AND status = $4`
	tag, err := r.q.Exec(context.Background(), query, id, entity.TruckStatusSaida, exitDate, entity.TruckStatusEntrada)
	if err != nil {
		return false, fmt.Errorf("set truck departure: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser devolve os caminhões da conta, mais recentes primeiro.
// term filtra por placa, motorista ou fornecedor (ILIKE).
func (r *TruckEntryRepo) ListByUser(userID, term string) ([]*entity.TruckEntry, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE user_id = $1`
	args := []any{userID}
	if term != "" {
		query += ` AND (license_plate ILIKE $2 OR driver_name ILIKE $2 OR supplier ILIKE $2)`
		args = append(args, "%"+likeEscaper.Replace(term)+"%")
	}
	query += ` ORDER BY entry_date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list truck entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.TruckEntry
	for rows.Next() {
		var e entity.TruckEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.LicensePlate, &e.DriverName, &e.Supplier,
			&e.WoodType, &e.Quantity, &e.Unit, &e.Status, &e.EntryDate, &e.ExitDate, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list truck entries: scan: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
