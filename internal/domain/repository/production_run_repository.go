package repository

import "github.com/serranorte/serraria-api/internal/domain/entity"

// ProductionRunRepository define o porto de persistência da produção de paletes.
type ProductionRunRepository interface {
	Create(run *entity.ProductionRun) error
	ListByUser(userID string) ([]*entity.ProductionRun, error)
}
