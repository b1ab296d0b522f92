package repository

import "github.com/serranorte/serraria-api/internal/domain/entity"

// SaleRepository define o porto de persistência das vendas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListByUser(userID string) ([]*entity.Sale, error)
}
