package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/serranorte/serraria-api/internal/domain/entity"
)

// StockItemRepository define o porto de persistência do estoque de madeira.
// Os métodos *ForUpdate bloqueiam a linha (SELECT FOR UPDATE) e devem ser
// usados dentro de transações para serializar leitura-modificação-escrita.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByWoodType(userID, woodType string) (*entity.StockItem, error)
	GetForUpdate(id string) (*entity.StockItem, error)
	GetForUpdateByWoodType(userID, woodType string) (*entity.StockItem, error)
	UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error
	// ListByUser devolve todos os itens da conta ordenados por tipo de madeira.
	ListByUser(userID string) ([]*entity.StockItem, error)
	// ListLowStock devolve os itens com current <= minimum, ordenados por tipo de madeira.
	ListLowStock(userID string) ([]*entity.StockItem, error)
}
