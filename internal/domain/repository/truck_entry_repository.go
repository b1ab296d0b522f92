package repository

import (
	"time"

	"github.com/serranorte/serraria-api/internal/domain/entity"
)

// TruckEntryRepository define o porto de persistência do pátio de caminhões.
type TruckEntryRepository interface {
	Create(entry *entity.TruckEntry) error
	GetByID(id string) (*entity.TruckEntry, error)
	// SetDeparture marca a saída somente se o caminhão ainda está com status
	// entrada; devolve false quando nenhuma linha mudou.
	SetDeparture(id string, exitDate time.Time) (bool, error)
	// ListByUser devolve as entradas da conta, mais recentes primeiro.
	// term filtra por placa, motorista ou fornecedor (substring, sem
	// distinção de maiúsculas); vazio devolve tudo.
	ListByUser(userID, term string) ([]*entity.TruckEntry, error)
}
