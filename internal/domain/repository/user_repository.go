package repository

import "github.com/serranorte/serraria-api/internal/domain/entity"

// UserRepository define o porto de persistência das contas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
