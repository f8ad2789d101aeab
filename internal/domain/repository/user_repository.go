package repository

import "github.com/jhoicas/Libreria-pos/internal/domain/entity"

// UserRepository define el puerto de almacenamiento para usuarios del sistema.
type UserRepository interface {
	// Create falla con domain.ErrDuplicate si el username ya existe.
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
}
