package repository

import "github.com/jhoicas/Libreria-pos/internal/domain/entity"

// CustomerRepository define el puerto de almacenamiento para Customer.
// GetByAccount retorna (nil, nil) si la cuenta no existe; el caso de uso
// decide si eso es ErrNotFound.
type CustomerRepository interface {
	// Create falla con domain.ErrDuplicate si el número de cuenta ya existe.
	Create(customer *entity.Customer) error
	// Update tiene semántica upsert por número de cuenta.
	Update(customer *entity.Customer) error
	GetByAccount(accountNo string) (*entity.Customer, error)
	Exists(accountNo string) bool
}
