package repository

import "github.com/jhoicas/Libreria-pos/internal/domain/entity"

// ItemRepository define el puerto de almacenamiento para el catálogo de ítems.
// El catálogo preserva el orden de inserción para los listados.
type ItemRepository interface {
	// Create falla con domain.ErrDuplicate si el código ya existe.
	Create(item *entity.Item) error
	// Update tiene semántica upsert por código.
	Update(item *entity.Item) error
	GetByCode(code string) (*entity.Item, error)
	Exists(code string) bool
	// Delete retorna domain.ErrNotFound si el código no existe.
	Delete(code string) error
	// ListAll retorna un snapshot (copias) en orden de inserción; mutaciones
	// posteriores del catálogo no afectan un listado ya producido.
	ListAll() []*entity.Item
}
