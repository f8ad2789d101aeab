package memory

import (
	"sync"

	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria del catálogo de ítems.
// Mantiene el orden de inserción en un slice de códigos aparte del mapa.
type ItemRepo struct {
	mu    sync.RWMutex
	data  map[string]entity.Item
	order []string // códigos en orden de inserción
}

// NewItemRepository construye el adaptador.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{data: make(map[string]entity.Item)}
}

// Create guarda un ítem nuevo al final del orden. ErrDuplicate si el código ya existe.
func (r *ItemRepo) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[item.Code]; ok {
		return domain.ErrDuplicate
	}
	r.data[item.Code] = *item
	r.order = append(r.order, item.Code)
	return nil
}

// Update sobreescribe por código (upsert). Un código nuevo entra al final del orden.
func (r *ItemRepo) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[item.Code]; !ok {
		r.order = append(r.order, item.Code)
	}
	r.data[item.Code] = *item
	return nil
}

// GetByCode retorna una copia del ítem, o (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.data[code]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// Exists indica si el código está en el catálogo.
func (r *ItemRepo) Exists(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[code]
	return ok
}

// Delete elimina el ítem y su posición en el orden. ErrNotFound si no existe.
func (r *ItemRepo) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, code)
	for i, c := range r.order {
		if c == code {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListAll retorna un snapshot de copias en orden de inserción.
func (r *ItemRepo) ListAll() []*entity.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Item, 0, len(r.order))
	for _, code := range r.order {
		it := r.data[code]
		out = append(out, &it)
	}
	return out
}
