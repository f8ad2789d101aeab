package billing

import (
	"strings"
	"time"

	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

// ItemUseCase casos de uso para el catálogo de ítems.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create da de alta un ítem. ErrInvalidInput con código/nombre vacíos o precio
// negativo; ErrDuplicate si el código ya existe.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" || strings.TrimSpace(in.Name) == "" || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		Code:      code,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update edita un ítem con política "vacío deja igual". ErrNotFound si el
// código no existe; un precio negativo se ignora (entrada inválida en edición).
func (uc *ItemUseCase) Update(code string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) != "" {
		item.Name = in.Name
	}
	if in.UnitPrice != nil && !in.UnitPrice.IsNegative() {
		item.UnitPrice = *in.UnitPrice
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem. ErrNotFound si el código no existe.
func (uc *ItemUseCase) Delete(code string) error {
	return uc.repo.Delete(code)
}

// Get busca un ítem por código. ErrNotFound si no existe.
func (uc *ItemUseCase) Get(code string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Exists indica si el código está en el catálogo.
func (uc *ItemUseCase) Exists(code string) bool {
	return uc.repo.Exists(code)
}

// List retorna el catálogo en orden de inserción.
func (uc *ItemUseCase) List() []*dto.ItemResponse {
	items := uc.repo.ListAll()
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		Code:      it.Code,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
	}
}
