package memory

import (
	"sync"

	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	mu   sync.RWMutex
	data map[string]entity.User
}

// NewUserRepository construye el adaptador.
func NewUserRepository() *UserRepo {
	return &UserRepo{data: make(map[string]entity.User)}
}

// Create guarda un usuario nuevo. ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[user.Username]; ok {
		return domain.ErrDuplicate
	}
	r.data[user.Username] = *user
	return nil
}

// GetByUsername retorna una copia del usuario, o (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.data[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
