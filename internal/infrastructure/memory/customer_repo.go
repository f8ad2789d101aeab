package memory

import (
	"sync"

	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
// El mutex deja el store listo para sesiones concurrentes futuras.
type CustomerRepo struct {
	mu   sync.RWMutex
	data map[string]entity.Customer
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{data: make(map[string]entity.Customer)}
}

// Create guarda un cliente nuevo. ErrDuplicate si la cuenta ya existe.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[customer.AccountNo]; ok {
		return domain.ErrDuplicate
	}
	r.data[customer.AccountNo] = *customer
	return nil
}

// Update sobreescribe por número de cuenta (upsert).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[customer.AccountNo] = *customer
	return nil
}

// GetByAccount retorna una copia del cliente, o (nil, nil) si no existe.
func (r *CustomerRepo) GetByAccount(accountNo string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.data[accountNo]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Exists indica si la cuenta está registrada.
func (r *CustomerRepo) Exists(accountNo string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[accountNo]
	return ok
}
