package billing

import (
	"strings"
	"time"

	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso para cuentas de cliente.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create abre una cuenta nueva. ErrInvalidInput con datos incompletos,
// ErrDuplicate si el número de cuenta ya existe.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	accountNo := strings.TrimSpace(in.AccountNo)
	if accountNo == "" || strings.TrimSpace(in.Name) == "" || in.UnitsConsumed < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		AccountNo:     accountNo,
		Name:          in.Name,
		Address:       in.Address,
		Phone:         in.Phone,
		UnitsConsumed: in.UnitsConsumed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update edita una cuenta con política "vacío deja igual".
// ErrNotFound si la cuenta no existe; unidades negativas se ignoran
// (equivalente a entrada inválida en la edición interactiva).
func (uc *CustomerUseCase) Update(accountNo string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByAccount(accountNo)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) != "" {
		customer.Name = in.Name
	}
	if strings.TrimSpace(in.Address) != "" {
		customer.Address = in.Address
	}
	if strings.TrimSpace(in.Phone) != "" {
		customer.Phone = in.Phone
	}
	if in.UnitsConsumed != nil && *in.UnitsConsumed >= 0 {
		customer.UnitsConsumed = *in.UnitsConsumed
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get busca una cuenta. ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(accountNo string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByAccount(accountNo)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Exists indica si la cuenta está registrada.
func (uc *CustomerUseCase) Exists(accountNo string) bool {
	return uc.repo.Exists(accountNo)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		AccountNo:     c.AccountNo,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		UnitsConsumed: c.UnitsConsumed,
	}
}
