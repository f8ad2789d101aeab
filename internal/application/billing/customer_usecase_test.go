package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-pos/internal/application/billing"
	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/infrastructure/memory"
)

// TestCustomerCreate_Validaciones: cuenta vacía, nombre vacío y unidades
// negativas son entrada inválida; duplicado es ErrDuplicate.
func TestCustomerCreate_Validaciones(t *testing.T) {
	uc := billing.NewCustomerUseCase(memory.NewCustomerRepository())

	_, err := uc.Create(dto.CreateCustomerRequest{AccountNo: "", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCustomerRequest{AccountNo: "A1", Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCustomerRequest{AccountNo: "A1", Name: "X", UnitsConsumed: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCustomerRequest{AccountNo: "A1", Name: "X"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCustomerRequest{AccountNo: "A1", Name: "Y"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestCustomerUpdate_VacioDejaIgual: campos en blanco y unidades nil o
// negativas conservan el valor actual (política de edición interactiva).
func TestCustomerUpdate_VacioDejaIgual(t *testing.T) {
	uc := billing.NewCustomerUseCase(memory.NewCustomerRepository())
	_, err := uc.Create(dto.CreateCustomerRequest{
		AccountNo: "ACC1001", Name: "N. Perera", Address: "Colombo", Phone: "0771234567", UnitsConsumed: 15,
	})
	require.NoError(t, err)

	negativo := -5
	got, err := uc.Update("ACC1001", dto.UpdateCustomerRequest{
		Name:          "",
		Address:       "   ",
		Phone:         "0779999999",
		UnitsConsumed: &negativo,
	})
	require.NoError(t, err)
	assert.Equal(t, "N. Perera", got.Name, "nombre en blanco debe conservarse")
	assert.Equal(t, "Colombo", got.Address)
	assert.Equal(t, "0779999999", got.Phone)
	assert.Equal(t, 15, got.UnitsConsumed, "unidades negativas deben ignorarse")
}

// TestCustomerUpdate_CuentaInexistente.
func TestCustomerUpdate_CuentaInexistente(t *testing.T) {
	uc := billing.NewCustomerUseCase(memory.NewCustomerRepository())
	_, err := uc.Update("NADIE", dto.UpdateCustomerRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get("NADIE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, uc.Exists("NADIE"))
}
