package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreria-pos/internal/application/auth"
	"github.com/jhoicas/Libreria-pos/internal/application/billing"
	"github.com/jhoicas/Libreria-pos/internal/application/dto"
)

// Demo carga los datos de demostración: dos usuarios, la tarifa UNIT,
// dos libros y una cuenta de cliente. Pensado para arranques en development.
func Demo(
	authUC *auth.AuthUseCase,
	customerUC *billing.CustomerUseCase,
	itemUC *billing.ItemUseCase,
) error {
	for _, u := range []struct{ username, password string }{
		{"admin", "admin123"},
		{"cashier", "cashier123"},
	} {
		if err := authUC.Register(u.username, u.password); err != nil {
			return fmt.Errorf("seed usuario %s: %w", u.username, err)
		}
	}

	for _, it := range []dto.CreateItemRequest{
		{Code: "UNIT", Name: "Unidad estándar", UnitPrice: decimal.RequireFromString("10.00")},
		{Code: "BK101", Name: "Intro to Java", UnitPrice: decimal.RequireFromString("2500.00")},
		{Code: "BK202", Name: "Data Structures", UnitPrice: decimal.RequireFromString("3200.00")},
	} {
		if _, err := itemUC.Create(it); err != nil {
			return fmt.Errorf("seed ítem %s: %w", it.Code, err)
		}
	}

	if _, err := customerUC.Create(dto.CreateCustomerRequest{
		AccountNo:     "ACC1001",
		Name:          "N. Perera",
		Address:       "Colombo",
		Phone:         "0771234567",
		UnitsConsumed: 15,
	}); err != nil {
		return fmt.Errorf("seed cliente ACC1001: %w", err)
	}
	return nil
}
