package dto

import "github.com/shopspring/decimal"

// CreateItemRequest datos para dar de alta un ítem del catálogo.
type CreateItemRequest struct {
	Code      string
	Name      string
	UnitPrice decimal.Decimal
}

// UpdateItemRequest edición con política "vacío deja igual":
// Name vacío y UnitPrice nil conservan el valor actual.
type UpdateItemRequest struct {
	Name      string
	UnitPrice *decimal.Decimal
}

// ItemResponse vista de un ítem del catálogo.
type ItemResponse struct {
	Code      string
	Name      string
	UnitPrice decimal.Decimal
}
