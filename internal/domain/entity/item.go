package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo (libro o tarifa).
// Code es la clave: única e inmutable. El catálogo preserva orden de inserción.
type Item struct {
	Code      string
	Name      string
	UnitPrice decimal.Decimal // precio unitario, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
