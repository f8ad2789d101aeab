package entity

import "time"

// Customer representa una cuenta de cliente de la librería.
// AccountNo es la clave: única, asignada por el caller, inmutable.
type Customer struct {
	AccountNo     string
	Name          string
	Address       string
	Phone         string
	UnitsConsumed int // unidades consumidas (>= 0); base del quick bill
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
