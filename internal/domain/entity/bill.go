package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillLine es una línea de factura con snapshot del ítem al momento de emitir.
// Copia código, nombre y precio: ediciones posteriores del catálogo no alteran
// facturas históricas.
type BillLine struct {
	ItemCode  string
	ItemName  string
	UnitPrice decimal.Decimal
	Quantity  int // >= 1
	LineTotal decimal.Decimal
}

// Bill representa una factura emitida. Inmutable una vez creada:
// Total = round2(Subtotal + round2(Subtotal * tasa)).
type Bill struct {
	ID           string // único por proceso, formato BILL-XXXXXXXX
	AccountNo    string
	CustomerName string
	IssuedAt     time.Time
	Lines        []BillLine
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}
