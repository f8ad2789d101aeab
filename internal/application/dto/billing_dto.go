package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillLineRequest una línea solicitada en modo itemizado.
type BillLineRequest struct {
	ItemCode string
	Quantity int
}

// BillLineResponse línea emitida (snapshot del ítem al facturar).
type BillLineResponse struct {
	ItemCode  string
	ItemName  string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// BillResponse factura emitida.
type BillResponse struct {
	ID           string
	AccountNo    string
	CustomerName string
	IssuedAt     time.Time
	Lines        []BillLineResponse
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}
