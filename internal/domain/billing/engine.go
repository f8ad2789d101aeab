package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/pkg/money"
)

// LineInput es el insumo del motor: snapshot del ítem + cantidad.
// El motor copia estos valores a la factura; nunca retiene referencias al catálogo.
type LineInput struct {
	ItemCode  string
	ItemName  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Engine calcula facturas (servicio de dominio, puro y sin estado compartido).
// El generador de ID y el reloj son inyectables para tests deterministas.
type Engine struct {
	newID func() string
	now   func() time.Time
}

// NewEngine construye el motor. Con nil usa RandomBillID y time.Now.
func NewEngine(newID func() string, now func() time.Time) *Engine {
	if newID == nil {
		newID = RandomBillID
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{newID: newID, now: now}
}

// RandomBillID genera un identificador opaco BILL-XXXXXXXX (8 hex de un UUID v4).
// Resistente a colisiones aunque luego se introduzcan sesiones concurrentes.
func RandomBillID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BILL-" + strings.ToUpper(raw[:8])
}

// Generate emite una factura para el cliente con las líneas dadas.
//
// Precondiciones (responsabilidad del caller; su violación retorna ErrPrecondicion):
// líneas no vacías, cantidad >= 1, precio unitario >= 0, tasa >= 0.
//
// Cálculo: subtotal = Σ precio*cantidad en decimal exacto;
// impuesto = round2(subtotal * tasa); total = round2(subtotal + impuesto).
func (e *Engine) Generate(c *entity.Customer, lines []LineInput, taxRate decimal.Decimal) (*entity.Bill, error) {
	if c == nil || len(lines) == 0 || taxRate.IsNegative() {
		return nil, domain.ErrPrecondicion
	}

	billLines := make([]entity.BillLine, 0, len(lines))
	subtotal := decimal.Zero
	for _, in := range lines {
		if in.Quantity < 1 || in.UnitPrice.IsNegative() || in.ItemCode == "" {
			return nil, domain.ErrPrecondicion
		}
		lineTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		billLines = append(billLines, entity.BillLine{
			ItemCode:  in.ItemCode,
			ItemName:  in.ItemName,
			UnitPrice: in.UnitPrice,
			Quantity:  in.Quantity,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	tax := money.Round2(subtotal.Mul(taxRate))
	total := money.Round2(subtotal.Add(tax))

	return &entity.Bill{
		ID:           e.newID(),
		AccountNo:    c.AccountNo,
		CustomerName: c.Name,
		IssuedAt:     e.now(),
		Lines:        billLines,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        total,
	}, nil
}
