package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-pos/internal/application/billing"
	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/internal/domain"
	billingdom "github.com/jhoicas/Libreria-pos/internal/domain/billing"
	"github.com/jhoicas/Libreria-pos/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	customers *memory.CustomerRepo
	items     *memory.ItemRepo
	bills     *memory.BillRepo
	customer  *billing.CustomerUseCase
	item      *billing.ItemUseCase
	generate  *billing.GenerateBillUseCase
}

// newFixture arma el grafo completo con datos de demostración y reloj/ID reales.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		customers: memory.NewCustomerRepository(),
		items:     memory.NewItemRepository(),
		bills:     memory.NewBillRepository(),
	}
	f.customer = billing.NewCustomerUseCase(f.customers)
	f.item = billing.NewItemUseCase(f.items)
	f.generate = billing.NewGenerateBillUseCase(
		f.customers, f.items, f.bills,
		billingdom.NewEngine(nil, nil),
		billing.Config{TaxRate: dec("0.15"), UnitCode: "UNIT"},
	)

	_, err := f.customer.Create(dto.CreateCustomerRequest{
		AccountNo: "ACC1001", Name: "N. Perera", Address: "Colombo", Phone: "0771234567", UnitsConsumed: 15,
	})
	require.NoError(t, err)
	for _, it := range []dto.CreateItemRequest{
		{Code: "UNIT", Name: "Unidad estándar", UnitPrice: dec("10.00")},
		{Code: "BK101", Name: "Intro to Java", UnitPrice: dec("2500.00")},
		{Code: "BK202", Name: "Data Structures", UnitPrice: dec("3200.00")},
	} {
		_, err := f.item.Create(it)
		require.NoError(t, err)
	}
	return f
}

// TestQuick_EscenarioUnitario: UNIT a 10.00 × 15 unidades, tasa 0.15
// -> 150.00 / 22.50 / 172.50, y la factura queda en el libro.
func TestQuick_EscenarioUnitario(t *testing.T) {
	f := newFixture(t)

	bill, err := f.generate.Quick("ACC1001")
	require.NoError(t, err)

	assert.True(t, bill.Subtotal.Equal(dec("150.00")), "subtotal fue %s", bill.Subtotal)
	assert.True(t, bill.Tax.Equal(dec("22.50")), "impuesto fue %s", bill.Tax)
	assert.True(t, bill.Total.Equal(dec("172.50")), "total fue %s", bill.Total)
	require.Len(t, bill.Lines, 1)
	assert.Equal(t, "UNIT", bill.Lines[0].ItemCode)
	assert.Equal(t, 15, bill.Lines[0].Quantity)

	history := f.generate.History()
	require.Len(t, history, 1)
	assert.Equal(t, bill.ID, history[0].ID)
}

// TestItemized_EscenarioDosLineas: BK101 × 1 + BK202 × 2 = 8900.00,
// tasa 0.15 -> 1335.00 / 10235.00.
func TestItemized_EscenarioDosLineas(t *testing.T) {
	f := newFixture(t)

	bill, err := f.generate.Itemized("ACC1001", []dto.BillLineRequest{
		{ItemCode: "BK101", Quantity: 1},
		{ItemCode: "BK202", Quantity: 2},
	})
	require.NoError(t, err)

	assert.True(t, bill.Subtotal.Equal(dec("8900.00")), "subtotal fue %s", bill.Subtotal)
	assert.True(t, bill.Tax.Equal(dec("1335.00")), "impuesto fue %s", bill.Tax)
	assert.True(t, bill.Total.Equal(dec("10235.00")), "total fue %s", bill.Total)
}

// TestItemized_Rechazos: sin líneas, cantidad < 1, cuenta o ítem inexistentes.
// Ninguno debe dejar rastro en el libro.
func TestItemized_Rechazos(t *testing.T) {
	f := newFixture(t)

	_, err := f.generate.Itemized("ACC1001", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas debe rechazarse antes del motor")

	_, err = f.generate.Itemized("ACC1001", []dto.BillLineRequest{{ItemCode: "BK101", Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.generate.Itemized("NO-EXISTE", []dto.BillLineRequest{{ItemCode: "BK101", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.generate.Itemized("ACC1001", []dto.BillLineRequest{{ItemCode: "ZZ999", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, f.generate.History(), "ningún rechazo debe registrar factura")
}

// TestQuick_Rechazos: unidades en 0 y ausencia del ítem reservado UNIT
// se reportan al caller sin invocar el motor ni tocar el libro.
func TestQuick_Rechazos(t *testing.T) {
	f := newFixture(t)

	zero := 0
	_, err := f.customer.Update("ACC1001", dto.UpdateCustomerRequest{UnitsConsumed: &zero})
	require.NoError(t, err)
	_, err = f.generate.Quick("ACC1001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unidades en 0 debe rechazarse")

	quince := 15
	_, err = f.customer.Update("ACC1001", dto.UpdateCustomerRequest{UnitsConsumed: &quince})
	require.NoError(t, err)
	require.NoError(t, f.item.Delete("UNIT"))
	_, err = f.generate.Quick("ACC1001")
	assert.ErrorIs(t, err, domain.ErrNotFound, "sin ítem UNIT debe rechazarse")

	assert.Empty(t, f.generate.History())
}

// TestIDsUnicosPorProceso: cada factura emitida lleva un ID distinto.
func TestIDsUnicosPorProceso(t *testing.T) {
	f := newFixture(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		bill, err := f.generate.Quick("ACC1001")
		require.NoError(t, err)
		assert.False(t, seen[bill.ID], "ID repetido %s", bill.ID)
		seen[bill.ID] = true
	}
}

// TestEdicionPosteriorNoAlteraFacturas: editar el precio de un ítem después
// de facturar no cambia los totales ya registrados (snapshot al emitir).
func TestEdicionPosteriorNoAlteraFacturas(t *testing.T) {
	f := newFixture(t)

	bill, err := f.generate.Itemized("ACC1001", []dto.BillLineRequest{{ItemCode: "BK101", Quantity: 2}})
	require.NoError(t, err)
	require.True(t, bill.Subtotal.Equal(dec("5000.00")))

	nuevoPrecio := dec("9000.00")
	_, err = f.item.Update("BK101", dto.UpdateItemRequest{UnitPrice: &nuevoPrecio})
	require.NoError(t, err)

	stored := f.generate.History()
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Lines[0].UnitPrice.Equal(dec("2500.00")),
		"el precio snapshot cambió a %s", stored[0].Lines[0].UnitPrice)
	assert.True(t, stored[0].Subtotal.Equal(dec("5000.00")))
	assert.True(t, stored[0].Total.Equal(dec("5750.00")))
}

// TestEngineInyectable: con generador de ID y reloj fijos la factura es determinista.
func TestEngineInyectable(t *testing.T) {
	f := newFixture(t)
	instant := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	gen := billing.NewGenerateBillUseCase(
		f.customers, f.items, f.bills,
		billingdom.NewEngine(func() string { return "BILL-TEST0001" }, func() time.Time { return instant }),
		billing.Config{TaxRate: dec("0.15"), UnitCode: "UNIT"},
	)

	bill, err := gen.Quick("ACC1001")
	require.NoError(t, err)
	assert.Equal(t, "BILL-TEST0001", bill.ID)
	assert.Equal(t, instant, bill.IssuedAt)
}
