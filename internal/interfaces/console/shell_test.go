package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-pos/internal/application/auth"
	"github.com/jhoicas/Libreria-pos/internal/application/billing"
	billingdom "github.com/jhoicas/Libreria-pos/internal/domain/billing"
	"github.com/jhoicas/Libreria-pos/internal/infrastructure/memory"
	"github.com/jhoicas/Libreria-pos/internal/infrastructure/seed"
	"github.com/jhoicas/Libreria-pos/internal/interfaces/console"
	"github.com/jhoicas/Libreria-pos/pkg/logger"
)

// newShell arma el grafo completo con datos de demostración y un script de
// entradas, igual que lo hace cmd/pos.
func newShell(t *testing.T, script string) (*console.Shell, *bytes.Buffer) {
	t.Helper()
	customerRepo := memory.NewCustomerRepository()
	itemRepo := memory.NewItemRepository()
	billRepo := memory.NewBillRepository()
	userRepo := memory.NewUserRepository()

	authUC := auth.NewAuthUseCase(userRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	itemUC := billing.NewItemUseCase(itemRepo)
	generateUC := billing.NewGenerateBillUseCase(
		customerRepo, itemRepo, billRepo,
		billingdom.NewEngine(nil, nil),
		billing.Config{TaxRate: dec("0.15"), UnitCode: "UNIT"},
	)
	require.NoError(t, seed.Demo(authUC, customerUC, itemUC))

	out := &bytes.Buffer{}
	sh := console.NewShell(
		strings.NewReader(script), out,
		authUC, customerUC, itemUC, generateUC,
		logger.New(logger.Config{Env: "production", Level: "error"}),
		console.Config{AppName: "libreria-pos", MaxAttempts: 3},
	)
	return sh, out
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestShell_LoginYFacturaRapida: sesión completa con credenciales de demo,
// factura rápida de ACC1001 (15 × 10.00, tasa 0.15) y salida.
func TestShell_LoginYFacturaRapida(t *testing.T) {
	script := strings.Join([]string{
		"admin", "admin123", // login
		"6",       // calcular e imprimir factura
		"ACC1001", // cuenta
		"2",       // modo rápido
		"",        // pausa
		"9",       // salir
	}, "\n") + "\n"

	sh, out := newShell(t, script)
	require.True(t, sh.Login())
	sh.Run()

	got := out.String()
	assert.Contains(t, got, "¡Bienvenido, admin!")
	assert.Contains(t, got, "Subtotal : 150.00")
	assert.Contains(t, got, "Impuesto : 22.50")
	assert.Contains(t, got, "Total    : 172.50")
}

// TestShell_LoginAgotaIntentos: tres credenciales malas agotan el login.
func TestShell_LoginAgotaIntentos(t *testing.T) {
	script := strings.Repeat("admin\nmala\n", 3)
	sh, out := newShell(t, script)
	assert.False(t, sh.Login())
	assert.Contains(t, out.String(), "Intentos restantes: 0")
}

// TestShell_FacturaItemizada: dos líneas elegidas interactivamente y recibo
// con los totales del catálogo de demo (8,900.00 / 1,335.00 / 10,235.00).
func TestShell_FacturaItemizada(t *testing.T) {
	script := strings.Join([]string{
		"cashier", "cashier123",
		"6",       // facturar
		"ACC1001", // cuenta
		"1",       // itemizada
		"BK101", "1", "y", // línea 1 y seguir
		"BK202", "2", "n", // línea 2 y terminar
		"",  // pausa
		"7", // historial
		"",  // pausa
		"9", // salir
	}, "\n") + "\n"

	sh, out := newShell(t, script)
	require.True(t, sh.Login())
	sh.Run()

	got := out.String()
	assert.Contains(t, got, "Subtotal : 8,900.00")
	assert.Contains(t, got, "Impuesto : 1,335.00")
	assert.Contains(t, got, "Total    : 10,235.00")
	assert.Contains(t, got, "Facturas emitidas:")
}

// TestShell_EntradaAgotadaEnLogin: sin entrada el login retorna false en
// vez de quedarse pidiendo credenciales.
func TestShell_EntradaAgotadaEnLogin(t *testing.T) {
	sh, out := newShell(t, "")
	assert.False(t, sh.Login())
	assert.Equal(t, 1, strings.Count(out.String(), "Usuario: "))
}

// TestShell_EntradaAgotadaEnMenu: si la entrada se corta tras el login, el
// menú termina la sesión en vez de repetirse indefinidamente.
func TestShell_EntradaAgotadaEnMenu(t *testing.T) {
	sh, out := newShell(t, "admin\nadmin123\n")
	require.True(t, sh.Login())
	sh.Run()

	got := out.String()
	assert.Contains(t, got, "Entrada agotada. Sesión terminada.")
	assert.Equal(t, 1, strings.Count(got, "Elija una opción (1-9): "))
}

// TestShell_EntradaAgotadaAMitadDeFactura: EOF en medio del flujo itemizado
// cancela la factura y cierra la sesión sin emitir nada.
func TestShell_EntradaAgotadaAMitadDeFactura(t *testing.T) {
	script := strings.Join([]string{
		"admin", "admin123",
		"6",       // facturar
		"ACC1001", // cuenta
		"1",       // itemizada
		"BK101",   // línea sin cantidad: aquí se corta la entrada
	}, "\n") + "\n"

	sh, out := newShell(t, script)
	require.True(t, sh.Login())
	sh.Run()

	got := out.String()
	assert.Contains(t, got, "No se agregaron ítems. Factura cancelada.")
	assert.NotContains(t, got, "BILL-")
	assert.Contains(t, got, "Entrada agotada. Sesión terminada.")
}

// TestShell_QuickBillSinUnidades: con unidades en 0 el modo rápido se
// rechaza con mensaje, sin emitir factura.
func TestShell_QuickBillSinUnidades(t *testing.T) {
	script := strings.Join([]string{
		"admin", "admin123",
		"3",                     // editar cliente
		"ACC1001",               // cuenta
		"", "", "", "0",         // dejar todo igual, unidades = 0
		"",                      // pausa
		"6", "ACC1001", "2", "", // factura rápida + pausa
		"7", "", // historial vacío + pausa
		"9",
	}, "\n") + "\n"

	sh, out := newShell(t, script)
	require.True(t, sh.Login())
	sh.Run()

	got := out.String()
	assert.Contains(t, got, "Datos inválidos")
	assert.Contains(t, got, "No se han emitido facturas en esta sesión.")
}
