package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/Libreria-pos/internal/application/auth"
	"github.com/jhoicas/Libreria-pos/internal/application/billing"
	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/internal/domain"
	"github.com/jhoicas/Libreria-pos/pkg/logger"
	"github.com/jhoicas/Libreria-pos/pkg/money"
	"github.com/shopspring/decimal"
)

// Config opciones del shell interactivo.
type Config struct {
	AppName     string
	MaxAttempts int // intentos de login
}

// Shell es el menú interactivo: traduce la terminal a llamadas de casos de
// uso y mapea errores de dominio a mensajes. No contiene reglas de negocio.
// Si la entrada se agota (Ctrl-D) la sesión termina de forma ordenada.
type Shell struct {
	p          *Prompter
	out        io.Writer
	authUC     *auth.AuthUseCase
	customerUC *billing.CustomerUseCase
	itemUC     *billing.ItemUseCase
	generateUC *billing.GenerateBillUseCase
	log        *logger.Logger
	cfg        Config
}

// NewShell construye el shell sobre los streams dados.
func NewShell(
	in io.Reader,
	out io.Writer,
	authUC *auth.AuthUseCase,
	customerUC *billing.CustomerUseCase,
	itemUC *billing.ItemUseCase,
	generateUC *billing.GenerateBillUseCase,
	log *logger.Logger,
	cfg Config,
) *Shell {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Shell{
		p:          NewPrompter(in, out),
		out:        out,
		authUC:     authUC,
		customerUC: customerUC,
		itemUC:     itemUC,
		generateUC: generateUC,
		log:        log,
		cfg:        cfg,
	}
}

// Login pide credenciales hasta MaxAttempts veces. Retorna false si se agotan
// los intentos o la entrada.
func (s *Shell) Login() bool {
	fmt.Fprintln(s.out, "Inicio de sesión requerido")
	for i := s.cfg.MaxAttempts; i >= 1; i-- {
		username, ok := s.p.ReadNonEmpty("Usuario: ")
		if !ok {
			return false
		}
		password, ok := s.p.ReadNonEmpty("Contraseña: ")
		if !ok {
			return false
		}
		if err := s.authUC.Login(username, password); err == nil {
			fmt.Fprintf(s.out, "\nSesión iniciada. ¡Bienvenido, %s!\n", username)
			s.log.Info().Str("user", username).Msg("login correcto")
			return true
		}
		fmt.Fprintf(s.out, "Credenciales inválidas. Intentos restantes: %d\n", i-1)
		s.log.Warn().Str("user", username).Msg("login fallido")
	}
	return false
}

// Run ejecuta el menú principal hasta que el usuario elige salir o la
// entrada se agota.
func (s *Shell) Run() {
	for {
		s.showMainMenu()
		choice, ok := s.p.ReadInt("Elija una opción (1-9): ", 1, 9)
		if !ok {
			fmt.Fprintln(s.out, "\nEntrada agotada. Sesión terminada.")
			return
		}
		switch choice {
		case 1:
			s.showAuthenticatedUser()
		case 2:
			s.addCustomer()
		case 3:
			s.editCustomer()
		case 4:
			s.manageItemsMenu()
		case 5:
			s.displayAccountDetails()
		case 6:
			s.createAndPrintBill()
		case 7:
			s.showBillHistory()
		case 8:
			s.showHelp()
		case 9:
			fmt.Fprintln(s.out, "\nGracias por usar el sistema de facturación. ¡Hasta pronto!")
			return
		}
		s.p.Pause("\nPresione Enter para continuar...")
	}
}

func (s *Shell) showMainMenu() {
	fmt.Fprintln(s.out, "\n======================================================")
	fmt.Fprintf(s.out, "     %s — Facturación y Cuentas\n", s.cfg.AppName)
	fmt.Fprintln(s.out, "======================================================")
	fmt.Fprintln(s.out, "1) Usuario autenticado (info)")
	fmt.Fprintln(s.out, "2) Abrir cuenta de cliente")
	fmt.Fprintln(s.out, "3) Editar datos del cliente")
	fmt.Fprintln(s.out, "4) Gestionar ítems")
	fmt.Fprintln(s.out, "5) Ver detalles de cuenta")
	fmt.Fprintln(s.out, "6) Calcular e imprimir factura")
	fmt.Fprintln(s.out, "7) Historial de facturas")
	fmt.Fprintln(s.out, "8) Ayuda")
	fmt.Fprintln(s.out, "9) Salir")
}

func (s *Shell) showAuthenticatedUser() {
	if user, ok := s.authUC.CurrentUser(); ok {
		fmt.Fprintf(s.out, "\nSesión activa: %s\n", user)
		return
	}
	fmt.Fprintln(s.out, "\nNo hay sesión activa.")
}

// ======== Clientes ========

func (s *Shell) addCustomer() {
	fmt.Fprintln(s.out, "\nAbrir cuenta de cliente")
	var accountNo string
	for {
		var ok bool
		accountNo, ok = s.p.ReadNonEmpty("Número de cuenta: ")
		if !ok {
			return
		}
		if s.customerUC.Exists(accountNo) {
			fmt.Fprintln(s.out, "El número de cuenta ya existe. Intente otro.")
			continue
		}
		break
	}
	name, ok := s.p.ReadNonEmpty("Nombre completo: ")
	if !ok {
		return
	}
	address, ok := s.p.ReadNonEmpty("Dirección: ")
	if !ok {
		return
	}
	phone, ok := s.p.ReadNonEmpty("Teléfono: ")
	if !ok {
		return
	}
	units, ok := s.p.ReadInt("Unidades consumidas: ", 0, int(^uint(0)>>1))
	if !ok {
		return
	}
	c, err := s.customerUC.Create(dto.CreateCustomerRequest{
		AccountNo:     accountNo,
		Name:          name,
		Address:       address,
		Phone:         phone,
		UnitsConsumed: units,
	})
	if err != nil {
		s.reportError(err)
		return
	}
	s.log.Info().Str("account", c.AccountNo).Msg("cuenta creada")
	fmt.Fprintln(s.out, "\nCliente registrado:")
	s.printCustomer(c)
}

func (s *Shell) editCustomer() {
	fmt.Fprintln(s.out, "\nEditar datos del cliente")
	accountNo, ok := s.p.ReadNonEmpty("Número de cuenta: ")
	if !ok {
		return
	}
	c, err := s.customerUC.Get(accountNo)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "\nDatos actuales:")
	s.printCustomer(c)

	// En blanco o inválido conserva el valor actual.
	name, ok := s.p.ReadLine(fmt.Sprintf("Nombre [%s]: ", c.Name))
	if !ok {
		return
	}
	address, ok := s.p.ReadLine(fmt.Sprintf("Dirección [%s]: ", c.Address))
	if !ok {
		return
	}
	phone, ok := s.p.ReadLine(fmt.Sprintf("Teléfono [%s]: ", c.Phone))
	if !ok {
		return
	}
	units, ok := s.p.ReadOptionalInt(fmt.Sprintf("Unidades consumidas [%d]: ", c.UnitsConsumed))
	if !ok {
		return
	}
	updated, err := s.customerUC.Update(accountNo, dto.UpdateCustomerRequest{
		Name:          name,
		Address:       address,
		Phone:         phone,
		UnitsConsumed: units,
	})
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "\nCliente actualizado:")
	s.printCustomer(updated)
}

func (s *Shell) displayAccountDetails() {
	fmt.Fprintln(s.out, "\nVer detalles de cuenta")
	accountNo, ok := s.p.ReadNonEmpty("Número de cuenta: ")
	if !ok {
		return
	}
	c, err := s.customerUC.Get(accountNo)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out)
	s.printCustomer(c)
}

func (s *Shell) printCustomer(c *dto.CustomerResponse) {
	fmt.Fprintf(s.out, "Cuenta    : %s\n", c.AccountNo)
	fmt.Fprintf(s.out, "Nombre    : %s\n", c.Name)
	fmt.Fprintf(s.out, "Dirección : %s\n", c.Address)
	fmt.Fprintf(s.out, "Teléfono  : %s\n", c.Phone)
	fmt.Fprintf(s.out, "Unidades  : %d\n", c.UnitsConsumed)
}

// ======== Ítems ========

func (s *Shell) manageItemsMenu() {
	for {
		fmt.Fprintln(s.out, "\nGestión de ítems")
		fmt.Fprintln(s.out, "1) Listar ítems")
		fmt.Fprintln(s.out, "2) Agregar ítem")
		fmt.Fprintln(s.out, "3) Actualizar ítem")
		fmt.Fprintln(s.out, "4) Eliminar ítem")
		fmt.Fprintln(s.out, "5) Volver")
		choice, ok := s.p.ReadInt("Elija (1-5): ", 1, 5)
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.listItems()
		case 2:
			s.addItem()
		case 3:
			s.updateItem()
		case 4:
			s.deleteItem()
		case 5:
			return
		}
	}
}

func (s *Shell) listItems() {
	items := s.itemUC.List()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "\nNo hay ítems en el catálogo.")
		return
	}
	fmt.Fprintln(s.out, "\nÍtems:")
	for _, it := range items {
		fmt.Fprintf(s.out, "%s - %s @ %s\n", it.Code, it.Name, money.Format(it.UnitPrice))
	}
}

func (s *Shell) addItem() {
	var code string
	for {
		var ok bool
		code, ok = s.p.ReadNonEmpty("Código del ítem: ")
		if !ok {
			return
		}
		if s.itemUC.Exists(code) {
			fmt.Fprintln(s.out, "El código ya existe.")
			continue
		}
		break
	}
	name, ok := s.p.ReadNonEmpty("Nombre del ítem: ")
	if !ok {
		return
	}
	price, ok := s.p.ReadDecimal("Precio unitario: ", decimal.Zero)
	if !ok {
		return
	}
	if _, err := s.itemUC.Create(dto.CreateItemRequest{Code: code, Name: name, UnitPrice: price}); err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "Ítem agregado.")
}

func (s *Shell) updateItem() {
	code, ok := s.p.ReadNonEmpty("Código del ítem: ")
	if !ok {
		return
	}
	it, err := s.itemUC.Get(code)
	if err != nil {
		s.reportError(err)
		return
	}
	name, ok := s.p.ReadLine(fmt.Sprintf("Nombre [%s]: ", it.Name))
	if !ok {
		return
	}
	price, ok := s.p.ReadOptionalDecimal(fmt.Sprintf("Precio unitario [%s]: ", money.Format(it.UnitPrice)))
	if !ok {
		return
	}
	if _, err := s.itemUC.Update(code, dto.UpdateItemRequest{Name: name, UnitPrice: price}); err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "Ítem actualizado.")
}

func (s *Shell) deleteItem() {
	code, ok := s.p.ReadNonEmpty("Código del ítem: ")
	if !ok {
		return
	}
	if err := s.itemUC.Delete(code); err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "Ítem eliminado.")
}

// ======== Facturación ========

func (s *Shell) createAndPrintBill() {
	fmt.Fprintln(s.out, "\nCalcular e imprimir factura")

	accountNo, ok := s.p.ReadNonEmpty("Número de cuenta: ")
	if !ok {
		return
	}
	if !s.customerUC.Exists(accountNo) {
		fmt.Fprintln(s.out, "Cliente no encontrado. Registre primero la cuenta.")
		return
	}

	fmt.Fprintln(s.out, "\n1) Factura itemizada (elegir ítems y cantidades)")
	fmt.Fprintln(s.out, "2) Factura rápida (unidades consumidas × tarifa UNIT)")
	mode, ok := s.p.ReadInt("Elija (1-2): ", 1, 2)
	if !ok {
		return
	}

	var (
		bill *dto.BillResponse
		err  error
	)
	if mode == 1 {
		lines := s.collectLines()
		if len(lines) == 0 {
			fmt.Fprintln(s.out, "No se agregaron ítems. Factura cancelada.")
			return
		}
		bill, err = s.generateUC.Itemized(accountNo, lines)
	} else {
		bill, err = s.generateUC.Quick(accountNo)
	}
	if err != nil {
		s.reportError(err)
		return
	}

	s.log.Info().
		Str("bill", bill.ID).
		Str("account", bill.AccountNo).
		Str("total", bill.Total.StringFixed(2)).
		Msg("factura emitida")
	RenderReceipt(s.out, bill)
}

// collectLines arma las líneas del modo itemizado; vacío si el catálogo está
// vacío, el usuario no agrega nada o la entrada se corta a mitad del flujo.
func (s *Shell) collectLines() []dto.BillLineRequest {
	if len(s.itemUC.List()) == 0 {
		fmt.Fprintln(s.out, "No hay ítems en el catálogo. Agregue ítems primero en 'Gestionar ítems'.")
		return nil
	}
	var lines []dto.BillLineRequest
	for {
		s.listItems()
		code, ok := s.p.ReadNonEmpty("\nCódigo del ítem a agregar: ")
		if !ok {
			return nil
		}
		it, err := s.itemUC.Get(code)
		if err != nil {
			fmt.Fprintln(s.out, "Código de ítem inválido. Intente de nuevo.")
		} else {
			qty, ok := s.p.ReadInt("Cantidad (>=1): ", 1, int(^uint(0)>>1))
			if !ok {
				return nil
			}
			lines = append(lines, dto.BillLineRequest{ItemCode: it.Code, Quantity: qty})
			fmt.Fprintf(s.out, "Agregado: %s × %d\n", it.Name, qty)
		}
		more, ok := s.p.ReadYesNo("¿Agregar otro ítem? (y/n): ")
		if !ok {
			return nil
		}
		if !more {
			return lines
		}
	}
}

func (s *Shell) showBillHistory() {
	bills := s.generateUC.History()
	if len(bills) == 0 {
		fmt.Fprintln(s.out, "\nNo se han emitido facturas en esta sesión.")
		return
	}
	fmt.Fprintln(s.out, "\nFacturas emitidas:")
	for _, b := range bills {
		fmt.Fprintf(s.out, "%s  %s  %s (Cuenta: %s)  Total: %s\n",
			b.ID, b.IssuedAt.Format(timestampLayout), b.CustomerName, b.AccountNo, money.Format(b.Total))
	}
}

func (s *Shell) showHelp() {
	fmt.Fprintln(s.out, "\nAyuda:")
	fmt.Fprintln(s.out, "Ingrese con admin/admin123 o cashier/cashier123 (datos de demostración).")
	fmt.Fprintln(s.out, "Registre clientes, gestione ítems y emita facturas itemizadas o rápidas.")
	fmt.Fprintln(s.out, "- La factura rápida usa Unidades consumidas × precio del ítem con código 'UNIT'.")
}

// reportError traduce errores de dominio a mensajes de consola.
func (s *Shell) reportError(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(s.out, "No encontrado:", err)
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintln(s.out, "Ya existe un registro con esa clave.")
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(s.out, "Datos inválidos:", err)
	default:
		s.log.Error().Err(err).Msg("error inesperado")
		fmt.Fprintln(s.out, "Error inesperado:", err)
	}
}
