package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/internal/domain"
	billingdom "github.com/jhoicas/Libreria-pos/internal/domain/billing"
	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

// Config parámetros de facturación del caso de uso.
type Config struct {
	TaxRate  decimal.Decimal // tasa fraccional, ej. 0.15
	UnitCode string          // código reservado del quick bill ("UNIT")
}

// GenerateBillUseCase emite facturas en modo itemizado o quick bill y las
// registra en el libro. Toda validación de entrada ocurre aquí: el motor de
// dominio solo recibe insumos que cumplen sus precondiciones.
type GenerateBillUseCase struct {
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	billRepo     repository.BillRepository
	engine       *billingdom.Engine
	cfg          Config
}

// NewGenerateBillUseCase construye el caso de uso.
func NewGenerateBillUseCase(
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	billRepo repository.BillRepository,
	engine *billingdom.Engine,
	cfg Config,
) *GenerateBillUseCase {
	return &GenerateBillUseCase{
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		billRepo:     billRepo,
		engine:       engine,
		cfg:          cfg,
	}
}

// Itemized emite una factura con las líneas elegidas interactivamente.
// ErrInvalidInput sin líneas o con cantidad < 1; ErrNotFound si la cuenta o
// algún código de ítem no existe.
func (uc *GenerateBillUseCase) Itemized(accountNo string, lines []dto.BillLineRequest) (*dto.BillResponse, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.findCustomer(accountNo)
	if err != nil {
		return nil, err
	}

	inputs := make([]billingdom.LineInput, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByCode(l.ItemCode)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("ítem %s: %w", l.ItemCode, domain.ErrNotFound)
		}
		inputs = append(inputs, billingdom.LineInput{
			ItemCode:  item.Code,
			ItemName:  item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	return uc.emit(customer, inputs)
}

// Quick emite la factura rápida: unidades consumidas × precio del ítem
// reservado (UnitCode). ErrNotFound si la cuenta o el ítem reservado no
// existen; ErrInvalidInput si las unidades consumidas son 0.
// Estas validaciones ocurren antes de invocar el motor.
func (uc *GenerateBillUseCase) Quick(accountNo string) (*dto.BillResponse, error) {
	customer, err := uc.findCustomer(accountNo)
	if err != nil {
		return nil, err
	}
	unitItem, err := uc.itemRepo.GetByCode(uc.cfg.UnitCode)
	if err != nil {
		return nil, err
	}
	if unitItem == nil {
		return nil, fmt.Errorf("ítem %s: %w", uc.cfg.UnitCode, domain.ErrNotFound)
	}
	if customer.UnitsConsumed <= 0 {
		return nil, fmt.Errorf("unidades consumidas en 0: %w", domain.ErrInvalidInput)
	}

	return uc.emit(customer, []billingdom.LineInput{{
		ItemCode:  unitItem.Code,
		ItemName:  unitItem.Name,
		UnitPrice: unitItem.UnitPrice,
		Quantity:  customer.UnitsConsumed,
	}})
}

// History retorna las facturas emitidas en la sesión, en orden de emisión.
func (uc *GenerateBillUseCase) History() []*dto.BillResponse {
	bills := uc.billRepo.ListAll()
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBillResponse(b))
	}
	return out
}

func (uc *GenerateBillUseCase) findCustomer(accountNo string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByAccount(accountNo)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cuenta %s: %w", accountNo, domain.ErrNotFound)
	}
	return customer, nil
}

func (uc *GenerateBillUseCase) emit(customer *entity.Customer, inputs []billingdom.LineInput) (*dto.BillResponse, error) {
	bill, err := uc.engine.Generate(customer, inputs, uc.cfg.TaxRate)
	if err != nil {
		return nil, err
	}
	if err := uc.billRepo.Save(bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:           b.ID,
		AccountNo:    b.AccountNo,
		CustomerName: b.CustomerName,
		IssuedAt:     b.IssuedAt,
		Lines:        make([]dto.BillLineResponse, 0, len(b.Lines)),
		Subtotal:     b.Subtotal,
		Tax:          b.Tax,
		Total:        b.Total,
	}
	for _, l := range b.Lines {
		resp.Lines = append(resp.Lines, dto.BillLineResponse{
			ItemCode:  l.ItemCode,
			ItemName:  l.ItemName,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	return resp
}
