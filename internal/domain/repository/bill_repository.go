package repository

import "github.com/jhoicas/Libreria-pos/internal/domain/entity"

// BillRepository define el puerto del libro de facturas (append-only).
// No hay update ni delete: una factura emitida es inmutable.
type BillRepository interface {
	Save(bill *entity.Bill) error
	// ListAll retorna copias en orden de emisión (vista de auditoría).
	ListAll() []*entity.Bill
}
