package memory

import (
	"sync"

	"github.com/jhoicas/Libreria-pos/internal/domain/entity"
	"github.com/jhoicas/Libreria-pos/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo libro de facturas en memoria, append-only.
// Guarda copias profundas: la factura del caller puede mutarse sin
// afectar el registro, y viceversa.
type BillRepo struct {
	mu    sync.RWMutex
	bills []entity.Bill
}

// NewBillRepository construye el adaptador.
func NewBillRepository() *BillRepo {
	return &BillRepo{}
}

// Save agrega la factura al final del libro.
func (r *BillRepo) Save(bill *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = append(r.bills, copyBill(bill))
	return nil
}

// ListAll retorna copias de todas las facturas en orden de emisión.
func (r *BillRepo) ListAll() []*entity.Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Bill, 0, len(r.bills))
	for i := range r.bills {
		b := copyBill(&r.bills[i])
		out = append(out, &b)
	}
	return out
}

func copyBill(b *entity.Bill) entity.Bill {
	cp := *b
	cp.Lines = make([]entity.BillLine, len(b.Lines))
	copy(cp.Lines, b.Lines)
	return cp
}
