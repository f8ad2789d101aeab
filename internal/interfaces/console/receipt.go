package console

import (
	"fmt"
	"io"

	"github.com/jhoicas/Libreria-pos/internal/application/dto"
	"github.com/jhoicas/Libreria-pos/pkg/money"
)

const timestampLayout = "2006-01-02 15:04:05"

// RenderReceipt imprime el recibo enmarcado de una factura.
func RenderReceipt(w io.Writer, bill *dto.BillResponse) {
	fmt.Fprintln(w, "\n=============== Librería — Recibo ===============")
	fmt.Fprintf(w, "Factura  : %s\n", bill.ID)
	fmt.Fprintf(w, "Fecha    : %s\n", bill.IssuedAt.Format(timestampLayout))
	fmt.Fprintf(w, "Cliente  : %s (Cuenta: %s)\n", bill.CustomerName, bill.AccountNo)
	fmt.Fprintln(w, "-------------------------------------------------")
	for _, l := range bill.Lines {
		fmt.Fprintf(w, "%s x %d = %s\n", l.ItemName, l.Quantity, money.Format(l.LineTotal))
	}
	fmt.Fprintln(w, "-------------------------------------------------")
	fmt.Fprintf(w, "Subtotal : %s\n", money.Format(bill.Subtotal))
	fmt.Fprintf(w, "Impuesto : %s\n", money.Format(bill.Tax))
	fmt.Fprintf(w, "Total    : %s\n", money.Format(bill.Total))
	fmt.Fprintln(w, "=================================================")
}
