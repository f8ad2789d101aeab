package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Printer para montos con separador de miles (#,##0.00).
var printer = message.NewPrinter(language.English)

// Round2 redondea a 2 decimales con half-up (mitad se aleja de cero).
// Para los montos no negativos del dominio equivale al redondeo comercial.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format devuelve el monto con separador de miles y 2 decimales fijos:
// 8900 -> "8,900.00". Solo para presentación; los cálculos siempre se hacen
// sobre decimal.Decimal. Parte de la representación decimal exacta, nunca de
// un float64, así los montos grandes no pierden dígitos.
func Format(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var grouped string
	if u, err := strconv.ParseUint(intPart, 10, 64); err == nil {
		grouped = printer.Sprintf("%v", number.Decimal(u))
	} else {
		grouped = groupThousands(intPart)
	}

	out := grouped + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands agrupa de a tres los dígitos de magnitudes que exceden uint64.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
