package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter lee entradas de la terminal con reintentos. Toda la validación de
// primitivas malformadas vive aquí: los casos de uso solo reciben valores ya
// validados. Cuando la entrada se agota (Ctrl-D, script consumido) los
// lectores retornan ok=false y el shell debe cerrar la sesión; los bucles de
// reintento nunca giran sobre un stream agotado.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

// NewPrompter construye el lector sobre los streams dados (inyectables en tests).
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Exhausted indica si la entrada ya se agotó.
func (p *Prompter) Exhausted() bool {
	return p.eof
}

// ReadLine imprime el prompt y retorna la línea sin el salto final.
// ok=false cuando la entrada está agotada y no queda nada por leer.
func (p *Prompter) ReadLine(prompt string) (string, bool) {
	if p.eof {
		return "", false
	}
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
		if line == "" {
			return "", false
		}
		// última línea sin salto final: se entrega una vez
	}
	return strings.TrimRight(line, "\r\n"), true
}

// ReadNonEmpty reintenta hasta obtener una línea no vacía (espacios no cuentan).
func (p *Prompter) ReadNonEmpty(prompt string) (string, bool) {
	for {
		s, ok := p.ReadLine(prompt)
		if !ok {
			return "", false
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, true
		}
	}
}

// ReadInt reintenta hasta obtener un entero en [min, max].
func (p *Prompter) ReadInt(prompt string, min, max int) (int, bool) {
	for {
		s, ok := p.ReadLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && v >= min && v <= max {
			return v, true
		}
		fmt.Fprintln(p.out, "Entrada inválida, intente de nuevo.")
	}
}

// ReadDecimal reintenta hasta obtener un decimal >= min.
func (p *Prompter) ReadDecimal(prompt string, min decimal.Decimal) (decimal.Decimal, bool) {
	for {
		s, ok := p.ReadLine(prompt)
		if !ok {
			return decimal.Zero, false
		}
		v, err := decimal.NewFromString(strings.TrimSpace(s))
		if err == nil && v.GreaterThanOrEqual(min) {
			return v, true
		}
		fmt.Fprintln(p.out, "Entrada inválida, intente de nuevo.")
	}
}

// ReadOptionalInt lee un entero opcional para flujos de edición: línea en
// blanco o número inválido/negativo retorna nil (conservar valor actual).
func (p *Prompter) ReadOptionalInt(prompt string) (*int, bool) {
	s, ok := p.ReadLine(prompt)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, true
	}
	return &v, true
}

// ReadOptionalDecimal lee un decimal opcional para flujos de edición: blanco
// o valor inválido/negativo retorna nil (conservar valor actual).
func (p *Prompter) ReadOptionalDecimal(prompt string) (*decimal.Decimal, bool) {
	s, ok := p.ReadLine(prompt)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return nil, true
	}
	return &v, true
}

// ReadYesNo reintenta hasta obtener y/n (acepta yes/no, s/si).
func (p *Prompter) ReadYesNo(prompt string) (bool, bool) {
	for {
		s, ok := p.ReadLine(prompt)
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "y", "yes", "s", "si", "sí":
			return true, true
		case "n", "no":
			return false, true
		}
		fmt.Fprintln(p.out, "Responda y/n.")
	}
}

// Pause espera Enter (o el fin de la entrada).
func (p *Prompter) Pause(msg string) {
	if p.eof {
		return
	}
	fmt.Fprint(p.out, msg)
	if _, err := p.in.ReadString('\n'); err != nil {
		p.eof = true
	}
}
