package budget

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const significantDigits = 3

// Formatter renders amounts for display: at most three significant digits,
// locale grouping, currency symbol prefix. Presentation only; estimator
// totals are never rounded.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
}

func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		symbol:  "$",
	}, nil
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}

func (f *Formatter) Format(amount float64) string {
	rounded := int64(math.Round(RoundSignificant(amount, significantDigits)))
	return f.symbol + " " + f.printer.Sprintf("%d", rounded)
}

var defaultFormatter = func() *Formatter {
	f, err := NewFormatter("es-CO", "COP")
	if err != nil {
		panic(err)
	}
	return f
}()

// FormatCOP formats an amount of Colombian pesos the way the planner shows it.
func FormatCOP(amount float64) string {
	return defaultFormatter.Format(amount)
}

// RoundSignificant rounds v to the given number of significant digits.
func RoundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	magnitude := math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(digits-1)-magnitude)
	return math.Round(v*scale) / scale
}
