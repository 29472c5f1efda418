package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders amount with the symbol for the given ISO 4217 code, e.g.
// "$ 300.00". Unknown codes fall back to "<code> <amount>" rather than
// failing: formatting is display-only and must stay total.
func (b *business) Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + amount.StringFixed(2)
	}

	// Display formatting only; all arithmetic happens upstream on the
	// decimal values, so the float conversion here cannot leak back into
	// totals.
	value, _ := amount.Float64()
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}
