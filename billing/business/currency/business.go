package currency

import (
	"github.com/shopspring/decimal"
)

// FormatFunc renders a raw monetary amount in the given ISO 4217 currency as
// a display string. It is a pure function: projection code receives it as a
// collaborator and never does arithmetic on its output.
type FormatFunc func(amount decimal.Decimal, code string) string

// Business formats monetary amounts for display.
type Business interface {
	Format(amount decimal.Decimal, code string) string
}

type business struct{}

// NewCurrencyBusiness creates the display-formatting business.
func NewCurrencyBusiness() Business {
	return &business{}
}
