package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter печатает суммы с символом валюты
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

func NewFormatter(code string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.English),
	}, nil
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}

func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.Round(2).InexactFloat64())))
}
