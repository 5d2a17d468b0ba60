package decimal

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale describes how a monetary amount is written for one currency.
type Locale struct {
	Tag                language.Tag
	Currency           currency.Unit
	Symbol             string
	SymbolSeparator    string
	ThousandsSeparator string
	DecimalSeparator   string
}

// BRL is the Brazilian Real as rendered by pt-BR browsers: "R$ 1.234,50"
// with a no-break space after the symbol.
var BRL = Locale{
	Tag:                language.BrazilianPortuguese,
	Currency:           currency.BRL,
	Symbol:             "R$",
	SymbolSeparator:    "\u00a0",
	ThousandsSeparator: ".",
	DecimalSeparator:   ",",
}

// Code returns the ISO 4217 code of the locale's currency.
func (l Locale) Code() string {
	return l.Currency.String()
}
