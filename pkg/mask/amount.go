// Package mask implements the live input masks applied to currency and date
// fields. Every mask is a total function: any input string yields a value,
// computed only from the digits it contains.
package mask

import (
	"errors"
	"strings"

	"github.com/rpgo/formkit/pkg/decimal"
)

// ErrInvalidAmount is returned by ParseAmount for strings that are not a
// masked amount.
var ErrInvalidAmount = errors.New("invalid masked amount")

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Amount reformats s as a digit-grouped amount with two decimal places,
// reading the digits as cents: "1234567" becomes "12.345,67" and "5"
// becomes "0,05". Input without digits yields "".
func Amount(s string) string {
	d := Digits(s)
	if d == "" {
		return ""
	}
	if len(d) < 3 {
		d = strings.Repeat("0", 3-len(d)) + d
	}

	intPart, frac := d[:len(d)-2], d[len(d)-2:]
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	l := decimal.BRL
	return decimal.GroupThousands(intPart, l.ThousandsSeparator) + l.DecimalSeparator + frac
}

// ParseAmount converts a masked amount ("1.234,56") back into Money.
func ParseAmount(s string) (decimal.Money, error) {
	l := decimal.BRL
	s = strings.TrimSpace(s)
	intPart, frac, ok := strings.Cut(s, l.DecimalSeparator)
	if !ok || len(frac) != 2 || Digits(frac) != frac {
		return decimal.Money{}, ErrInvalidAmount
	}
	groups := strings.Split(intPart, l.ThousandsSeparator)
	for i, g := range groups {
		if g == "" || Digits(g) != g || (i > 0 && len(g) != 3) || (i == 0 && len(groups) > 1 && len(g) > 3) {
			return decimal.Money{}, ErrInvalidAmount
		}
	}
	m, err := decimal.NewMoneyFromString(strings.Join(groups, "") + "." + frac)
	if err != nil {
		return decimal.Money{}, ErrInvalidAmount
	}
	return m, nil
}
