package decimal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned when a string carries no finite decimal literal.
var ErrNotANumber = errors.New("not a finite decimal number")

// maxExponent bounds the decimal exponent of a parsed amount; Round and
// StringFixed expand every digit the exponent implies.
const maxExponent = 400

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
	// negZero marks a zero parsed from a negative literal ("-0", "-1e-500"),
	// which still prints with a minus sign.
	negZero bool
}

// NewMoneyFromString creates a new Money instance from a strict decimal string.
// Exponents beyond ±400 are rejected with ErrNotANumber.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	if !inRange(d) {
		return Money{}, fmt.Errorf("%w: %q exponent out of range", ErrNotANumber, value)
	}
	return Money{Decimal: d}, nil
}

func inRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxExponent && exp >= -maxExponent
}

// leadingNumber matches the longest decimal literal at the start of a string,
// the same prefix a browser's parseFloat would consume.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLoose parses the leading decimal literal of value, ignoring leading
// whitespace and any trailing garbage ("12.5abc" is 12.5). Values with no
// literal, or that overflow float64, yield ErrNotANumber. Literals with an
// extreme exponent are read through float64, so "1e-500" is zero.
func ParseLoose(value string) (Money, error) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	lit := leadingNumber.FindString(s)
	if lit == "" {
		return Money{}, ErrNotANumber
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(f, 0) {
		return Money{}, ErrNotANumber
	}

	// decimal.NewFromString is stricter than the float grammar about bare dots
	lit = strings.TrimPrefix(lit, "+")
	mant, exp, hasExp := strings.Cut(lit, "e")
	if !hasExp {
		mant, exp, hasExp = strings.Cut(lit, "E")
	}
	neg := strings.HasPrefix(mant, "-")
	mant = strings.TrimPrefix(mant, "-")
	mant = strings.TrimSuffix(mant, ".")
	if strings.HasPrefix(mant, ".") {
		mant = "0" + mant
	}
	if neg {
		mant = "-" + mant
	}
	if hasExp {
		mant += "e" + exp
	}

	d, err := decimal.NewFromString(mant)
	if err != nil || !inRange(d) {
		d = decimal.NewFromFloat(f)
	}
	return Money{Decimal: d, negZero: neg && d.IsZero()}, nil
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{Decimal: m.Decimal.Round(2), negZero: m.negZero}
}

// IsNegative reports whether the amount is below zero. A negative zero is not.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// signed reports whether the amount prints with a minus sign: any negative
// value, even one that rounds to zero, and a negative zero.
func (m Money) signed() bool {
	return m.Decimal.IsNegative() || m.negZero
}

// String returns the plain two-decimal representation ("1234.50")
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount as Brazilian Real ("R$ 1.234,50")
func (m Money) Format() string {
	return m.FormatLocale(BRL)
}

// FormatLocale renders the amount with the separators and symbol of l.
// Negative amounts carry the minus sign before the symbol, including those
// that round to zero ("-0.001" is "-R$ 0,00").
func (m Money) FormatLocale(l Locale) string {
	r := m.Round()
	intPart, frac, _ := strings.Cut(r.Decimal.Abs().StringFixed(2), ".")

	var b strings.Builder
	if m.signed() {
		b.WriteByte('-')
	}
	b.WriteString(l.Symbol)
	b.WriteString(l.SymbolSeparator)
	b.WriteString(GroupThousands(intPart, l.ThousandsSeparator))
	b.WriteString(l.DecimalSeparator)
	b.WriteString(frac)
	return b.String()
}

// GroupThousands inserts sep every three digits from the right of an
// unsigned digit string.
func GroupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
