package mask

import (
	"fmt"
	"strings"
)

// Overflow decides what happens to digits typed past a complete DD/MM/YYYY.
type Overflow int

const (
	// Truncate drops every digit after the eighth.
	Truncate Overflow = iota
	// Retain keeps extra digits, appended unformatted after the year.
	Retain
)

// MaxDateDigits is the number of digits in a complete DD/MM/YYYY date.
const MaxDateDigits = 8

func (o Overflow) String() string {
	switch o {
	case Truncate:
		return "truncate"
	case Retain:
		return "retain"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// ParseOverflow maps a policy name to its Overflow value.
func ParseOverflow(name string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "truncate":
		return Truncate, nil
	case "retain":
		return Retain, nil
	default:
		return 0, fmt.Errorf("unknown date overflow policy %q (want truncate or retain)", name)
	}
}

// Date inserts slashes into the digits of s by position only:
// "01" stays "01", "0102" becomes "01/02", "01022024" becomes "01/02/2024".
// Day and month ranges are not checked. Input without any digit is returned
// unchanged.
func Date(s string, o Overflow) string {
	d := Digits(s)
	if d == "" {
		return s
	}
	if o == Truncate && len(d) > MaxDateDigits {
		d = d[:MaxDateDigits]
	}

	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}
