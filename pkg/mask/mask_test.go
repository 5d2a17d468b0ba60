package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "", Digits(""))
	assert.Equal(t, "123456", Digits("R$ 1.234,56"))
	assert.Equal(t, "01022024", Digits("01/02/2024"))
	assert.Equal(t, "", Digits("abc-"))
	assert.Equal(t, "7", Digits("٣7")) // non-ASCII digits are not digits here
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no digits", "abc", ""},
		{"single digit", "5", "0,05"},
		{"two digits", "42", "0,42"},
		{"three digits", "100", "1,00"},
		{"leading zeros dropped", "000123", "1,23"},
		{"all zeros", "0000", "0,00"},
		{"thousands", "123456", "1.234,56"},
		{"grouped", "1234567", "12.345,67"},
		{"millions", "123456789", "1.234.567,89"},
		{"reformat existing mask", "12.345,678", "123.456,78"},
		{"backspace over mask", "12.345,6", "1.234,56"},
		{"mixed junk", "R$ 1a2b3", "1,23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	m, err := ParseAmount("1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", m.String())

	m, err = ParseAmount(Amount("5"))
	require.NoError(t, err)
	assert.Equal(t, "0.05", m.String())

	for _, bad := range []string{"", "12", "1,2", "1.23,45", "1234.567,00", "a,bc", ",00", "1..234,00"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", bad)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"ab", "ab"},
		{"--/--", "--/--"},
		{"0", "0"},
		{"01", "01"},
		{"010", "01/0"},
		{"0102", "01/02"},
		{"01022", "01/02/2"},
		{"010220", "01/02/20"},
		{"01022024", "01/02/2024"},
		{"01/02/2024", "01/02/2024"},
		{"01/02/20245", "01/02/2024"},
		{"99999999", "99/99/9999"},
		{"0a1b0c2", "01/02"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Date(tt.input, Truncate), "Date(%q)", tt.input)
	}
}

func TestDateRetainOverflow(t *testing.T) {
	assert.Equal(t, "01/02/2024", Date("01022024", Retain))
	assert.Equal(t, "01/02/202499", Date("0102202499", Retain))
	assert.Equal(t, "01/02/2024", Date("0102202499", Truncate))
}

func TestParseOverflow(t *testing.T) {
	o, err := ParseOverflow("")
	require.NoError(t, err)
	assert.Equal(t, Truncate, o)

	o, err = ParseOverflow(" Retain ")
	require.NoError(t, err)
	assert.Equal(t, Retain, o)
	assert.Equal(t, "retain", o.String())

	_, err = ParseOverflow("wrap")
	assert.Error(t, err)
}
