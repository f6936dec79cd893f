// Package numeral defines the base 36 digit alphabet used by rank values.
//
// Digits 0 through 35 are written with the characters '0'-'9' followed by
// 'a'-'z'. Three further characters carry meaning in numbers: '+' and '-'
// prefix the sign of an integer and ':' separates the integer and fractional
// parts of a decimal.
package numeral

import "github.com/zeebo/errs"

// Base is the radix of the numeral system.
const Base = 36

// Special characters.
const (
	Positive   byte = '+'
	Negative   byte = '-'
	RadixPoint byte = ':'
)

// Error classes.
var (
	ErrOutOfRange   = errs.Class("digit out of range")
	ErrInvalidDigit = errs.Class("invalid digit")
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// ToChar returns the character for digit d.
func ToChar(d int) (c byte, err error) {
	if d < 0 || d >= Base {
		return 0, ErrOutOfRange.New("%d not in [0, %d)", d, Base)
	}

	return digits[d], nil
}

// ToDigit returns the digit value of character c.
func ToDigit(c byte) (d int, err error) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), nil
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, nil
	}

	return 0, ErrInvalidDigit.New("%q", c)
}

// MustChar is like ToChar but panics if d is out of range.
func MustChar(d int) byte {
	c, err := ToChar(d)
	if err != nil {
		panic(err)
	}

	return c
}
