// Package integer provides an arbitrary precision signed integer written in
// the base 36 numeral system.
package integer

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/lexorank/numeral"
)

// ErrInvalidFormat is returned when text cannot be parsed as an integer.
var ErrInvalidFormat = errs.Class("invalid integer format")

// Sign of an integer.
type Sign int8

// Signs
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

var zeroMag = []uint8{0}

// Integer is an immutable signed integer.
//
// The magnitude is stored least significant digit first and never has zero
// digits at the most significant end, except for the zero value which is the
// single digit 0. The zero value of Integer is zero.
type Integer struct {
	sign Sign
	mag  []uint8
}

// canonical returns the integer for sign and mag. Zero digits at the
// most significant end are dropped and an all zero magnitude becomes zero. mag
// must not be shared with another Integer.
func canonical(sign Sign, mag []uint8) Integer {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}

	if n == 0 {
		return Integer{}
	}

	if sign == Zero {
		sign = Positive
	}

	return Integer{
		sign: sign,
		mag:  mag[:n:n],
	}
}

// New returns the integer with value v.
func New(v int64) Integer {
	if v == 0 {
		return Integer{}
	}

	sign := Positive
	u := uint64(v)
	if v < 0 {
		sign = Negative
		u = uint64(-v)
	}

	mag := []uint8{}
	for u > 0 {
		mag = append(mag, uint8(u%numeral.Base))
		u /= numeral.Base
	}

	return canonical(sign, mag)
}

// One returns the integer 1.
func One() Integer {
	return Integer{
		sign: Positive,
		mag:  []uint8{1},
	}
}

// Parse an integer from text. An optional leading sign character is followed
// by one or more digits, most significant first.
func Parse(s string) (i Integer, err error) {
	defer ErrInvalidFormat.WrapP(&err)

	sign := Positive
	if len(s) > 0 {
		switch s[0] {
		case numeral.Positive:
			s = s[1:]
		case numeral.Negative:
			sign = Negative
			s = s[1:]
		}
	}

	if len(s) == 0 {
		return Integer{}, ErrInvalidFormat.New("no digits")
	}

	mag := make([]uint8, len(s))
	for k := 0; k < len(s); k++ {
		d, err := numeral.ToDigit(s[k])
		if err != nil {
			return Integer{}, err
		}

		mag[len(s)-1-k] = uint8(d)
	}

	return canonical(sign, mag), nil
}

// MustParse is like Parse but panics if the text is invalid.
func MustParse(s string) Integer {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return i
}

// String renders the integer most significant digit first. Negative values
// are prefixed with '-'.
func (i Integer) String() string {
	mag := i.digits()

	sb := &strings.Builder{}
	sb.Grow(len(mag) + 1)

	if i.sign == Negative {
		sb.WriteByte(numeral.Negative)
	}

	for k := len(mag) - 1; k >= 0; k-- {
		sb.WriteByte(numeral.MustChar(int(mag[k])))
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (i Integer) MarshalText() (data []byte, err error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Integer) UnmarshalText(data []byte) (err error) {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}

	*i = v

	return nil
}

func (i Integer) digits() []uint8 {
	if len(i.mag) == 0 {
		return zeroMag
	}

	return i.mag
}

// Sign returns the sign of the integer.
func (i Integer) Sign() Sign {
	return i.sign
}

// IsZero returns true if the integer is zero.
func (i Integer) IsZero() bool {
	return i.sign == Zero
}

// Len returns the number of digits in the magnitude. Zero has one digit.
func (i Integer) Len() int {
	return len(i.digits())
}

// Digit returns the k-th least significant digit of the magnitude. Digits
// beyond the magnitude are zero.
func (i Integer) Digit(k int) int {
	if k < 0 || k >= len(i.mag) {
		return 0
	}

	return int(i.mag[k])
}

// Neg returns -i.
func (i Integer) Neg() Integer {
	if i.IsZero() {
		return i
	}

	return Integer{
		sign: -i.sign,
		mag:  i.mag,
	}
}

// Add returns i + o.
func (i Integer) Add(o Integer) Integer {
	switch {
	case i.IsZero():
		return o
	case o.IsZero():
		return i
	case i.sign == o.sign:
		return canonical(i.sign, add(i.mag, o.mag))
	case i.sign == Negative:
		return i.Neg().Sub(o).Neg()
	}

	return i.Sub(o.Neg())
}

// Sub returns i - o.
func (i Integer) Sub(o Integer) Integer {
	switch {
	case i.IsZero():
		return o.Neg()
	case o.IsZero():
		return i
	case i.sign != o.sign:
		return i.Add(o.Neg())
	}

	switch cmp(i.mag, o.mag) {
	case 0:
		return Integer{}
	case -1:
		return canonical(-i.sign, sub(o.mag, i.mag))
	}

	return canonical(i.sign, sub(i.mag, o.mag))
}

// Mul returns i * o.
func (i Integer) Mul(o Integer) Integer {
	if i.IsZero() || o.IsZero() {
		return Integer{}
	}

	sign := Positive
	if i.sign != o.sign {
		sign = Negative
	}

	return canonical(sign, mul(i.mag, o.mag))
}

// Lsh returns i * 36^n. A negative n shifts right.
func (i Integer) Lsh(n int) Integer {
	switch {
	case n == 0 || i.IsZero():
		return i
	case n < 0:
		return i.Rsh(-n)
	}

	mag := make([]uint8, n+len(i.mag))
	copy(mag[n:], i.mag)

	return canonical(i.sign, mag)
}

// Rsh returns i / 36^n truncated toward zero: the n least significant digits
// are dropped. A negative n shifts left.
func (i Integer) Rsh(n int) Integer {
	switch {
	case n == 0 || i.IsZero():
		return i
	case n < 0:
		return i.Lsh(-n)
	case n >= len(i.mag):
		return Integer{}
	}

	mag := make([]uint8, len(i.mag)-n)
	copy(mag, i.mag[n:])

	return canonical(i.sign, mag)
}

// Cmp compares i and o and returns:
//
//   -1 if i <  o
//    0 if i == o
//   +1 if i >  o
func (i Integer) Cmp(o Integer) int {
	if i.sign != o.sign {
		if i.sign < o.sign {
			return -1
		}

		return 1
	}

	c := cmp(i.digits(), o.digits())
	if i.sign == Negative {
		return -c
	}

	return c
}

// Equal returns true if i and o have the same value.
func (i Integer) Equal(o Integer) bool {
	return i.Cmp(o) == 0
}
