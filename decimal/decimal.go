package decimal

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/lexorank/integer"
	"github.com/calebcase/lexorank/numeral"
)

// ErrMultipleRadixPoints is returned when text contains more than one radix
// point.
var ErrMultipleRadixPoints = errs.Class("multiple radix points")

// Decimal is an immutable fixed point number. The zero value is zero.
type Decimal struct {
	value integer.Integer
	scale int
}

// Make returns the canonical decimal value * 36^-scale. A negative scale
// multiplies the value by 36^-scale.
func Make(value integer.Integer, scale int) Decimal {
	if value.IsZero() {
		return Decimal{}
	}

	if scale < 0 {
		return Decimal{
			value: value.Lsh(-scale),
		}
	}

	zeros := 0
	for zeros < scale && value.Digit(zeros) == 0 {
		zeros++
	}

	return Decimal{
		value: value.Rsh(zeros),
		scale: scale - zeros,
	}
}

// FromInteger returns the decimal with the integral value i.
func FromInteger(i integer.Integer) Decimal {
	return Make(i, 0)
}

// Half returns one half (0:i).
func Half() Decimal {
	return Make(integer.New(numeral.Base/2), 1)
}

// Parse a decimal from text.
func Parse(s string) (d Decimal, err error) {
	point := strings.IndexByte(s, numeral.RadixPoint)
	if point < 0 {
		i, err := integer.Parse(s)
		if err != nil {
			return Decimal{}, err
		}

		return FromInteger(i), nil
	}

	if strings.IndexByte(s[point+1:], numeral.RadixPoint) >= 0 {
		return Decimal{}, ErrMultipleRadixPoints.New("%q", s)
	}

	i, err := integer.Parse(s[:point] + s[point+1:])
	if err != nil {
		return Decimal{}, err
	}

	return Make(i, len(s)-point-1), nil
}

// MustParse is like Parse but panics if the text is invalid.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// String renders the decimal. The radix point is only present when the scale
// is non-zero and at least one integer digit always precedes it.
func (d Decimal) String() string {
	s := d.value.String()
	if d.scale == 0 {
		return s
	}

	head := ""
	if s[0] == numeral.Negative {
		head, s = s[:1], s[1:]
	}

	if pad := d.scale + 1 - len(s); pad > 0 {
		s = strings.Repeat(string(numeral.MustChar(0)), pad) + s
	}

	point := len(s) - d.scale

	return head + s[:point] + string(numeral.RadixPoint) + s[point:]
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() (data []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(data []byte) (err error) {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// Magnitude returns the unscaled integer.
func (d Decimal) Magnitude() integer.Integer {
	return d.value
}

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int {
	return d.scale
}

// Sign returns the sign of the decimal.
func (d Decimal) Sign() integer.Sign {
	return d.value.Sign()
}

// IsZero returns true if the decimal is zero.
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// align returns the unscaled values of d and o written at a common scale.
func (d Decimal) align(o Decimal) (l, r integer.Integer, scale int) {
	l, r = d.value, o.value

	switch {
	case d.scale < o.scale:
		return l.Lsh(o.scale - d.scale), r, o.scale
	case d.scale > o.scale:
		return l, r.Lsh(d.scale - o.scale), d.scale
	}

	return l, r, d.scale
}

// Add returns d + o.
func (d Decimal) Add(o Decimal) Decimal {
	l, r, scale := d.align(o)

	return Make(l.Add(r), scale)
}

// Sub returns d - o.
func (d Decimal) Sub(o Decimal) Decimal {
	l, r, scale := d.align(o)

	return Make(l.Sub(r), scale)
}

// Mul returns d * o.
func (d Decimal) Mul(o Decimal) Decimal {
	return Make(d.value.Mul(o.value), d.scale+o.scale)
}

// Cmp compares d and o and returns:
//
//   -1 if d <  o
//    0 if d == o
//   +1 if d >  o
func (d Decimal) Cmp(o Decimal) int {
	l, r, _ := d.align(o)

	return l.Cmp(r)
}

// Equal returns true if d and o have the same value.
func (d Decimal) Equal(o Decimal) bool {
	return d.Cmp(o) == 0
}

// SetScale reduces the scale of d to scale by dropping fractional digits
// (truncating toward zero). When ceiling is set one unit of the new scale is
// added to the truncated value, whether or not any of the dropped digits were
// non-zero. A scale at or above the current scale returns d unchanged and a
// negative scale is treated as 0.
func (d Decimal) SetScale(scale int, ceiling bool) Decimal {
	if scale < 0 {
		scale = 0
	}

	if scale >= d.scale {
		return d
	}

	v := d.value.Rsh(d.scale - scale)
	if ceiling {
		v = v.Add(integer.One())
	}

	return Make(v, scale)
}

// Floor returns the integer part of d, truncated toward zero.
func (d Decimal) Floor() integer.Integer {
	return d.value.Rsh(d.scale)
}

// Ceil returns the integer part of d plus one when d has a non-zero
// fractional part.
func (d Decimal) Ceil() integer.Integer {
	if d.IsExact() {
		return d.Floor()
	}

	return d.Floor().Add(integer.One())
}

// IsExact returns true if the fractional digits of d are all zero.
func (d Decimal) IsExact() bool {
	for k := 0; k < d.scale; k++ {
		if d.value.Digit(k) != 0 {
			return false
		}
	}

	return true
}
