package integer

import "github.com/calebcase/lexorank/numeral"

// Magnitude arithmetic. Operands and results are least significant digit
// first. Results are freshly allocated and may carry zero digits at the most
// significant end; canonical strips them.

func add(l, r []uint8) []uint8 {
	if len(l) < len(r) {
		l, r = r, l
	}

	z := make([]uint8, len(l)+1)

	carry := 0
	for k := range l {
		s := int(l[k]) + carry
		if k < len(r) {
			s += int(r[k])
		}

		carry = s / numeral.Base
		z[k] = uint8(s % numeral.Base)
	}
	z[len(l)] = uint8(carry)

	return z
}

// sub requires l >= r.
func sub(l, r []uint8) []uint8 {
	z := make([]uint8, len(l))

	borrow := 0
	for k := range l {
		d := int(l[k]) - borrow
		if k < len(r) {
			d -= int(r[k])
		}

		borrow = 0
		if d < 0 {
			d += numeral.Base
			borrow = 1
		}

		z[k] = uint8(d)
	}

	if borrow != 0 {
		panic("integer: magnitude underflow")
	}

	return z
}

func mul(l, r []uint8) []uint8 {
	acc := make([]int, len(l)+len(r))

	for a := range l {
		if l[a] == 0 {
			continue
		}

		carry := 0
		for b := range r {
			p := acc[a+b] + int(l[a])*int(r[b]) + carry
			carry = p / numeral.Base
			acc[a+b] = p % numeral.Base
		}

		for k := a + len(r); carry > 0; k++ {
			p := acc[k] + carry
			carry = p / numeral.Base
			acc[k] = p % numeral.Base
		}
	}

	z := make([]uint8, len(acc))
	for k, d := range acc {
		z[k] = uint8(d)
	}

	return z
}

// cmp compares canonical magnitudes: first by length, then digit by digit
// from the most significant end.
func cmp(l, r []uint8) int {
	switch {
	case len(l) < len(r):
		return -1
	case len(l) > len(r):
		return 1
	}

	for k := len(l) - 1; k >= 0; k-- {
		switch {
		case l[k] < r[k]:
			return -1
		case l[k] > r[k]:
			return 1
		}
	}

	return 0
}
