package lexorank

import (
	"github.com/calebcase/lexorank/decimal"
)

// between returns the shortest decimal strictly between left and right. It
// requires left < right.
//
// Both bounds are first brought to the smaller of their scales and then
// narrowed one fractional digit at a time, rounding left up and right down.
// When the narrowed bounds meet, the shared value is the answer. Otherwise
// the mean of the last distinct bounds is taken and its trailing digits are
// dropped while it stays strictly inside the original bounds.
func between(oldLeft, oldRight decimal.Decimal) decimal.Decimal {
	left, right := oldLeft, oldRight

	if oldLeft.Scale() < oldRight.Scale() {
		narrow := oldRight.SetScale(oldLeft.Scale(), false)
		if oldLeft.Cmp(narrow) >= 0 {
			return mean(oldLeft, oldRight)
		}

		right = narrow
	}

	if oldLeft.Scale() > right.Scale() {
		narrow := oldLeft.SetScale(right.Scale(), true)
		if narrow.Cmp(right) >= 0 {
			return mean(oldLeft, oldRight)
		}

		left = narrow
	}

	for scale := left.Scale(); scale > 0; scale-- {
		l := left.SetScale(scale-1, true)
		r := right.SetScale(scale-1, false)

		c := l.Cmp(r)
		if c == 0 {
			return inside(oldLeft, oldRight, l)
		}
		if c > 0 {
			break
		}

		left, right = l, r
	}

	mid := inside(oldLeft, oldRight, mean(left, right))

	for scale := mid.Scale(); scale > 0; scale-- {
		shorter := mid.SetScale(scale-1, false)
		if oldLeft.Cmp(shorter) >= 0 || shorter.Cmp(oldRight) >= 0 {
			break
		}

		mid = shorter
	}

	return mid
}

// mean returns (left + right) / 2, rounded to the larger scale of the
// operands when the rounded value remains strictly inside the bounds.
func mean(left, right decimal.Decimal) decimal.Decimal {
	mid := left.Add(right).Mul(decimal.Half())

	scale := left.Scale()
	if right.Scale() > scale {
		scale = right.Scale()
	}

	if mid.Scale() > scale {
		down := mid.SetScale(scale, false)
		if down.Cmp(left) > 0 {
			return down
		}

		up := mid.SetScale(scale, true)
		if up.Cmp(right) < 0 {
			return up
		}
	}

	return mid
}

// inside returns mid when it lies strictly between left and right and the
// mean of the bounds otherwise.
func inside(left, right, mid decimal.Decimal) decimal.Decimal {
	if left.Cmp(mid) >= 0 || mid.Cmp(right) >= 0 {
		return mean(left, right)
	}

	return mid
}
