package lexorank

import (
	"strings"

	"github.com/calebcase/lexorank/decimal"
	"github.com/calebcase/lexorank/numeral"
)

// Separator splits the bucket from the decimal in a rank string.
const Separator = '|'

// width is the minimum number of integer digits in a rank string.
const width = 6

var (
	zeroDecimal  = decimal.Decimal{}
	oneDecimal   = decimal.MustParse("1")
	eightDecimal = decimal.MustParse("8")

	minDecimal = zeroDecimal
	maxDecimal = decimal.MustParse("1000000").Sub(oneDecimal)
	midDecimal = between(minDecimal, maxDecimal)

	initialMinDecimal = decimal.MustParse("100000")
	initialMaxDecimal = decimal.MustParse(string(numeral.MustChar(numeral.Base-2)) + "00000")
)

// Rank is an immutable, totally ordered position marker. Ranks order the
// same way their canonical strings do, so they may be stored and sorted as
// plain text.
//
// The zero value is the minimum rank in bucket 0.
type Rank struct {
	bucket Bucket
	value  decimal.Decimal
	text   string
}

// New returns the rank for value in bucket b. The value should lie within
// [Min, Max] for the canonical string to order correctly. A bucket outside
// the three valid ids is reduced modulo 3.
func New(b Bucket, value decimal.Decimal) Rank {
	b %= bucketCount

	return Rank{
		bucket: b,
		value:  value,
		text:   format(b, value),
	}
}

// Min returns the lowest rank in bucket 0.
func Min() Rank {
	return New(Bucket0, minDecimal)
}

// Max returns the highest rank in bucket b.
func Max(b Bucket) Rank {
	return New(b, maxDecimal)
}

// Middle returns the rank half way between Min and Max in bucket 0.
func Middle() Rank {
	return New(Bucket0, midDecimal)
}

// Initial returns the first rank to place in an empty bucket. Bucket 0
// starts near the bottom of the range and the other buckets near the top.
func Initial(b Bucket) Rank {
	if b == Bucket0 {
		return New(b, initialMinDecimal)
	}

	return New(b, initialMaxDecimal)
}

// Parse a rank from its string form: the bucket id, the separator, and the
// decimal value.
func Parse(s string) (r Rank, err error) {
	defer ErrInvalidFormat.WrapP(&err)

	head, tail, ok := strings.Cut(s, string(Separator))
	if !ok {
		return Rank{}, ErrInvalidFormat.New("missing separator: %q", s)
	}

	b, err := ParseBucket(head)
	if err != nil {
		return Rank{}, err
	}

	value, err := decimal.Parse(tail)
	if err != nil {
		return Rank{}, err
	}

	if value.Sign() < 0 {
		return Rank{}, ErrInvalidFormat.New("negative value: %q", s)
	}

	if value.Cmp(maxDecimal) > 0 {
		return Rank{}, ErrInvalidFormat.New("value out of range: %q", s)
	}

	return New(b, value), nil
}

// MustParse is like Parse but panics if the text is invalid.
func MustParse(s string) Rank {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// format renders the canonical rank string. The integer digits are zero
// padded to the fixed width and the radix point is always present.
func format(b Bucket, value decimal.Decimal) string {
	s := value.String()

	point := strings.IndexByte(s, numeral.RadixPoint)
	if point < 0 {
		point = len(s)
		s += string(numeral.RadixPoint)
	}

	zero := numeral.MustChar(0)
	if point < width {
		s = strings.Repeat(string(zero), width-point) + s
	}

	return b.String() + string(Separator) + strings.TrimRight(s, string(zero))
}

// String returns the canonical form of the rank.
func (r Rank) String() string {
	if r.text == "" {
		return format(r.bucket, r.value)
	}

	return r.text
}

// Bucket returns the bucket of the rank.
func (r Rank) Bucket() Bucket {
	return r.bucket
}

// Decimal returns the numeric value of the rank.
func (r Rank) Decimal() decimal.Decimal {
	return r.value
}

// IsMin returns true if the rank holds the minimum value.
func (r Rank) IsMin() bool {
	return r.value.Equal(minDecimal)
}

// IsMax returns true if the rank holds the maximum value.
func (r Rank) IsMax() bool {
	return r.value.Equal(maxDecimal)
}

// GenNext returns a rank after r in the same bucket. The value steps to the
// next integer slot plus 8 while that stays below the maximum and otherwise
// falls half way toward the maximum.
func (r Rank) GenNext() Rank {
	if r.IsMin() {
		return New(r.bucket, initialMinDecimal)
	}

	next := decimal.FromInteger(r.value.Ceil()).Add(eightDecimal)
	if next.Cmp(maxDecimal) >= 0 {
		next = between(r.value, maxDecimal)
	}

	return New(r.bucket, next)
}

// GenPrev returns a rank before r in the same bucket. The value steps to the
// previous integer slot minus 8 while that stays above the minimum and
// otherwise falls half way toward the minimum.
func (r Rank) GenPrev() Rank {
	if r.IsMax() {
		return New(r.bucket, initialMaxDecimal)
	}

	prev := decimal.FromInteger(r.value.Floor()).Sub(eightDecimal)
	if prev.Cmp(minDecimal) <= 0 {
		prev = between(minDecimal, r.value)
	}

	return New(r.bucket, prev)
}

// Between returns the rank with the shortest value strictly between r and o.
// The order of r and o does not matter but both must be in the same bucket
// and hold different values.
func (r Rank) Between(o Rank) (_ Rank, err error) {
	if r.bucket != o.bucket {
		return Rank{}, ErrDifferentBucket.New("%s and %s", r, o)
	}

	switch r.value.Cmp(o.value) {
	case 0:
		return Rank{}, ErrIdenticalRank.New("%s", r)
	case 1:
		return New(r.bucket, between(o.value, r.value)), nil
	}

	return New(r.bucket, between(r.value, o.value)), nil
}

// InNextBucket returns the rank with the same value in the next bucket.
func (r Rank) InNextBucket() Rank {
	return New(r.bucket.Next(), r.value)
}

// InPrevBucket returns the rank with the same value in the previous bucket.
func (r Rank) InPrevBucket() Rank {
	return New(r.bucket.Prev(), r.value)
}

// Compare compares the canonical strings of r and o and returns:
//
//   -1 if r <  o
//    0 if r == o
//   +1 if r >  o
func (r Rank) Compare(o Rank) int {
	return strings.Compare(r.String(), o.String())
}

// Equal returns true if r and o have the same canonical string.
func (r Rank) Equal(o Rank) bool {
	return r.String() == o.String()
}

// Less reports whether r sorts before o.
func (r Rank) Less(o Rank) bool {
	return r.Compare(o) < 0
}
