package lexorank

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/lexorank/decimal"
	"github.com/calebcase/lexorank/integer"
	"github.com/calebcase/lexorank/numeral"
)

func TestConstants(t *testing.T) {
	require.Equal(t, "0|000000:", Min().String())
	require.Equal(t, "0|zzzzzz:", Max(Bucket0).String())
	require.Equal(t, "2|zzzzzz:", Max(Bucket2).String())
	require.Equal(t, "0|hzzzzz:", Middle().String())
	require.Equal(t, "0|100000:", Initial(Bucket0).String())
	require.Equal(t, "1|y00000:", Initial(Bucket1).String())
	require.Equal(t, "2|y00000:", Initial(Bucket2).String())

	require.True(t, Min().IsMin())
	require.True(t, Max(Bucket1).IsMax())
	require.False(t, Middle().IsMin())
	require.False(t, Middle().IsMax())

	// The zero value is the minimum.
	require.Equal(t, Min().String(), Rank{}.String())
	require.True(t, Rank{}.Equal(Min()))

	mid, err := Min().Between(Max(Bucket0))
	require.NoError(t, err)
	require.Equal(t, Middle(), mid)
}

func TestParseFormat(t *testing.T) {
	type TC struct {
		name   string
		input  string
		output string
		bucket Bucket
		value  string
	}

	tcs := []TC{
		{name: "canonical", input: "0|0i0000:", output: "0|0i0000:", bucket: Bucket0, value: "i0000"},
		{name: "fraction", input: "1|0i0000:i", output: "1|0i0000:i", bucket: Bucket1, value: "i0000:i"},
		{name: "no radix point", input: "2|0i0000", output: "2|0i0000:", bucket: Bucket2, value: "i0000"},
		{name: "short", input: "0|1", output: "0|000001:", bucket: Bucket0, value: "1"},
		{name: "trailing zeros", input: "0|1:500", output: "0|000001:5", bucket: Bucket0, value: "1:5"},
		{name: "zero fraction", input: "0|000000:000", output: "0|000000:", bucket: Bucket0, value: "0"},
		{name: "small", input: "0|000000:01", output: "0|000000:01", bucket: Bucket0, value: "0:01"},
		{name: "max", input: "0|zzzzzz:", output: "0|zzzzzz:", bucket: Bucket0, value: "zzzzzz"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			r, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.output, r.String())
			require.Equal(t, tc.bucket, r.Bucket())
			require.Equal(t, tc.value, r.Decimal().String())

			again, err := Parse(r.String())
			require.NoError(t, err)
			require.Equal(t, r, again)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	type TC struct {
		input string
		class interface{ Has(error) bool }
	}

	tcs := []TC{
		{input: "", class: &ErrInvalidFormat},
		{input: "0i0000:", class: &ErrInvalidFormat},
		{input: "3|0i0000:", class: &ErrUnknownBucket},
		{input: "|0i0000:", class: &ErrUnknownBucket},
		{input: "0|0i0000::", class: &decimal.ErrMultipleRadixPoints},
		{input: "0|0I0000:", class: &numeral.ErrInvalidDigit},
		{input: "0|0i|0000:", class: &integer.ErrInvalidFormat},
		{input: "0|", class: &integer.ErrInvalidFormat},
		{input: "0|-1", class: &ErrInvalidFormat},
		{input: "0|1000000:", class: &ErrInvalidFormat},
		{input: "1|zzzzzz:1", class: &ErrInvalidFormat},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			require.True(t, ErrInvalidFormat.Has(err), "%v", err)
			require.True(t, tc.class.Has(err), "%v", err)
		})
	}

	require.Panics(t, func() { MustParse("nope") })

	// The bounds themselves are accepted.
	require.True(t, MustParse("0|zzzzzz:").IsMax())
	require.True(t, MustParse("2|000000:").IsMin())
}

func TestNewBucketRange(t *testing.T) {
	value := decimal.MustParse("i0000")

	for i, b := range []Bucket{Bucket(3), Bucket(7), Bucket(255)} {
		t.Run(fmt.Sprintf("[%d]%d", i, uint8(b)), func(t *testing.T) {
			r := New(b, value)
			require.True(t, r.Bucket().Valid())
			require.Equal(t, b%3, r.Bucket())

			again, err := Parse(r.String())
			require.NoError(t, err)
			require.Equal(t, r, again)
		})
	}
}

func TestGenNext(t *testing.T) {
	type TC struct {
		input  string
		output string
	}

	tcs := []TC{
		{input: "0|000000:", output: "0|100000:"},
		{input: "0|0i0000:", output: "0|0i0008:"},
		{input: "0|000001:i", output: "0|00000a:"},
		{input: "1|hzzzzz:", output: "1|i00007:"},
		{input: "0|zzzzzu:", output: "0|zzzzzw:"},
		{input: "0|zzzzzy:", output: "0|zzzzzy:i"},
		{input: "0|zzzzzz:", output: "0|zzzzzz:"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			require.Equal(t, tc.output, MustParse(tc.input).GenNext().String())
		})
	}
}

func TestGenPrev(t *testing.T) {
	type TC struct {
		input  string
		output string
	}

	tcs := []TC{
		{input: "0|zzzzzz:", output: "0|y00000:"},
		{input: "2|zzzzzz:", output: "2|y00000:"},
		{input: "0|0i0008:", output: "0|0i0000:"},
		{input: "0|000001:i", output: "0|000000:i"},
		{input: "0|000005:", output: "0|000002:"},
		{input: "0|000000:1", output: "0|000000:0i"},
		{input: "0|000000:", output: "0|000000:"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			require.Equal(t, tc.output, MustParse(tc.input).GenPrev().String())
		})
	}
}

func TestBetweenDecimal(t *testing.T) {
	type TC struct {
		left, right string
		mid         string
	}

	tcs := []TC{
		{left: "0", right: "zzzzzz", mid: "hzzzzz"},
		{left: "i0000", right: "i0008", mid: "i0004"},
		{left: "1", right: "2", mid: "1:i"},
		{left: "1", right: "3", mid: "2"},
		{left: "1", right: "1:1", mid: "1:0i"},
		{left: "0:1", right: "0:2", mid: "0:1i"},
		{left: "1:z", right: "2", mid: "1:zi"},
		{left: "0:zz", right: "1", mid: "0:zzi"},
		{left: "0", right: "0:1", mid: "0:0i"},
		{left: "0:1", right: "0:1i", mid: "0:19"},
		{left: "abc:def", right: "abc:deg", mid: "abc:defi"},
		{left: "i0000", right: "i0001", mid: "i0000:i"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s,%s", i, tc.left, tc.right), func(t *testing.T) {
			l, r := decimal.MustParse(tc.left), decimal.MustParse(tc.right)

			mid := between(l, r)
			require.Equal(t, tc.mid, mid.String())
			require.Equal(t, -1, l.Cmp(mid))
			require.Equal(t, -1, mid.Cmp(r))
		})
	}
}

func TestBetween(t *testing.T) {
	a := MustParse("0|0i0000:")
	b := a.GenNext()
	require.Equal(t, "0|0i0008:", b.String())

	mid, err := a.Between(b)
	require.NoError(t, err)
	require.Equal(t, "0|0i0004:", mid.String())

	// Argument order does not matter.
	swapped, err := b.Between(a)
	require.NoError(t, err)
	require.Equal(t, mid, swapped)

	low, err := a.Between(mid)
	require.NoError(t, err)
	require.Equal(t, "0|0i0002:", low.String())

	high, err := mid.Between(b)
	require.NoError(t, err)
	require.Equal(t, "0|0i0006:", high.String())

	ranks := []Rank{high, b, low, a, mid}
	strs := make([]string, len(ranks))
	for i, r := range ranks {
		strs[i] = r.String()
	}
	sort.Strings(strs)

	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].Decimal().Cmp(ranks[j].Decimal()) < 0
	})

	for i, r := range ranks {
		require.Equal(t, strs[i], r.String())
	}
	require.Equal(t, []string{"0|0i0000:", "0|0i0002:", "0|0i0004:", "0|0i0006:", "0|0i0008:"}, strs)
}

func TestBetweenErrors(t *testing.T) {
	a := MustParse("0|0i0000:")

	_, err := a.Between(a.InNextBucket())
	require.Error(t, err)
	require.True(t, ErrDifferentBucket.Has(err))

	_, err = a.Between(MustParse("0|0i0000:000"))
	require.Error(t, err)
	require.True(t, ErrIdenticalRank.Has(err))

	_, err = a.Between(a)
	require.True(t, ErrIdenticalRank.Has(err))
}

func TestMoveBucket(t *testing.T) {
	r := MustParse("0|0i0000:i")

	require.Equal(t, "1|0i0000:i", r.InNextBucket().String())
	require.Equal(t, "2|0i0000:i", r.InPrevBucket().String())
	require.Equal(t, r, r.InNextBucket().InPrevBucket())
	require.Equal(t, r, r.InNextBucket().InNextBucket().InNextBucket())

	// Bucket dominates the ordering.
	require.Equal(t, -1, Max(Bucket0).Compare(Min().InNextBucket()))
	require.Equal(t, 1, Min().InPrevBucket().Compare(Max(Bucket1)))
}

// randomDecimal returns a value in [Min, Max].
func randomDecimal(rng *rand.Rand) decimal.Decimal {
	buf := []byte{}
	for k := rng.Intn(6) + 1; k > 0; k-- {
		buf = append(buf, numeral.MustChar(rng.Intn(numeral.Base)))
	}

	if rng.Intn(2) == 0 {
		buf = append(buf, numeral.RadixPoint)
		for k := rng.Intn(6); k > 0; k-- {
			buf = append(buf, numeral.MustChar(rng.Intn(numeral.Base)))
		}
	}

	d := decimal.MustParse(string(buf))
	if d.Cmp(maxDecimal) > 0 {
		return maxDecimal
	}

	return d
}

func TestOrderingFidelity(t *testing.T) {
	rng := rand.New(rand.NewSource(36))

	for k := 0; k < 5000; k++ {
		x := New(Bucket(rng.Intn(3)), randomDecimal(rng))
		y := New(Bucket(rng.Intn(3)), randomDecimal(rng))

		want := x.Decimal().Cmp(y.Decimal())
		if x.Bucket() != y.Bucket() {
			want = -1
			if x.Bucket() > y.Bucket() {
				want = 1
			}
		}

		require.Equal(t, want, x.Compare(y), "%s <=> %s", x, y)
		require.Equal(t, want == 0, x.Equal(y))
		require.Equal(t, x.String(), MustParse(x.String()).String())
	}
}

func TestRepeatedInsertion(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	ranks := []Rank{Min(), Max(Bucket0)}
	for k := 0; k < 2000; k++ {
		var i int
		switch rng.Intn(3) {
		case 0:
			// Crowd one spot to force long values.
			i = 0
		default:
			i = rng.Intn(len(ranks) - 1)
		}

		mid, err := ranks[i].Between(ranks[i+1])
		require.NoError(t, err)

		if ranks[i].Compare(mid) >= 0 || mid.Compare(ranks[i+1]) >= 0 {
			t.Logf("Ranks: %s\n", spew.Sdump(ranks[i].String(), mid.String(), ranks[i+1].String()))
			t.FailNow()
		}

		require.Equal(t, -1, ranks[i].Decimal().Cmp(mid.Decimal()))
		require.Equal(t, -1, mid.Decimal().Cmp(ranks[i+1].Decimal()))

		ranks = append(ranks[:i+1], append([]Rank{mid}, ranks[i+1:]...)...)
	}

	require.True(t, sort.SliceIsSorted(ranks, func(i, j int) bool {
		return ranks[i].String() < ranks[j].String()
	}))
}

func TestStepping(t *testing.T) {
	r := Min()
	for k := 0; k < 1000; k++ {
		next := r.GenNext()
		require.Equal(t, 1, next.Compare(r), "%s", r)
		require.False(t, next.IsMax())
		r = next
	}

	r = MustParse("0|zzzzz0:")
	for k := 0; k < 50; k++ {
		next := r.GenNext()
		require.Equal(t, 1, next.Compare(r), "%s", r)
		require.Equal(t, -1, next.Compare(Max(Bucket0)), "%s", next)
		r = next
	}

	r = Max(Bucket0)
	for k := 0; k < 1000; k++ {
		prev := r.GenPrev()
		require.Equal(t, -1, prev.Compare(r), "%s", r)
		require.False(t, prev.IsMin())
		r = prev
	}

	r = MustParse("0|00000z:")
	for k := 0; k < 50; k++ {
		prev := r.GenPrev()
		require.Equal(t, -1, prev.Compare(r), "%s", r)
		require.Equal(t, 1, prev.Compare(Min()), "%s", prev)
		r = prev
	}

	rng := rand.New(rand.NewSource(1))
	for k := 0; k < 1000; k++ {
		r := New(Bucket0, randomDecimal(rng))
		if !r.IsMax() {
			require.Equal(t, 1, r.GenNext().Compare(r), "%s", r)
		}
		if !r.IsMin() {
			require.Equal(t, -1, r.GenPrev().Compare(r), "%s", r)
		}
	}
}
