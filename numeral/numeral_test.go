package numeral

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToChar(t *testing.T) {
	type TC struct {
		digit int
		char  byte
		class interface{ Has(error) bool }
	}

	tcs := []TC{
		{digit: 0, char: '0'},
		{digit: 9, char: '9'},
		{digit: 10, char: 'a'},
		{digit: 18, char: 'i'},
		{digit: 35, char: 'z'},
		{digit: 36, class: &ErrOutOfRange},
		{digit: -1, class: &ErrOutOfRange},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.digit), func(t *testing.T) {
			c, err := ToChar(tc.digit)
			if tc.class != nil {
				require.Error(t, err)
				require.True(t, tc.class.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.char, c)
		})
	}
}

func TestToDigit(t *testing.T) {
	for d := 0; d < Base; d++ {
		c := MustChar(d)

		got, err := ToDigit(c)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	for _, c := range []byte{'A', 'Z', Positive, Negative, RadixPoint, '|', ' ', 0xff} {
		_, err := ToDigit(c)
		require.Error(t, err)
		require.True(t, ErrInvalidDigit.Has(err), "%q", c)
	}
}

func TestMustCharPanics(t *testing.T) {
	require.Panics(t, func() { MustChar(Base) })
}
