package denary_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/denary/denary"
)

func TestRoundtrip(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		type TC struct {
			Input  string
			Output string
			Mark   error
		}

		tcs := []TC{
			{
				Input:  "0",
				Output: "0",
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  "1234",
				Output: "1234",
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  "00_12 34",
				Output: "1234",
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  "1_000_000",
				Output: "1000000",
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  "123456789012345678901234567890",
				Output: "123456789012345678901234567890",
				Mark:   oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%q", i, tc.Input), func(t *testing.T) {
				b, err := denary.FromString(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Output, b.String(), tc.Mark)

				// Displayed form parses back to an identical buffer.
				c, err := denary.FromString(b.String())
				require.NoError(t, err, tc.Mark)
				require.Equal(t, b.String(), c.String(), tc.Mark)
				require.Equal(t, b.Len(), c.Len(), tc.Mark)
			})
		}
	})

	t.Run("text", func(t *testing.T) {
		b := fromString(t, "1234")

		text, err := b.MarshalText()
		require.NoError(t, err)
		require.Equal(t, []byte("1234"), text)

		c := denary.New()
		err = c.UnmarshalText(text)
		require.NoError(t, err)
		require.Equal(t, "1234", c.String())
		require.Equal(t, 4, c.Len())
	})

	t.Run("text fixed", func(t *testing.T) {
		b := denary.NewFixed(4)

		err := b.UnmarshalText([]byte("1234"))
		require.NoError(t, err)
		require.Equal(t, "1234", b.String())
		require.Equal(t, 4, b.Cap())

		// Too large for the fixed capacity: state is kept.
		err = b.UnmarshalText([]byte("12345"))
		require.ErrorIs(t, err, denary.ErrCapacityExceeded)
		require.Equal(t, "1234", b.String())

		// Smaller values leave the slack zeroed.
		err = b.UnmarshalText([]byte("12"))
		require.NoError(t, err)
		require.Equal(t, "12", b.String())
		require.Equal(t, denary.Digit(0), b.ReadAt(2))
		require.Equal(t, denary.Digit(0), b.ReadAt(3))
	})

	t.Run("text invalid", func(t *testing.T) {
		b := fromString(t, "1234")

		err := b.UnmarshalText([]byte("56x"))
		require.ErrorIs(t, err, denary.ErrInvalidCharacter)
		require.Equal(t, "1234", b.String())
	})
}
