package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	t.Run("long form", func(t *testing.T) {
		c, err := Hex("#8b5cf6")
		require.NoError(t, err)

		r, g, b, a := c.Bytes()
		require.Equal(t, []uint8{0x8b, 0x5c, 0xf6, 0xff}, []uint8{r, g, b, a})
	})

	t.Run("short form", func(t *testing.T) {
		c, err := Hex("fff")
		require.NoError(t, err)
		require.Equal(t, White, c)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Hex("#12345")
		require.ErrorIs(t, err, ErrInvalidHex)

		_, err = Hex("#zzzzzz")
		require.ErrorIs(t, err, ErrInvalidHex)
	})
}

func TestLerp(t *testing.T) {
	from := RGB(0, 0, 0)
	to := RGB(1, 0.5, 0.25)

	require.Equal(t, from, from.Lerp(to, 0))
	require.Equal(t, to, from.Lerp(to, 1))

	mid := from.Lerp(to, 0.5)
	require.InDelta(t, 0.5, mid.R, 1e-6)
	require.InDelta(t, 0.25, mid.G, 1e-6)
	require.InDelta(t, 0.125, mid.B, 1e-6)
}

func TestBytesTruncates(t *testing.T) {
	// 0.03*255 = 7.65, floor gives 7
	r, g, b, _ := RGB(0.03, 0.05, 0.15).Bytes()
	require.Equal(t, uint8(7), r)
	require.Equal(t, uint8(12), g)
	require.Equal(t, uint8(38), b)
}

func TestRGBAIsPremultiplied(t *testing.T) {
	r, _, _, a := RGBA(1, 0, 0, 0.5).RGBA()
	require.Equal(t, a, r)
}
