package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProvableAdvancesNonce(t *testing.T) {
	p := NewProvable()

	a, err := p.Next()
	require.NoError(t, err)
	b, err := p.Next()
	require.NoError(t, err)

	// Same seed, consecutive nonces: values must differ.
	require.NotEqual(t, a, b)
	require.Len(t, p.SeedHash(), 64)
}

func TestProvableRotationWindow(t *testing.T) {
	p := NewProvable()
	before := p.SeedHash()

	// Freshly rotated source stays on its seed.
	p.MaybeRotate()
	require.Equal(t, before, p.SeedHash())
}

func TestFixedSequence(t *testing.T) {
	src := Sequence(7, 0, 42)

	for _, want := range []uint64{7, 0, 42} {
		got, err := src.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := src.Next()
	require.ErrorIs(t, err, ErrExhausted)
}
