package diagram_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridseed/gridseed/diagram"
)

// Reference vectors for the warp derivation. The scrypt half costs ~256 MiB
// and noticeable CPU per call, so the pinned vectors are skipped in short
// mode.
func TestDeriveEntropyVectors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory-hard derivation in short mode")
	}
	secret := mustHex(t, "41262ae78e8bf09f988a012800001000406d")

	entropy, err := diagram.DeriveEntropy(secret, nil)
	require.NoError(t, err)
	assert.Equal(t,
		"0948fd6d7b1dc397d26080804870913abc086636d3ed11d4fcb0f16f7c31a91a",
		hex.EncodeToString(entropy[:]))

	entropy, err = diagram.DeriveEntropy(secret, []byte("123abc"))
	require.NoError(t, err)
	assert.Equal(t,
		"e06ffd848c7901ca5757d848e5e81d69f9853273bee6772dcd25f56c506a1635",
		hex.EncodeToString(entropy[:]))
}

func TestDeriveEntropyDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory-hard derivation in short mode")
	}
	secret := []byte("secret")
	salt := []byte("salt")

	a, err := diagram.DeriveEntropy(secret, salt)
	require.NoError(t, err)
	b, err := diagram.DeriveEntropy(secret, salt)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := diagram.DeriveEntropy(secret, []byte("salt2"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := diagram.DeriveEntropy([]byte("secret2"), salt)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestDiagramEntropy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory-hard derivation in short mode")
	}
	// the diagram pipeline matches deriving from its encoded bytes
	d, err := diagram.NewSimple(simpleChars, simplePositions)
	require.NoError(t, err)
	secret, err := d.Encode()
	require.NoError(t, err)

	want, err := diagram.DeriveEntropy(secret, []byte("salt"))
	require.NoError(t, err)
	got, err := d.Entropy([]byte("salt"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
