package diagram_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridseed/gridseed/diagram"
)

// cmpOpts lets go-cmp look inside the grid types.
var cmpOpts = cmp.Options{
	cmp.AllowUnexported(diagram.Frame{}, diagram.Complex{}),
}

// withCheck appends the checksum byte to a hand-built body.
func withCheck(body ...byte) []byte {
	sum := sha256.Sum256(body)
	return append(body, sum[0])
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

const simpleVectorHex = "f09f988a412ae78e8b26012800001000012d"

var (
	simpleChars     = []rune("A&*王😊")
	simplePositions = [][2]int{{0, 6}, {1, 1}, {1, 3}, {4, 2}, {6, 6}}
)

func TestSimpleVector(t *testing.T) {
	d, err := diagram.NewSimple(simpleChars, simplePositions)
	require.NoError(t, err)
	assert.Equal(t, simplePositions, d.Indices())

	secret, err := d.Encode()
	require.NoError(t, err)
	assert.Equal(t, simpleVectorHex, hex.EncodeToString(secret))

	got, err := diagram.DecodeSimple(secret)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(d, got, cmpOpts))

	ch, ok := got.At(6, 6)
	require.True(t, ok)
	assert.Equal(t, '😊', ch)

	again, err := got.Encode()
	require.NoError(t, err)
	assert.Equal(t, secret, again)
}

func TestSimpleEmpty(t *testing.T) {
	var d diagram.Simple
	_, err := d.Encode()
	assert.ErrorIs(t, err, diagram.ErrEmpty)

	// cleared back to empty
	d.Set(3, 3, 'x')
	d.Clear(3, 3)
	_, err = d.Encode()
	assert.ErrorIs(t, err, diagram.ErrEmpty)

	_, err = diagram.DecodeSimple(make([]byte, 8))
	assert.ErrorIs(t, err, diagram.ErrSize)
}

func TestSimpleDecodeInvalid(t *testing.T) {
	t.Run("checksum", func(t *testing.T) {
		secret := mustHex(t, simpleVectorHex)
		secret[0] ^= 0x01
		_, err := diagram.DecodeSimple(secret)
		assert.ErrorIs(t, err, diagram.ErrChecksum)
	})

	t.Run("version", func(t *testing.T) {
		_, err := diagram.DecodeSimple(withCheck('A', 'X', 0b1000_0001, 0, 0, 0, 0, 0, 0b0000_0001))
		assert.ErrorIs(t, err, diagram.ErrVersion)
	})

	t.Run("utf8", func(t *testing.T) {
		_, err := diagram.DecodeSimple(withCheck(0xff, 0xef, 0, 0, 0, 0b0000_1100, 0, 0, 0))
		assert.ErrorIs(t, err, diagram.ErrUTF8)
	})

	t.Run("char count", func(t *testing.T) {
		// three presence bits, two chars
		_, err := diagram.DecodeSimple(withCheck('A', 'X', 0, 0, 0, 0b0000_1101, 0, 0, 0))
		assert.ErrorIs(t, err, diagram.ErrParameter)
		// one presence bit, two chars
		_, err = diagram.DecodeSimple(withCheck('A', 'X', 0, 0, 0, 0b0000_0001, 0, 0, 0))
		assert.ErrorIs(t, err, diagram.ErrParameter)
	})
}

// Flipping any bit of an encoded secret must surface as a checksum failure.
func TestSimpleChecksumSensitivity(t *testing.T) {
	secret := mustHex(t, simpleVectorHex)
	for i := range len(secret) - 1 {
		for bit := range 8 {
			tampered := append([]byte{}, secret...)
			tampered[i] ^= 1 << bit
			_, err := diagram.DecodeSimple(tampered)
			assert.ErrorIs(t, err, diagram.ErrChecksum, "byte %d bit %d", i, bit)
		}
	}
}

func TestNewSimpleInvalid(t *testing.T) {
	_, err := diagram.NewSimple(nil, nil)
	assert.ErrorIs(t, err, diagram.ErrParameter)
	_, err = diagram.NewSimple([]rune{'A', 'Z'}, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, diagram.ErrParameter)
	_, err = diagram.NewSimple([]rune{'A'}, [][2]int{{7, 0}})
	assert.ErrorIs(t, err, diagram.ErrParameter)
}

func TestSimpleRoundTripFull(t *testing.T) {
	var d diagram.Simple
	for row := range diagram.Rows {
		for col := range diagram.Cols {
			d.Set(row, col, rune('a'+row*7+col))
		}
	}
	secret, err := d.Encode()
	require.NoError(t, err)
	got, err := diagram.DecodeSimple(secret)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&d, got, cmpOpts))
}
