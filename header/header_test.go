package header

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	h := Header{
		Version:   1,
		Timestamp: 1842918273,
		Bits:      0x2ffffff,
		Nonce:     312143,
	}

	buf := h.Encode()
	decoded, err := Decode(buf[:])
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func TestEncodeLayout(t *testing.T) {
	h := Header{
		Version:   2,
		Timestamp: 0x01020304,
		Bits:      0x1d00ffff,
		Nonce:     0xdeadbeef,
	}
	h.PrevBlockHash[0] = 0xaa
	h.MerkleRoot[31] = 0xbb

	buf := h.Encode()
	require.Len(t, buf[:], Size)

	// Little-endian integers, hashes verbatim, fields in consensus order.
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0x00}, buf[0:4])
	assert.Equal(t, byte(0xaa), buf[4])
	assert.Equal(t, byte(0xbb), buf[67])
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf[68:72])
	assert.Equal(t, []byte{0xff, 0xff, 0x00, 0x1d}, buf[72:76])
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, buf[76:80])
}

func TestDecodeShortBuffer(t *testing.T) {
	for _, n := range []int{0, 1, 79} {
		_, err := Decode(make([]byte, n))
		assert.ErrorIs(t, err, ErrShortBuffer, "length %d", n)
	}
}

func TestRoundTripFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for i := 0; i < 500; i++ {
		var h Header
		f.Fuzz(&h)

		buf := h.Encode()
		decoded, err := Decode(buf[:])
		require.NoError(t, err)
		require.Equal(t, h, decoded)
	}
}

func TestTarget(t *testing.T) {
	h := Header{Bits: 0x1d00ffff}
	expected := new(uint256.Int).Lsh(uint256.NewInt(0xffff), 208)
	assert.Equal(t, expected, h.Target())

	// Exponent at or below 3 shifts the mantissa down instead.
	h = Header{Bits: 0x02ffffff}
	assert.Equal(t, uint256.NewInt(0x7fff), h.Target())
}

func TestWork(t *testing.T) {
	// Difficulty-1 work: 2^256 / (target(0x1d00ffff) + 1).
	h := Header{Bits: 0x1d00ffff}
	assert.Equal(t, uint256.NewInt(4295032833), h.Work())

	h = Header{Bits: 0}
	assert.True(t, h.Work().IsZero())
}
