package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnarmor_LengthAndTrailingZeroBits(t *testing.T) {
	// "15" -> two armor characters, 0 fill bits: 12 bits packed into 2 bytes.
	out, err := Unarmor([]byte("15"), 0)
	require.NoError(t, err)
	assert.Len(t, out, (6*2+7)/8)
	// The 4 bits of the second byte past the 12 packed bits read as zero.
	assert.Equal(t, byte(0), out[1]&0x0F)
}

func TestUnarmor_RejectsOutOfRangeByte(t *testing.T) {
	_, err := Unarmor([]byte{'!'}, 0)
	assert.ErrorIs(t, err, ErrArmorOutOfRange)
}

func TestUnarmor_AcceptsBothAlphabetRanges(t *testing.T) {
	// '0' (48) and '`' (96) both decode to value 0.
	low, err := Unarmor([]byte{'0'}, 0)
	require.NoError(t, err)
	high, err := Unarmor([]byte{'`'}, 0)
	require.NoError(t, err)
	assert.Equal(t, low, high)
}

func TestUnarmor_MasksFillBitsEvenAcrossByteBoundary(t *testing.T) {
	// Two armor chars = 12 bits = 1.5 bytes. With 5 fill bits, only the first
	// 7 significant bits matter and the mask straddles byte 0 and byte 1,
	// which is the case spec §9 flags as needing explicit coverage.
	armored := []byte{'w', 'w'} // both max-value (63) characters
	out, err := Unarmor(armored, 5)
	require.NoError(t, err)

	r := NewReader(out)
	significant, err := r.TakeU(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b111_1111), significant)

	rest, err := r.TakeU(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rest, "fill bits must read back as zero")
}

func TestUnarmor_NoFillBitsLeavesDataIntact(t *testing.T) {
	out, err := Unarmor([]byte{'w'}, 0) // single char, value 63 = 0b111111
	require.NoError(t, err)
	r := NewReader(out)
	v, err := r.TakeU(6)
	require.NoError(t, err)
	assert.Equal(t, uint64(63), v)
}
