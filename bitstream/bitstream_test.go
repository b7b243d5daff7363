package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/bitstream"
)

// TestFromHex_Expansion checks the 4-bits-per-digit, MSB-first expansion.
func TestFromHex_Expansion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"literal packet", "D2FE28", "110100101111111000101000"},
		{"operator packet", "38006F45291200", "00111000000000000110111101000101001010010001001000000000"},
		{"single digit", "F", "1111"},
		{"zero digit", "0", "0000"},
		{"lowercase", "d2", "11010010"},
		{"trailing newline", "A\n", "1010"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bs, err := bitstream.FromHex(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, bs.String())
			assert.Equal(t, len(tc.want), bs.Len())
		})
	}
}

// TestFromHex_Errors verifies that empty or non-hex input is rejected.
func TestFromHex_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "D2G", "12 34", "0x1F"} {
		_, err := bitstream.FromHex(in)
		assert.ErrorIs(t, err, bitstream.ErrInvalidHex, "input %q", in)
	}
}

// TestFromBinary round-trips a layout through String and rejects bad digits.
func TestFromBinary(t *testing.T) {
	bs, err := bitstream.FromBinary("101100111")
	require.NoError(t, err)
	assert.Equal(t, 9, bs.Len())
	assert.Equal(t, "101100111", bs.String())
	assert.Equal(t, uint8(1), bs.Bit(0))
	assert.Equal(t, uint8(0), bs.Bit(1))
	assert.Equal(t, uint8(1), bs.Bit(8))

	_, err = bitstream.FromBinary("1012")
	assert.ErrorIs(t, err, bitstream.ErrInvalidBinary)
	_, err = bitstream.FromBinary("")
	assert.ErrorIs(t, err, bitstream.ErrInvalidBinary)
}

// TestUint reads fields at arbitrary, unaligned offsets.
func TestUint(t *testing.T) {
	bs, err := bitstream.FromHex("D2FE28")
	require.NoError(t, err)

	v, err := bs.Uint(0, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), v, "version field")

	v, err = bs.Uint(3, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v, "type field")

	v, err = bs.Uint(0, 24)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xD2FE28), v)

	v, err = bs.Uint(24, 0)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = bs.Uint(20, 5)
	assert.ErrorIs(t, err, bitstream.ErrShortRead)
	_, err = bs.Uint(-1, 2)
	assert.ErrorIs(t, err, bitstream.ErrOutOfRange)
	_, err = bs.Uint(0, 65)
	assert.ErrorIs(t, err, bitstream.ErrWidth)
}

// TestReader_Sequential reads the literal packet D2FE28 field by field.
func TestReader_Sequential(t *testing.T) {
	bs, err := bitstream.FromHex("D2FE28")
	require.NoError(t, err)
	r := bs.Reader(0)

	version, err := r.Read(3)
	require.NoError(t, err)
	typeID, err := r.Read(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), version)
	assert.Equal(t, uint64(4), typeID)

	var value uint64
	for {
		more, err := r.ReadBit()
		require.NoError(t, err)
		group, err := r.Read(4)
		require.NoError(t, err)
		value = value<<4 | group
		if more == 0 {
			break
		}
	}
	assert.Equal(t, uint64(2021), value)
	assert.Equal(t, 21, r.Offset())
	assert.Equal(t, 3, r.Remaining())
	assert.True(t, r.AllZero(), "trailing bits are padding")
}

// TestReader_ShortReadLeavesCursor ensures a failed read does not advance.
func TestReader_ShortReadLeavesCursor(t *testing.T) {
	bs, err := bitstream.FromBinary("10101")
	require.NoError(t, err)
	r := bs.Reader(2)

	_, err = r.Read(4)
	assert.ErrorIs(t, err, bitstream.ErrShortRead)
	assert.Equal(t, 2, r.Offset())

	_, err = r.Read(-1)
	assert.ErrorIs(t, err, bitstream.ErrWidth)

	v, err := r.Read(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b101), v)
	assert.Zero(t, r.Remaining())
}

// TestReader_Window verifies that a window is bounded and the parent skips it.
func TestReader_Window(t *testing.T) {
	bs, err := bitstream.FromBinary("1111000011")
	require.NoError(t, err)
	r := bs.Reader(0)

	w, err := r.Window(4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Offset(), "parent advanced past the window")
	assert.Equal(t, 0, w.Offset())
	assert.Equal(t, 4, w.Remaining())

	_, err = w.Read(5)
	assert.ErrorIs(t, err, bitstream.ErrShortRead, "window must not expose following bits")

	v, err := w.Read(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1111), v)

	assert.False(t, r.AllZero())
	require.NoError(t, r.Skip(4))
	v, err = r.Read(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b11), v)

	_, err = r.Window(1)
	assert.ErrorIs(t, err, bitstream.ErrShortRead)
	assert.ErrorIs(t, r.Skip(1), bitstream.ErrShortRead)
}

// TestReader_OffsetClamping covers readers created outside the stream.
func TestReader_OffsetClamping(t *testing.T) {
	bs, err := bitstream.FromHex("FF")
	require.NoError(t, err)

	assert.Equal(t, 0, bs.Reader(-3).Offset())
	past := bs.Reader(100)
	assert.Equal(t, 8, past.Offset())
	assert.Zero(t, past.Remaining())
	assert.True(t, past.AllZero())
}
