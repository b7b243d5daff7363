package bitstream

import (
	"fmt"
	"strings"
)

// FromHex expands a hexadecimal string into a Bitstream, 4 bits per digit,
// most significant bit first. Surrounding whitespace is ignored and both
// upper- and lowercase digits are accepted.
// Returns ErrInvalidHex for empty input or any other character.
// Complexity: O(N).
func FromHex(s string) (*Bitstream, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidHex)
	}
	bs := &Bitstream{
		buf:    make([]byte, (len(s)+1)/2),
		bitLen: 4 * len(s),
	}
	for i := 0; i < len(s); i++ {
		nibble, ok := hexValue(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: character %q at position %d", ErrInvalidHex, s[i], i)
		}
		if i%2 == 0 {
			bs.buf[i/2] = nibble << 4
		} else {
			bs.buf[i/2] |= nibble
		}
	}

	return bs, nil
}

// FromBinary builds a Bitstream from a string of '0' and '1' characters.
// Surrounding whitespace is ignored.
// Returns ErrInvalidBinary for empty input or any other character.
func FromBinary(s string) (*Bitstream, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidBinary)
	}
	bs := &Bitstream{
		buf:    make([]byte, (len(s)+7)/8),
		bitLen: len(s),
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bs.buf[i/8] |= 1 << (7 - uint(i%8))
		default:
			return nil, fmt.Errorf("%w: character %q at position %d", ErrInvalidBinary, s[i], i)
		}
	}

	return bs, nil
}

// hexValue maps a single hex digit to its 4-bit value.
func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}

	return 0, false
}

// Len returns the number of bits in the stream.
func (b *Bitstream) Len() int {
	return b.bitLen
}

// Bit returns the bit (0 or 1) at position i.
// It panics if i is out of range, like a slice index.
func (b *Bitstream) Bit(i int) uint8 {
	if i < 0 || i >= b.bitLen {
		panic(fmt.Sprintf("bitstream: bit index %d out of range [0, %d)", i, b.bitLen))
	}

	return (b.buf[i/8] >> (7 - uint(i%8))) & 1
}

// Uint interprets the n bits starting at offset as an unsigned MSB-first integer.
// Returns ErrWidth for n outside [0, 64], ErrOutOfRange for a bad offset,
// and ErrShortRead when the stream ends before offset+n.
func (b *Bitstream) Uint(offset, n int) (uint64, error) {
	if n < 0 || n > MaxWidth {
		return 0, fmt.Errorf("%w: got %d", ErrWidth, n)
	}
	if offset < 0 || offset > b.bitLen {
		return 0, fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, offset, b.bitLen)
	}
	if offset+n > b.bitLen {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrShortRead, n, offset, b.bitLen-offset)
	}

	return b.uint(offset, n), nil
}

// uint reads n bits at offset without bounds checks.
func (b *Bitstream) uint(offset, n int) uint64 {
	var v uint64
	for i := offset; i < offset+n; i++ {
		v = v<<1 | uint64(b.Bit(i))
	}

	return v
}

// Reader returns a cursor positioned at offset and bounded by the end of the stream.
// An offset past the end yields a reader with nothing remaining.
func (b *Bitstream) Reader(offset int) *Reader {
	if offset < 0 {
		offset = 0
	}
	if offset > b.bitLen {
		offset = b.bitLen
	}

	return &Reader{bs: b, pos: offset, end: b.bitLen}
}

// String renders the stream as binary digits, e.g. "110100101111".
func (b *Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(b.bitLen)
	for i := 0; i < b.bitLen; i++ {
		sb.WriteByte('0' + b.Bit(i))
	}

	return sb.String()
}
