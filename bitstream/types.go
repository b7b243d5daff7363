package bitstream

import "errors"

// Sentinel errors for bitstream construction and reads.
var (
	// ErrInvalidHex indicates the hex input is empty or holds a non-hex character.
	ErrInvalidHex = errors.New("bitstream: invalid hex input")

	// ErrInvalidBinary indicates the binary input is empty or holds a character other than '0'/'1'.
	ErrInvalidBinary = errors.New("bitstream: invalid binary input")

	// ErrWidth indicates a requested field width outside [0, 64].
	ErrWidth = errors.New("bitstream: field width must be within [0, 64]")

	// ErrShortRead indicates fewer bits remain than a read requested.
	ErrShortRead = errors.New("bitstream: not enough bits remaining")

	// ErrOutOfRange indicates an offset outside the stream.
	ErrOutOfRange = errors.New("bitstream: offset out of range")
)

// MaxWidth is the widest field a single read can return.
const MaxWidth = 64

// Bitstream is an immutable, MSB-first sequence of bits.
// buf packs eight bits per byte; the final byte may carry unused low bits.
type Bitstream struct {
	buf    []byte
	bitLen int
}

// Reader is a cursor over a Bitstream bounded by [pos, end).
// Offsets reported by a Reader are absolute positions in the underlying stream.
type Reader struct {
	bs  *Bitstream
	pos int
	end int
}
