package bitstream

import "fmt"

// Offset returns the absolute position of the cursor in the underlying stream.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns how many bits are left before the reader's bound.
func (r *Reader) Remaining() int {
	return r.end - r.pos
}

// Read returns the next n bits as an MSB-first unsigned integer and advances.
// On error the cursor does not move.
func (r *Reader) Read(n int) (uint64, error) {
	if n < 0 || n > MaxWidth {
		return 0, fmt.Errorf("%w: got %d", ErrWidth, n)
	}
	if n > r.Remaining() {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrShortRead, n, r.pos, r.Remaining())
	}
	v := r.bs.uint(r.pos, n)
	r.pos += n

	return v, nil
}

// ReadBit returns the next single bit and advances.
func (r *Reader) ReadBit() (uint8, error) {
	v, err := r.Read(1)

	return uint8(v), err
}

// Skip advances the cursor by n bits.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot skip %d bits", ErrWidth, n)
	}
	if n > r.Remaining() {
		return fmt.Errorf("%w: cannot skip %d bits at offset %d, have %d", ErrShortRead, n, r.pos, r.Remaining())
	}
	r.pos += n

	return nil
}

// Window returns a reader over exactly the next n bits and advances r past them.
// Reads through the window can never cross its end, whatever follows in the stream.
func (r *Reader) Window(n int) (*Reader, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: window of %d bits", ErrWidth, n)
	}
	if n > r.Remaining() {
		return nil, fmt.Errorf("%w: window of %d bits at offset %d, have %d", ErrShortRead, n, r.pos, r.Remaining())
	}
	w := &Reader{bs: r.bs, pos: r.pos, end: r.pos + n}
	r.pos += n

	return w, nil
}

// AllZero reports whether every remaining bit is 0, i.e. only padding is left.
// An exhausted reader reports true.
func (r *Reader) AllZero() bool {
	for i := r.pos; i < r.end; i++ {
		if r.bs.Bit(i) != 0 {
			return false
		}
	}

	return true
}
