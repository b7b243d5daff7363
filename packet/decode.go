package packet

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/bitstream"
)

// decoder carries options through the recursive descent.
type decoder struct {
	opts Options
}

// Decode decodes the packet that starts at offset in bs.
// Returns the packet and the exact number of bits it consumed, including all
// descendants. If fewer than 6 bits remain at offset, Decode returns an End
// packet, 0 and a nil error.
//
// Errors: ErrOffset, ErrOptionViolation, ErrTruncated, ErrLiteralOverflow,
// ErrDepthExceeded.
func Decode(bs *bitstream.Bitstream, offset int, opts ...Option) (*Packet, int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	if bs == nil || offset < 0 || offset > bs.Len() {
		return nil, 0, fmt.Errorf("%w: %d", ErrOffset, offset)
	}

	d := &decoder{opts: o}
	p, err := d.decode(bs.Reader(offset), 0)
	if err != nil {
		return nil, 0, err
	}

	return p, p.BitsConsumed, nil
}

// DecodeHex expands a hex transmission and decodes its outermost packet.
// Trailing padding after that packet is ignored.
// Returns ErrNoPacket if the transmission is too short to hold a header.
func DecodeHex(hex string, opts ...Option) (*Packet, error) {
	bs, err := bitstream.FromHex(hex)
	if err != nil {
		return nil, err
	}
	p, _, err := Decode(bs, 0, opts...)
	if err != nil {
		return nil, err
	}
	if p.IsEnd() {
		return nil, ErrNoPacket
	}

	return p, nil
}

// DecodeAll decodes back-to-back outermost packets from the start of bs.
// It stops at the first End or once only zero padding bits remain.
func DecodeAll(bs *bitstream.Bitstream, opts ...Option) ([]*Packet, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return nil, fmt.Errorf("%w: nil bitstream", ErrOffset)
	}

	d := &decoder{opts: o}
	r := bs.Reader(0)
	var out []*Packet
	for !r.AllZero() {
		p, err := d.decode(r, 0)
		if err != nil {
			return out, err
		}
		if p.IsEnd() {
			break
		}
		out = append(out, p)
	}

	return out, nil
}

// decode reads one packet at the cursor of r, advancing r past it.
func (d *decoder) decode(r *bitstream.Reader, depth int) (*Packet, error) {
	if r.Remaining() < headerBits {
		return &Packet{Kind: KindEnd}, nil
	}
	start := r.Offset()
	if d.opts.MaxDepth > 0 && depth > d.opts.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d at offset %d (max %d)", ErrDepthExceeded, depth, start, d.opts.MaxDepth)
	}

	version, _ := r.Read(versionBits)
	typeID, _ := r.Read(typeBits)
	p := &Packet{Version: uint8(version), Type: uint8(typeID)}

	var err error
	if p.Type == TypeLiteral {
		p.Kind = KindLiteral
		p.Value, err = readLiteral(r)
	} else {
		err = d.readOperator(r, p, depth)
	}
	if err != nil {
		return nil, err
	}
	p.BitsConsumed = r.Offset() - start

	return p, nil
}

// readLiteral accumulates 4-bit groups until a group whose flag bit is 0.
func readLiteral(r *bitstream.Reader) (uint64, error) {
	var value uint64
	for {
		at := r.Offset()
		group, err := r.Read(groupBits)
		if err != nil {
			return 0, fmt.Errorf("%w: literal group at offset %d: %w", ErrTruncated, at, err)
		}
		if value>>60 != 0 {
			return 0, fmt.Errorf("%w: at offset %d", ErrLiteralOverflow, at)
		}
		value = value<<4 | group&0xF
		if group&0x10 == 0 {
			return value, nil
		}
	}
}

// readOperator reads the length type ID and the sub-packets it governs into p.
func (d *decoder) readOperator(r *bitstream.Reader, p *Packet, depth int) error {
	at := r.Offset()
	lengthType, err := r.Read(lengthTypeBits)
	if err != nil {
		return fmt.Errorf("%w: length type at offset %d: %w", ErrTruncated, at, err)
	}

	if lengthType == 0 {
		p.Kind = KindOperatorBits
		n, err := r.Read(bitLengthBits)
		if err != nil {
			return fmt.Errorf("%w: sub-packet length at offset %d: %w", ErrTruncated, at+lengthTypeBits, err)
		}
		p.DeclaredBitLength = int(n)
		window, err := r.Window(p.DeclaredBitLength)
		if err != nil {
			return fmt.Errorf("%w: sub-packet window of %d bits: %w", ErrTruncated, n, err)
		}
		p.Children, err = d.decodeWindow(window, depth+1)

		return err
	}

	p.Kind = KindOperatorCount
	n, err := r.Read(countBits)
	if err != nil {
		return fmt.Errorf("%w: sub-packet count at offset %d: %w", ErrTruncated, at+lengthTypeBits, err)
	}
	p.DeclaredCount = int(n)
	p.Children = make([]*Packet, 0, p.DeclaredCount)
	for i := 0; i < p.DeclaredCount; i++ {
		child, err := d.decode(r, depth+1)
		if err != nil {
			return err
		}
		if child.IsEnd() {
			return fmt.Errorf("%w: expected %d sub-packets, found %d", ErrTruncated, p.DeclaredCount, i)
		}
		p.Children = append(p.Children, child)
	}

	return nil
}

// decodeWindow decodes sub-packets until the window is exhausted.
// Fewer than a header's worth of leftover bits end the window quietly.
func (d *decoder) decodeWindow(w *bitstream.Reader, depth int) ([]*Packet, error) {
	var children []*Packet
	for w.Remaining() > 0 {
		child, err := d.decode(w, depth)
		if err != nil {
			return nil, err
		}
		if child.IsEnd() {
			break
		}
		children = append(children, child)
	}

	return children, nil
}
