// Package packet defines the packet tree, type IDs, options and sentinel
// errors shared by the decoder and the evaluator.
package packet

import (
	"errors"
	"fmt"
)

// Sentinel errors for decoding.
var (
	// ErrOffset indicates a decode offset outside the bitstream.
	ErrOffset = errors.New("packet: offset out of range")

	// ErrNoPacket indicates the input holds no decodable packet.
	ErrNoPacket = errors.New("packet: no packet in input")

	// ErrTruncated indicates a packet header was read but its body ran out of bits.
	ErrTruncated = errors.New("packet: truncated packet")

	// ErrLiteralOverflow indicates a literal value wider than 64 bits.
	ErrLiteralOverflow = errors.New("packet: literal exceeds 64 bits")

	// ErrDepthExceeded indicates nesting deeper than the configured MaxDepth.
	ErrDepthExceeded = errors.New("packet: maximum nesting depth exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("packet: invalid option supplied")
)

// Sentinel errors for evaluation.
var (
	// ErrEndPacket indicates evaluation reached an End packet, which denotes "no packet", not zero.
	ErrEndPacket = errors.New("packet: cannot evaluate end packet")

	// ErrMissingOperands indicates a comparison operator without exactly two sub-packets.
	ErrMissingOperands = errors.New("packet: comparison needs exactly two operands")

	// ErrEmptyOperands indicates a minimum/maximum operator without sub-packets.
	ErrEmptyOperands = errors.New("packet: minimum/maximum needs at least one operand")

	// ErrUnsupportedType indicates an operator type ID with no defined operation.
	ErrUnsupportedType = errors.New("packet: unsupported operator type")

	// ErrOverflow indicates a sum or product that does not fit in uint64.
	ErrOverflow = errors.New("packet: arithmetic overflow")
)

// Type IDs carried in the 3-bit type field.
const (
	TypeSum         uint8 = 0
	TypeProduct     uint8 = 1
	TypeMinimum     uint8 = 2
	TypeMaximum     uint8 = 3
	TypeLiteral     uint8 = 4
	TypeGreaterThan uint8 = 5
	TypeLessThan    uint8 = 6
	TypeEqualTo     uint8 = 7
)

// Field widths of the wire format, in bits.
const (
	versionBits    = 3
	typeBits       = 3
	headerBits     = versionBits + typeBits
	groupBits      = 5
	bitLengthBits  = 15
	countBits      = 11
	lengthTypeBits = 1
)

// Kind tags which variant of Packet is populated.
type Kind int

const (
	// KindEnd marks the absence of a packet: the bit range was exhausted.
	KindEnd Kind = iota

	// KindLiteral is a leaf carrying Value.
	KindLiteral

	// KindOperatorBits is an operator whose sub-packets fill DeclaredBitLength bits (length type 0).
	KindOperatorBits

	// KindOperatorCount is an operator with exactly DeclaredCount sub-packets (length type 1).
	KindOperatorCount
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end"
	case KindLiteral:
		return "literal"
	case KindOperatorBits:
		return "operator/bits"
	case KindOperatorCount:
		return "operator/count"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Packet is one decoded node of the packet tree.
//
// Which fields are meaningful depends on Kind:
//   - KindLiteral:       Version, Type, Value, BitsConsumed.
//   - KindOperatorBits:  Version, Type, DeclaredBitLength, BitsConsumed, Children.
//   - KindOperatorCount: Version, Type, DeclaredCount, BitsConsumed, Children.
//   - KindEnd:           nothing; BitsConsumed is 0.
//
// BitsConsumed covers the header, the body and every descendant.
type Packet struct {
	Kind              Kind
	Version           uint8
	Type              uint8
	Value             uint64
	DeclaredBitLength int
	DeclaredCount     int
	BitsConsumed      int
	Children          []*Packet
}

// IsEnd reports whether p is an End packet. A nil packet counts as End.
func (p *Packet) IsEnd() bool {
	return p == nil || p.Kind == KindEnd
}

// IsOperator reports whether p carries sub-packets.
func (p *Packet) IsOperator() bool {
	return p != nil && (p.Kind == KindOperatorBits || p.Kind == KindOperatorCount)
}

// Option configures decoding via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Decode.
type Option func(*Options)

// Options holds decoding parameters.
type Options struct {
	// MaxDepth, if > 0, rejects packets nested deeper than this (the outermost packet is depth 0).
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth limits how deeply sub-packets may nest.
//
//	d > 0:  packets deeper than d fail with ErrDepthExceeded
//	d == 0: no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
