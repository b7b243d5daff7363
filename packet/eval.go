package packet

import (
	"fmt"
	"math/bits"
)

// Evaluate computes the value of the expression rooted at p.
// Literals yield their value; operators combine their sub-packets,
// evaluated depth-first in order, according to their type ID.
// Failures are wrapped with the path of the offending packet
// ("$" is the root, "$.1.0" its second child's first child).
func Evaluate(p *Packet) (uint64, error) {
	return evaluate(p, "$")
}

func evaluate(p *Packet, path string) (uint64, error) {
	if p.IsEnd() {
		return 0, fmt.Errorf("%w at %s", ErrEndPacket, path)
	}
	if p.Kind == KindLiteral {
		return p.Value, nil
	}

	// arity is checked before any operand is evaluated
	switch p.Type {
	case TypeMinimum, TypeMaximum:
		if len(p.Children) == 0 {
			return 0, fmt.Errorf("%w: type %d at %s", ErrEmptyOperands, p.Type, path)
		}
	case TypeGreaterThan, TypeLessThan, TypeEqualTo:
		if len(p.Children) != 2 {
			return 0, fmt.Errorf("%w: type %d at %s has %d", ErrMissingOperands, p.Type, path, len(p.Children))
		}
	case TypeSum, TypeProduct:
	default:
		return 0, fmt.Errorf("%w: type %d at %s", ErrUnsupportedType, p.Type, path)
	}

	operands := make([]uint64, len(p.Children))
	for i, child := range p.Children {
		v, err := evaluate(child, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return 0, err
		}
		operands[i] = v
	}

	switch p.Type {
	case TypeSum:
		var acc, carry uint64
		for _, v := range operands {
			acc, carry = bits.Add64(acc, v, 0)
			if carry != 0 {
				return 0, fmt.Errorf("%w: sum at %s", ErrOverflow, path)
			}
		}
		return acc, nil
	case TypeProduct:
		acc := uint64(1)
		for _, v := range operands {
			var hi uint64
			hi, acc = bits.Mul64(acc, v)
			if hi != 0 {
				return 0, fmt.Errorf("%w: product at %s", ErrOverflow, path)
			}
		}
		return acc, nil
	case TypeMinimum:
		lowest := operands[0]
		for _, v := range operands[1:] {
			lowest = min(lowest, v)
		}
		return lowest, nil
	case TypeMaximum:
		highest := operands[0]
		for _, v := range operands[1:] {
			highest = max(highest, v)
		}
		return highest, nil
	case TypeGreaterThan:
		return boolValue(operands[0] > operands[1]), nil
	case TypeLessThan:
		return boolValue(operands[0] < operands[1]), nil
	default: // TypeEqualTo
		return boolValue(operands[0] == operands[1]), nil
	}
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
