// Package packet decodes the hierarchical BITS transmission format into a
// typed packet tree and evaluates that tree as an arithmetic expression.
//
// What
//
//   - Every packet starts with a 3-bit version and a 3-bit type ID.
//   - Type 4 is a literal: 5-bit groups, the leading bit of each group flags
//     whether another group follows, the low 4 bits are appended MSB-first.
//   - Any other type is an operator, followed by a 1-bit length type ID:
//   - 0: a 15-bit total length in bits; sub-packets fill exactly that window.
//   - 1: an 11-bit count; exactly that many sub-packets follow back-to-back.
//   - Decode reports BitsConsumed for every packet (header, body and all
//     descendants), so a caller can resume at the next sibling.
//   - When fewer than 6 bits remain no header can be formed and Decode returns
//     an End packet instead of an error. Trailing hex padding is therefore
//     never a failure.
//
// Evaluation
//
//	type 0  sum          any number of operands
//	type 1  product      any number of operands
//	type 2  minimum      at least one operand
//	type 3  maximum      at least one operand
//	type 5  greater than exactly two operands (1 or 0)
//	type 6  less than    exactly two operands (1 or 0)
//	type 7  equal to     exactly two operands (1 or 0)
//
// Complexity (N = bits in the transmission, P = packets)
//
//   - Decode:     O(N) time, O(P) memory, recursion depth = nesting depth.
//   - VersionSum: O(P).
//   - Evaluate:   O(P).
//
// Usage
//
//	p, err := packet.DecodeHex("9C0141080250320F1802104A08")
//	if err != nil {
//		// ErrNoPacket, ErrTruncated, ErrLiteralOverflow, bitstream.ErrInvalidHex ...
//	}
//	fmt.Println(packet.VersionSum(p))
//	v, err := packet.Evaluate(p) // 1
//
// Errors
//
//   - ErrOffset            decode offset outside the stream.
//   - ErrNoPacket          DecodeHex found no packet at all.
//   - ErrTruncated         a header was read but the body ran out of bits.
//   - ErrLiteralOverflow   a literal wider than 64 bits.
//   - ErrDepthExceeded     nesting deeper than WithMaxDepth allows.
//   - ErrOptionViolation   invalid Option.
//   - ErrEndPacket         Evaluate reached an End packet.
//   - ErrMissingOperands   comparison without exactly two sub-packets.
//   - ErrEmptyOperands     minimum/maximum without sub-packets.
//   - ErrUnsupportedType   operator type outside {0,1,2,3,5,6,7}.
//   - ErrOverflow          sum or product exceeding uint64.
package packet
