package packet_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2021/bitstream"
	"github.com/katalvlaran/aoc2021/packet"
)

// wideTransmission builds an operator (length type 1) holding n copies of
// the literal 10, so decode cost scales with n.
func wideTransmission(b *testing.B, n int) *bitstream.Bitstream {
	b.Helper()
	var sb strings.Builder
	sb.WriteString("000000" + "1")
	for i := 10; i >= 0; i-- {
		sb.WriteByte('0' + byte((n>>i)&1))
	}
	sb.WriteString(strings.Repeat("11010001010", n))
	bs, err := bitstream.FromBinary(sb.String())
	if err != nil {
		b.Fatalf("FromBinary: %v", err)
	}

	return bs
}

// BenchmarkDecode_Wide decodes a sum of 2000 literals.
func BenchmarkDecode_Wide(b *testing.B) {
	bs := wideTransmission(b, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := packet.Decode(bs, 0); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_Wide evaluates the same 2000-operand sum.
func BenchmarkEvaluate_Wide(b *testing.B) {
	p, _, err := packet.Decode(wideTransmission(b, 2000), 0)
	if err != nil {
		b.Fatalf("Decode failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := packet.Evaluate(p); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}
