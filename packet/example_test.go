package packet_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/packet"
)

// ExampleDecodeHex decodes an operator packet and prints its tree.
func ExampleDecodeHex() {
	p, err := packet.DecodeHex("38006F45291200")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println("bits:", p.BitsConsumed, "version sum:", packet.VersionSum(p))
	// Output:
	// v1 lt[v6 literal(10), v2 literal(20)]
	// bits: 49 version sum: 9
}

// ExampleEvaluate evaluates "1 + 3 == 2 * 2".
func ExampleEvaluate() {
	p, err := packet.DecodeHex("9C0141080250320F1802104A08")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, err := packet.Evaluate(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output:
	// 1
}
