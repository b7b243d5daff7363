// Package aoc2021 collects small, well-tested solvers for Advent of Code 2021
// puzzles, built as reusable libraries rather than one-off scripts.
//
// 🚀 What is in here?
//
//	• bitstream: hex → MSB-first bit expansion with bounded cursor windows
//	• packet:    BITS transmission decoder (literals, operators, evaluation)
//	• snailfish: immutable snailfish-number arithmetic (explode, split, reduce)
//
// ✨ Why structure it this way?
//
//   - Each algorithm lives in its own flat package with doc.go, types.go,
//     tests, runnable examples and benchmarks.
//   - Libraries never log and never panic on bad input: they return
//     package-prefixed sentinel errors that callers match with errors.Is.
//   - Trees and bitstreams are immutable, so the same input can be reused
//     concurrently (see snailfish.MaxPairwiseMagnitude).
//
// Layout:
//
//	bitstream/         — Bitstream, Reader, Window
//	packet/            — Decode, DecodeAll, VersionSum, Evaluate, Walk
//	snailfish/         — Parse, Add, Reduce, Magnitude, MaxPairwiseMagnitude
//	internal/config/   — optional aoc2021.yaml (inputs, workers, log level)
//	internal/puzzle/   — day registry and the day 16 / day 18 solvers
//	cmd/aoc2021/       — cobra CLI: aoc2021 <day|all>, aoc2021 list
//
// Quick example:
//
//	p, _ := packet.DecodeHex("C200B40A82")
//	v, _ := packet.Evaluate(p) // 3
//
//	a, _ := snailfish.Parse("[[[[4,3],4],4],[7,[[8,4],9]]]")
//	b, _ := snailfish.Parse("[1,1]")
//	snailfish.Add(a, b)        // [[[[0,7],4],[[7,8],[6,0]]],[8,1]]
//
//	go run ./cmd/aoc2021 all
package aoc2021
