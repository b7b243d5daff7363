// Package bitstream expands hexadecimal transmissions into an immutable
// sequence of bits and reads fixed-width fields from it with a cursor.
//
// What:
//
//   - Bitstream stores bits MSB-first, packed eight per byte.
//   - FromHex expands every hex digit into exactly 4 bits (most significant first).
//   - FromBinary builds a stream from a literal "0101…" layout (handy in tests).
//   - Reader walks the stream left to right, reading up to 64 bits at a time.
//   - Reader.Window carves out a bounded sub-reader, so nested decoders can
//     never read past a length their parent declared.
//
// Why:
//
//   - Sub-byte packet formats (3-bit versions, 15-bit lengths, 5-bit groups)
//     are naturally expressed as "read n bits at the cursor" rather than
//     byte-oriented parsing.
//
// Complexity:
//
//   - FromHex / FromBinary: O(N) time and O(N/8) memory.
//   - Reader.Read(n):       O(n).
//   - Reader.Window(n):     O(1).
//
// Errors:
//
//   - ErrInvalidHex:    empty input or a non-hex character.
//   - ErrInvalidBinary: empty input or a character other than '0'/'1'.
//   - ErrWidth:         a field wider than 64 bits or a negative width.
//   - ErrShortRead:     fewer bits remain than requested.
//   - ErrOutOfRange:    an offset outside the stream.
package bitstream
