// Package objectid - encoding.go implements the hexadecimal text codec.
//
// # Performance Optimizations
//
// The codec uses the same techniques as the binary layout:
//   - A fixed output length (24 chars) known at compile time, so encoding
//     performs exactly one allocation with exact capacity
//   - A pre-computed 256-byte lookup table for O(1) character-to-nibble
//     mapping during decoding
//
// # Canonical Form
//
// The ObjectId text form is exactly one rendering: 24 uppercase hex
// characters. Decoding is lenient about case; encoding never is.
//
// # Thread Safety
//
// All functions here are safe for concurrent use. The decode table is
// initialized once at package init time and read-only afterwards.

package objectid

import (
	"errors"
	"fmt"
)

// ErrInvalidHex is returned when parsing a string that is not a valid
// 24-character hexadecimal ObjectId rendering.
var ErrInvalidHex = errors.New("objectid: invalid hexadecimal encoding")

// Hex encoding uses uppercase characters: the canonical ObjectId rendering.
const encodeHexMap = "0123456789ABCDEF"

// decodeHexMap provides O(1) character-to-nibble lookups.
// Invalid characters are marked with 0xFF for fast validation.
var decodeHexMap [256]byte

func init() {
	for i := 0; i < 256; i++ {
		decodeHexMap[i] = 0xFF
	}
	for i := 0; i < len(encodeHexMap); i++ {
		decodeHexMap[encodeHexMap[i]] = byte(i)
	}
	// Accept lowercase input even though output is always uppercase
	for c := byte('a'); c <= 'f'; c++ {
		decodeHexMap[c] = c - 'a' + 10
	}
}

// encodeHex renders the 12 bytes as 24 uppercase hex characters.
//
// Performance: single 24-byte allocation, two table lookups per byte.
func encodeHex(id ID) string {
	b := make([]byte, HexLen)
	for i, c := range id {
		b[i*2] = encodeHexMap[c>>4]
		b[i*2+1] = encodeHexMap[c&0x0F]
	}
	return string(b)
}

// decodeHex parses a 24-character hex string into an ID.
//
// Length is validated first so arbitrarily long inputs fail in O(1);
// character validation uses the lookup table, one pair per output byte.
func decodeHex(s string) (ID, error) {
	if len(s) != HexLen {
		return Empty, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidHex, len(s), HexLen)
	}

	var id ID
	for i := 0; i < RawLen; i++ {
		hi := decodeHexMap[s[i*2]]
		lo := decodeHexMap[s[i*2+1]]
		if hi == 0xFF || lo == 0xFF {
			return Empty, fmt.Errorf("%w: invalid character at position %d", ErrInvalidHex, i*2)
		}
		id[i] = hi<<4 | lo
	}
	return id, nil
}
