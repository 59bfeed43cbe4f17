// Package objectid - layout.go defines the fixed byte layout of an ObjectId.
//
// Unlike integer-packed ID schemes, the ObjectId layout is part of the wire
// contract: the 12 bytes ARE the identifier, and every field is stored
// big-endian so that lexicographic byte comparison equals numeric field
// comparison. The layout is therefore fixed and not configurable.

package objectid

// ID structure (12 bytes, big-endian, no padding):
//
//	┌──────────────────┬───────────────┬────────────┬───────────────┐
//	│ 4 bytes:         │ 3 bytes:      │ 2 bytes:   │ 3 bytes:      │
//	│ Timestamp        │ Machine       │ Process    │ Counter       │
//	│ (Unix seconds)   │ (hash, 24bit) │ (pid low)  │ (wrapping)    │
//	└──────────────────┴───────────────┴────────────┴───────────────┘
//	 0              3   4           6   7        8   9           11
const (
	// RawLen is the exact size of an ObjectId in bytes.
	// No other in-memory or wire representation is valid.
	RawLen = 12

	// HexLen is the length of the canonical hex rendering (2 chars per byte).
	HexLen = RawLen * 2

	// Field widths in bytes.
	TimestampBytes = 4
	MachineBytes   = 3
	ProcessBytes   = 2
	CounterBytes   = 3

	// Byte offsets of each field within the 12-byte array.
	timestampOff = 0
	machineOff   = 4
	processOff   = 7
	counterOff   = 9

	// MaxMachine is the largest machine discriminator (24 bits).
	// Calculated as: 1<<24 - 1 = 0xFFFFFF = 16,777,215
	MaxMachine = 1<<(MachineBytes*8) - 1

	// MaxCounter is the largest counter value (24 bits) before wraparound.
	MaxCounter = 1<<(CounterBytes*8) - 1

	// MaxProcess is the largest process discriminator (16 bits).
	// uint16 covers the full range, so constructors taking uint16 cannot
	// receive an out-of-range process value.
	MaxProcess = 1<<(ProcessBytes*8) - 1

	// MaxRandom is the largest Strategy B random value (40 bits, 5 bytes).
	MaxRandom = 1<<40 - 1
)

// packWords writes three big-endian 32-bit words across the 12 bytes.
//
// This is the shared fast path used by both generation strategies and the
// unchecked composite constructor. It performs no range checks: callers
// must have composed valid bit patterns already.
func packWords(w0, w1, w2 uint32) ID {
	return ID{
		byte(w0 >> 24), byte(w0 >> 16), byte(w0 >> 8), byte(w0),
		byte(w1 >> 24), byte(w1 >> 16), byte(w1 >> 8), byte(w1),
		byte(w2 >> 24), byte(w2 >> 16), byte(w2 >> 8), byte(w2),
	}
}

// packParts assembles the four fields into the 12-byte layout.
//
// machine and counter must already fit in 24 bits; the validating
// constructor FromParts enforces that before calling here.
func packParts(timestamp uint32, machine uint32, process uint16, counter uint32) ID {
	return ID{
		byte(timestamp >> 24), byte(timestamp >> 16), byte(timestamp >> 8), byte(timestamp),
		byte(machine >> 16), byte(machine >> 8), byte(machine),
		byte(process >> 8), byte(process),
		byte(counter >> 16), byte(counter >> 8), byte(counter),
	}
}
