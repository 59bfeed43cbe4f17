package objectid

import "testing"

// TestLayoutConstants tests the derived field limits
func TestLayoutConstants(t *testing.T) {
	if RawLen != 12 {
		t.Errorf("RawLen = %d, want 12", RawLen)
	}
	if HexLen != 24 {
		t.Errorf("HexLen = %d, want 24", HexLen)
	}
	if TimestampBytes+MachineBytes+ProcessBytes+CounterBytes != RawLen {
		t.Error("field widths must sum to the raw length")
	}
	if MaxMachine != 0xFFFFFF {
		t.Errorf("MaxMachine = %#x, want 0xFFFFFF", MaxMachine)
	}
	if MaxCounter != 0xFFFFFF {
		t.Errorf("MaxCounter = %#x, want 0xFFFFFF", MaxCounter)
	}
	if MaxProcess != 0xFFFF {
		t.Errorf("MaxProcess = %#x, want 0xFFFF", MaxProcess)
	}
	if MaxRandom != 0xFF_FFFFFFFF {
		t.Errorf("MaxRandom = %#x, want 40 set bits", int64(MaxRandom))
	}
}

// TestPackWords tests big-endian word placement
func TestPackWords(t *testing.T) {
	id := packWords(0x00010203, 0x04050607, 0x08090A0B)
	for i := 0; i < RawLen; i++ {
		if id[i] != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, id[i], i)
		}
	}
}

// TestPackParts tests field placement against a hand-packed reference
func TestPackParts(t *testing.T) {
	id := packParts(0xA1B2C3D4, 0x112233, 0x4455, 0x667788)

	want := ID{0xA1, 0xB2, 0xC3, 0xD4, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	if id != want {
		t.Errorf("packParts() = %x, want %x", id[:], want[:])
	}
}

// TestPackEquivalence tests that the two packers agree where their inputs
// describe the same bit pattern
func TestPackEquivalence(t *testing.T) {
	const (
		ts      = uint32(0x65D4A8F0)
		machine = uint32(0xC3B2A1)
		process = uint16(0x9080)
		counter = uint32(0x7F6E5D)
	)

	fromParts := packParts(ts, machine, process, counter)
	fromWords := packWords(ts, machine<<8|uint32(process)>>8, uint32(process&0xFF)<<24|counter)

	if fromParts != fromWords {
		t.Errorf("packParts = %x, packWords = %x", fromParts[:], fromWords[:])
	}
}
