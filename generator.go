// Package objectid - generator.go implements the two ID generation strategies.
//
// # Process-Wide State
//
// Both strategies draw on a single lazily-initialized identity snapshot
// (machine hash, process discriminator, Strategy B random seed) plus one
// shared wrapping 24-bit counter. The snapshot is computed at most once,
// race-safely, via sync.Once; after that the hot path is a single atomic
// add plus pure value computation. No locks, no blocking I/O, no
// allocation per call.
//
// # Shared Counter
//
// The counter is deliberately shared between the two strategies: one
// monotonic source means two IDs minted in the same second can never
// collide in their low bytes, regardless of which strategy minted them.
// The counter wraps at 24 bits; within a single second a wrap can order a
// later ID before an earlier one, an accepted limitation of the format.

package objectid

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
)

// identity is the process-lifetime snapshot both strategies read from.
// Immutable after initIdentity runs.
type identity struct {
	machine uint32 // low 24 bits of the hostname hash
	process uint16 // low 16 bits of the pid
	random  uint64 // Strategy B process-stable 40-bit random value
}

var (
	procIdentity identity
	identityOnce sync.Once

	// counter is the shared 24-bit wrapping counter (stored in 32 bits,
	// masked to 24 on use). Seeded randomly at initialization so counter
	// sequences differ across process restarts within the same second.
	counter atomic.Uint32
)

// initIdentity computes the process identity exactly once.
//
// All inputs are read here, never in the generation hot path: the machine
// name and pid are process-stable, so re-reading them per call would only
// add syscalls.
func initIdentity() {
	machine := machineHash()
	process := processValue()

	// Strategy B seed mixes the clock with the machine and process
	// discriminators so concurrent processes on one host diverge even when
	// started in the same nanosecond window.
	seed := uint64(time.Now().UnixNano()) ^ uint64(machine) ^ uint64(process)
	random := rand.New(rand.NewSource(int64(seed))).Uint64() & MaxRandom

	counter.Store(randomSeed32())

	procIdentity = identity{
		machine: machine,
		process: process,
		random:  random,
	}
}

// machineHash returns the 24-bit machine discriminator: the low 24 bits of
// a fast non-cryptographic hash of the hostname.
//
// When the hostname cannot be read, a random substitute name is hashed
// instead. Generation stays total either way.
func machineHash() uint32 {
	name, err := os.Hostname()
	if err != nil || name == "" {
		var b [8]byte
		if _, rerr := crand.Read(b[:]); rerr == nil {
			name = string(b[:])
		}
	}
	return uint32(xxhash.Sum64String(name)) & MaxMachine
}

// processValue returns the 16-bit process discriminator: the low 16 bits
// of the OS process id.
//
// On platforms where the pid is unreadable the discriminator degrades to
// zero rather than failing; ID generation must never fail because of an
// unrelated OS permission issue.
func processValue() uint16 {
	return uint16(os.Getpid())
}

// randomSeed32 returns a random counter seed, falling back to the clock if
// the system entropy source is unavailable.
func randomSeed32() uint32 {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint32(b[:])
}

// nextCounter atomically advances the shared counter and returns its new
// value masked to 24 bits. Exactly one call per generated ID.
func nextCounter() uint32 {
	return counter.Add(1) & MaxCounter
}

// ============================================================================
// Strategy A: Machine/Process Based
// ============================================================================

// New generates an ObjectId from the current UTC time, the machine hash,
// the pid, and the shared counter.
//
// Safe for concurrent use; after one-time initialization each call is one
// clock read plus one atomic add, with no allocation.
//
// Example:
//
//	id := objectid.New()
//	fmt.Println(id.Hex())
func New() ID {
	return NewWithTimestamp(uint32(time.Now().Unix()))
}

// NewWithTime generates a Strategy A ObjectId using t in place of "now".
//
// t is floored to whole Unix seconds. Pre-epoch instants wrap; the format
// only represents seconds in [1970, 2106). The machine, process, and
// counter fields are derived from process state exactly as New does.
//
// Useful for deterministic generation in tests and for backfilling
// time-keyed data.
func NewWithTime(t time.Time) ID {
	return NewWithTimestamp(uint32(t.Unix()))
}

// NewWithTimestamp generates a Strategy A ObjectId with an explicit
// timestamp field (seconds since the Unix epoch).
func NewWithTimestamp(timestamp uint32) ID {
	identityOnce.Do(initIdentity)
	c := nextCounter()

	// machine(3) | process(2) | counter(3) packed across words 1 and 2.
	w1 := procIdentity.machine<<8 | uint32(procIdentity.process)>>8
	w2 := uint32(procIdentity.process&0xFF)<<24 | c
	return packWords(timestamp, w1, w2)
}

// NewBatch generates count Strategy A ObjectIds in one call.
//
// The counter advances once per ID, so a batch minted within one second
// carries strictly increasing counter fields (absent wraparound). Returns
// an empty slice for non-positive counts.
func NewBatch(count int) []ID {
	if count <= 0 {
		return []ID{}
	}
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = New()
	}
	return ids
}

// ============================================================================
// Strategy B: Randomized
// ============================================================================

// NewRandom generates an ObjectId in the randomized "classic" form:
// timestamp(4) | random high 32 bits (4) | random low 8 bits ++ counter(3).
//
// The 40-bit random value is computed once per process and cached; the
// counter is the same shared source Strategy A uses, so the two strategies
// never collide within a second on the counter bytes.
//
// Example:
//
//	id := objectid.NewRandom()
func NewRandom() ID {
	return NewRandomWithTimestamp(uint32(time.Now().Unix()))
}

// NewRandomWithTime generates a Strategy B ObjectId using t in place of
// "now", floored to whole Unix seconds.
func NewRandomWithTime(t time.Time) ID {
	return NewRandomWithTimestamp(uint32(t.Unix()))
}

// NewRandomWithTimestamp generates a Strategy B ObjectId with an explicit
// timestamp field.
func NewRandomWithTimestamp(timestamp uint32) ID {
	identityOnce.Do(initIdentity)
	c := nextCounter()

	w1 := uint32(procIdentity.random >> 8)
	w2 := uint32(procIdentity.random&0xFF)<<24 | c
	return packWords(timestamp, w1, w2)
}

// NewRandomBatch generates count Strategy B ObjectIds in one call.
func NewRandomBatch(count int) []ID {
	if count <= 0 {
		return []ID{}
	}
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = NewRandom()
	}
	return ids
}

// FromRandomParts constructs a Strategy B ObjectId from caller-supplied
// values instead of process state.
//
// This is the only generation entry point with input validation, because
// it accepts external values rather than internally-derived ones: random
// must fit in 40 bits and increment in 24, otherwise a RangeError
// (wrapping ErrOutOfRange) is returned.
//
// Useful for reconstructing IDs minted elsewhere and for interop tests
// against other implementations of the format.
func FromRandomParts(timestamp uint32, random uint64, increment uint32) (ID, error) {
	if random > MaxRandom {
		return Empty, newRangeError("random", int64(random), MaxRandom)
	}
	if increment > MaxCounter {
		return Empty, newRangeError("counter", int64(increment), MaxCounter)
	}

	w1 := uint32(random >> 8)
	w2 := uint32(random&0xFF)<<24 | increment
	return packWords(timestamp, w1, w2), nil
}
