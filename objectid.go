// Package objectid provides a compact, globally-orderable 12-byte unique
// identifier in the classic document-database ObjectId format.
//
// # Overview
//
// ObjectIds are 96-bit values that are:
//   - Sortable by creation time (the leading bytes are a Unix-second timestamp)
//   - Unique within a process without coordination (time + machine + process + counter)
//   - Generated lock-free (one atomic add per ID after one-time initialization)
//   - Bit-exact compatible with the classic wire format
//
// # ID Structure (12 bytes)
//
//	┌──────────────────┬───────────────┬────────────┬───────────────┐
//	│ 4 bytes:         │ 3 bytes:      │ 2 bytes:   │ 3 bytes:      │
//	│ Timestamp        │ Machine       │ Process    │ Counter       │
//	│ (Unix seconds)   │ (hash, 24bit) │ (pid low)  │ (wrapping)    │
//	└──────────────────┴───────────────┴────────────┴───────────────┘
//
// All fields are big-endian, so lexicographic comparison of the raw bytes
// orders first by timestamp, then machine, then process, then counter.
//
// # Generation Strategies
//
// Two independent strategies share one process-wide wrapping 24-bit counter:
//   - New (machine/process based): embeds a hash of the hostname and the
//     low 16 bits of the pid, per the classic layout above.
//   - NewRandom (randomized): replaces machine+process with a process-stable
//     40-bit random value, split as 32 high bits plus 8 low bits prefixed to
//     the counter.
//
// Sharing the counter means a single monotonic source disambiguates IDs
// generated within the same second regardless of which strategy produced them.
//
// # Usage
//
//	id := objectid.New()
//	fmt.Println(id.Hex())     // "65D4A8F0C3B2A190807F6E5D"
//	fmt.Println(id.Time())    // creation time, second precision
//
//	// Deterministic generation for tests
//	id = objectid.NewWithTimestamp(0x65D4A8F0)
//
// ObjectIds are not secrets: the format is predictable by design and must
// not be used where cryptographic unpredictability is required.
package objectid

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"time"
)

// ID is an immutable 12-byte ObjectId.
//
// The zero value is Empty. IDs have value semantics: they are comparable
// with ==, usable as map keys, and carry no identity beyond their bits.
//
// # Interface Implementations
//
//   - fmt.Stringer: canonical 24-char uppercase hex
//   - json.Marshaler/Unmarshaler: hex string
//   - encoding.TextMarshaler/Unmarshaler: hex string (YAML, XML, TOML)
//   - encoding.BinaryMarshaler/Unmarshaler: raw 12 bytes
//   - sql.Scanner/driver.Valuer: hex TEXT columns (raw 12-byte BLOBs
//     accepted on scan)
type ID [RawLen]byte

// Sentinel values. Empty and Min are the all-zero ID; Max is all one-bits.
// Min and Max serve as inclusive bounds for range scans in consuming systems.
var (
	Empty ID
	Min   ID
	Max   = ID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
)

// ============================================================================
// Constructors
// ============================================================================

// FromBytes constructs an ID from exactly 12 raw bytes.
//
// The bytes are copied bit-for-bit with no validation of field ranges: once
// assembled, the encoding is opaque. Inputs of any other length are rejected
// with a LengthError (wrapping ErrInvalidLength), never truncated or padded.
//
// Example:
//
//	id, err := objectid.FromBytes(row[:12])
func FromBytes(b []byte) (ID, error) {
	if len(b) != RawLen {
		return Empty, newLengthError(len(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// FromParts constructs an ID from its four fields.
//
// machine and counter must fit in 24 bits; values outside that range are
// rejected with a RangeError (wrapping ErrOutOfRange). timestamp and process
// cover their full type ranges and cannot be rejected.
//
// Example:
//
//	id, err := objectid.FromParts(ts, machine, pid, counter)
func FromParts(timestamp uint32, machine uint32, process uint16, counter uint32) (ID, error) {
	if machine > MaxMachine {
		return Empty, newRangeError("machine", int64(machine), MaxMachine)
	}
	if counter > MaxCounter {
		return Empty, newRangeError("counter", int64(counter), MaxCounter)
	}
	return packParts(timestamp, machine, process, counter), nil
}

// FromTime constructs an ID whose timestamp field is t and whose remaining
// fields are zero.
//
// The conversion floors t to whole Unix seconds (UTC); fractional seconds
// are discarded, not rounded. Instants outside the representable unsigned
// 32-bit second range [1970, 2106) are rejected with a RangeError.
//
// The result is useful as a range-scan boundary: all IDs generated during
// second s sort at or after FromTime of s.
func FromTime(t time.Time) (ID, error) {
	sec := t.Unix()
	if sec < 0 || sec > int64(^uint32(0)) {
		return Empty, newRangeError("timestamp", sec, int64(^uint32(0)))
	}
	return packWords(uint32(sec), 0, 0), nil
}

// FromWordsUnchecked constructs an ID from three big-endian 32-bit words
// written directly across the 12 bytes, with no range checks.
//
// This is the permissive composite constructor: it cannot fail, and it is
// the caller's responsibility that the words encode valid field patterns.
// Generators use it after composing bits internally. Prefer FromParts
// wherever the inputs are not already known-valid.
func FromWordsUnchecked(timestamp, machineProcess, processCounter uint32) ID {
	return packWords(timestamp, machineProcess, processCounter)
}

// ============================================================================
// Field Accessors
// ============================================================================

// Timestamp returns the timestamp field: seconds since the Unix epoch.
func (id ID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(id[timestampOff : timestampOff+TimestampBytes])
}

// Time returns the timestamp field as a time.Time in UTC (second precision).
func (id ID) Time() time.Time {
	return time.Unix(int64(id.Timestamp()), 0).UTC()
}

// Machine returns the 24-bit machine discriminator.
func (id ID) Machine() uint32 {
	return uint32(id[machineOff])<<16 | uint32(id[machineOff+1])<<8 | uint32(id[machineOff+2])
}

// Process returns the 16-bit process discriminator.
func (id ID) Process() uint16 {
	return binary.BigEndian.Uint16(id[processOff : processOff+ProcessBytes])
}

// Counter returns the 24-bit counter field.
func (id ID) Counter() uint32 {
	return uint32(id[counterOff])<<16 | uint32(id[counterOff+1])<<8 | uint32(id[counterOff+2])
}

// Parts returns all four fields at once.
//
// More convenient than calling the individual accessors when inspecting or
// logging an ID.
func (id ID) Parts() (timestamp uint32, machine uint32, process uint16, counter uint32) {
	return id.Timestamp(), id.Machine(), id.Process(), id.Counter()
}

// IsEmpty reports whether id is the all-zero Empty value.
func (id ID) IsEmpty() bool {
	return id == Empty
}

// ============================================================================
// Ordering, Equality, Hashing
// ============================================================================

// Compare returns the ordering of two IDs.
//
// The comparison is lexicographic over the 12 raw bytes. Because every field
// is big-endian this equals ordering by timestamp, then machine, then
// process, then counter, each as an unsigned integer.
//
// Returns:
//   - -1 if id sorts before other
//   - 0 if the IDs are equal
//   - 1 if id sorts after other
//
// Note: a counter that wrapped within one second compares less than an
// earlier ID from the same second. This ambiguity is inherent to the format
// and deliberately not repaired.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether id sorts strictly before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// Before reports whether id was generated before other.
//
// Since IDs are time-prefixed, this is equivalent to Less.
func (id ID) Before(other ID) bool {
	return id.Less(other)
}

// After reports whether id was generated after other.
func (id ID) After(other ID) bool {
	return id.Compare(other) > 0
}

// Equal reports whether two IDs are exactly equal.
//
// Equivalent to id == other; provided for symmetry with Compare.
func (id ID) Equal(other ID) bool {
	return id == other
}

// Hash returns a 32-bit hash of the ID, computed as the XOR of the three
// big-endian 32-bit words of the 12 bytes.
//
// Equal IDs hash equal. O(1), no allocation.
func (id ID) Hash() uint32 {
	return binary.BigEndian.Uint32(id[0:4]) ^
		binary.BigEndian.Uint32(id[4:8]) ^
		binary.BigEndian.Uint32(id[8:12])
}

// ============================================================================
// Conversions
// ============================================================================

// Bytes returns an owned copy of the 12 raw bytes.
func (id ID) Bytes() [RawLen]byte {
	return id
}

// CopyTo writes the 12 raw bytes into dst without allocating.
//
// Returns false, writing nothing, if dst is shorter than 12 bytes. This
// path never panics.
func (id ID) CopyTo(dst []byte) bool {
	if len(dst) < RawLen {
		return false
	}
	copy(dst, id[:])
	return true
}

// Hex returns the canonical text form: 24 uppercase hexadecimal characters.
//
// This is the only text rendering of an ObjectId; there is no lowercase or
// delimited variant.
//
// Example:
//
//	objectid.Max.Hex() // "FFFFFFFFFFFFFFFFFFFFFFFF"
func (id ID) Hex() string {
	return encodeHex(id)
}

// String returns the canonical hex form. Implements fmt.Stringer.
func (id ID) String() string {
	return id.Hex()
}

// ParseHex parses a 24-character hexadecimal string into an ID.
//
// Input may be upper or lower case; the canonical rendering is uppercase.
// Inputs of any other length are rejected with a LengthError, invalid
// characters with ErrInvalidHex.
//
// Example:
//
//	id, err := objectid.ParseHex("65D4A8F0C3B2A190807F6E5D")
func ParseHex(s string) (ID, error) {
	return decodeHex(s)
}

// ============================================================================
// JSON / Text / Binary Marshaling
// ============================================================================

// MarshalJSON implements json.Marshaler.
//
// The ID marshals as its hex string. Hex is safe in every JSON consumer
// (no 53-bit integer precision concerns) and round-trips exactly.
//
// Example:
//
//	type Document struct {
//	    ID objectid.ID `json:"id"`
//	}
//	// Marshals as: {"id": "65D4A8F0C3B2A190807F6E5D"}
func (id ID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, HexLen+2)
	b = append(b, '"')
	b = append(b, id.Hex()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Accepts a quoted hex string (either case) or JSON null, which leaves the
// ID untouched.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("objectid: invalid JSON value: %s", string(data))
	}
	parsed, err := ParseHex(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
//
// Returns the hex form for use in text-based formats like XML, YAML, TOML.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// Returns the raw 12 bytes, the most compact representation for binary
// protocols and formats like gob, MessagePack, or CBOR.
func (id ID) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), id[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Requires exactly 12 bytes; anything else is a LengthError.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ============================================================================
// SQL Database Integration
// ============================================================================

// Scan implements sql.Scanner for reading from a database.
//
// Supported source types:
//   - string: 24-char hex (from TEXT/VARCHAR columns)
//   - []byte: raw 12 bytes (BLOB columns) or 24-char hex
//   - nil: scanned as Empty
//
// Example:
//
//	var id objectid.ID
//	err := db.QueryRow("SELECT id FROM documents WHERE name = ?", name).Scan(&id)
func (id *ID) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*id = Empty
		return nil
	case string:
		parsed, err := ParseHex(v)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(v) == RawLen {
			copy(id[:], v)
			return nil
		}
		parsed, err := ParseHex(string(v))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("objectid: cannot scan %T into ID", value)
	}
}

// Value implements driver.Valuer for writing to a database.
//
// Returns the hex string, which sorts identically to the raw bytes in any
// collation that orders ASCII, keeping time-ordering intact in TEXT columns.
//
// Recommended schema:
//
//	CREATE TABLE documents (id TEXT PRIMARY KEY CHECK (length(id) = 24), ...);
func (id ID) Value() (driver.Value, error) {
	return id.Hex(), nil
}
