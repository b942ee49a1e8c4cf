// Package format defines the shared wire-level constants for catenc fitted-state
// serialization: the compression type enum and the framed state layout.
package format

import "strings"

// CompressionType identifies the compression algorithm applied to a serialized
// fitted-state payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// CompressionFromString returns the CompressionType for a case-insensitive
// name. Returns CompressionType(0) for unknown names.
func CompressionFromString(name string) CompressionType {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone
	case "zstd":
		return CompressionZstd
	case "s2":
		return CompressionS2
	case "lz4":
		return CompressionLZ4
	default:
		return CompressionType(0)
	}
}

// Serialized fitted-state layout:
//
//	[0:4]   StateMagic (big-endian)
//	[4]     StateVersion
//	[5]     CompressionType
//	[6:14]  xxHash64 checksum of the compressed payload (little-endian)
//	[14:18] compressed payload length (little-endian uint32)
//	[18:]   compressed payload (gob-encoded mapping state)
const (
	// StateMagic marks the start of a serialized catenc fitted state ("CENC").
	StateMagic uint32 = 0x43454E43
	// StateVersion is the current serialization format version.
	StateVersion uint8 = 0x1
	// StateHeaderSize is the fixed size of the state header in bytes.
	StateHeaderSize = 18
)
