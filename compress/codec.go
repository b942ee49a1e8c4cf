package compress

import (
	"fmt"

	"github.com/arloliu/catenc/format"
)

// Compressor compresses a serialized fitted-state payload.
//
// Payloads are gob-encoded mapping state: small (hundreds of bytes to a few
// kilobytes), text-heavy, and highly repetitive, so even fast codecs achieve
// useful ratios.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers an original payload from its compressed form.
//
// Implementations validate the data format and return an error if the data
// is corrupted or was produced by an incompatible algorithm.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns an error for unrecognized types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
