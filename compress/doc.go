// Package compress provides the compression codecs catenc applies to
// serialized fitted-state payloads.
//
// Fitted encoder state is gob-encoded and then compressed as a whole before
// being framed with a checksum (see the encoding package). The codec is
// selected with format.CompressionType:
//
//   - None: no compression, fastest, payload stored verbatim
//   - Zstd: best ratio, right for archived state
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, right for state loaded on every start
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec maps a format.CompressionType to its built-in Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(payload)
//
// # Zstd implementations
//
// The Zstd codec has a pure-Go implementation (default) and a cgo libzstd
// binding selected with the "cgozstd" build tag. Both read each other's
// output; the tag only trades build portability for native throughput.
//
// All codecs are stateless or internally pooled and safe for concurrent use.
package compress
