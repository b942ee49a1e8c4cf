package compress

// ZstdCompressor compresses payloads with Zstandard. It offers the best
// ratio of the built-in codecs and is the right choice for archived encoder
// state that is loaded rarely.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and a cgo binding to libzstd (build tag
// "cgozstd") for workloads where native speed matters.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
