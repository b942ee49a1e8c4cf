// Package hash provides the xxHash64 helpers used for mapping fingerprints
// and fitted-state payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 accumulator, used to fingerprint a learned
// mapping without materializing a canonical byte form.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates a new streaming accumulator.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString folds s into the digest.
func (h *Digest) WriteString(s string) {
	_, _ = h.d.WriteString(s)
}

// WriteUint64 folds v into the digest in little-endian byte order.
func (h *Digest) WriteUint64(v uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = h.d.Write(buf[:])
}

// Sum64 returns the accumulated hash.
func (h *Digest) Sum64() uint64 {
	return h.d.Sum64()
}
