package encoding

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/catenc/compress"
	"github.com/arloliu/catenc/endian"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/hash"
)

// mappingState is the gob form of a fitted encoder: the learned tables plus
// the configuration needed to reproduce the encoder's behavior.
type mappingState struct {
	Method  Method
	Columns []string
	Codes   map[string]map[string]int
	Rows    int
	Cols    int
}

// MarshalBinary serializes the fitted encoder state.
//
// The layout is a fixed header followed by a compressed gob payload: magic,
// format version, compression type, xxHash64 checksum of the compressed
// payload, payload length, payload. The checksum lets UnmarshalBinary reject
// corrupted state instead of feeding it to gob.
//
// Returns errs.ErrNotFitted if the encoder has no learned mapping.
func (e *OrdinalEncoder) MarshalBinary() ([]byte, error) {
	if e.mapping == nil {
		return nil, errs.ErrNotFitted
	}

	state := mappingState{
		Method:  e.cfg.method,
		Columns: e.mapping.columns,
		Codes:   e.mapping.codes,
		Rows:    e.mapping.rows,
		Cols:    e.mapping.cols,
	}

	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(state); err != nil {
		return nil, fmt.Errorf("encode mapping state: %w", err)
	}

	codec, err := compress.GetCodec(e.cfg.stateCompression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress mapping state: %w", err)
	}

	be := endian.GetBigEndianEngine()
	le := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, format.StateHeaderSize+len(compressed))
	buf = be.AppendUint32(buf, format.StateMagic)
	buf = append(buf, format.StateVersion, byte(e.cfg.stateCompression))
	buf = le.AppendUint64(buf, hash.Sum64(compressed))
	buf = le.AppendUint32(buf, uint32(len(compressed)))
	buf = append(buf, compressed...)

	return buf, nil
}

// UnmarshalBinary restores a fitted encoder from data produced by
// MarshalBinary. The restored encoder carries the serialized method and
// learned mapping; the state compression of the receiver is kept for future
// MarshalBinary calls.
//
// Returns errs.ErrInvalidStateData for truncated or foreign data,
// errs.ErrUnsupportedVersion for an unknown format version, and
// errs.ErrChecksumMismatch when the payload fails verification.
func (e *OrdinalEncoder) UnmarshalBinary(data []byte) error {
	if len(data) < format.StateHeaderSize {
		return fmt.Errorf("%w: %d bytes, need at least %d", errs.ErrInvalidStateData, len(data), format.StateHeaderSize)
	}

	be := endian.GetBigEndianEngine()
	le := endian.GetLittleEndianEngine()

	if magic := be.Uint32(data[0:4]); magic != format.StateMagic {
		return fmt.Errorf("%w: bad magic 0x%08x", errs.ErrInvalidStateData, magic)
	}
	if version := data[4]; version != format.StateVersion {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, version)
	}

	compression := format.CompressionType(data[5])
	checksum := le.Uint64(data[6:14])
	payloadLen := int(le.Uint32(data[14:18]))

	if len(data) != format.StateHeaderSize+payloadLen {
		return fmt.Errorf("%w: payload length %d, have %d bytes",
			errs.ErrInvalidStateData, payloadLen, len(data)-format.StateHeaderSize)
	}

	compressed := data[format.StateHeaderSize:]
	if hash.Sum64(compressed) != checksum {
		return errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidStateData, err)
	}
	payload, err := codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidStateData, err)
	}

	var state mappingState
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&state); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidStateData, err)
	}
	if !state.Method.IsValid() {
		return fmt.Errorf("%w: method %d", errs.ErrInvalidStateData, state.Method)
	}

	mapping := newMapping(state.Columns, state.Codes, state.Rows, state.Cols)
	if err := mapping.Validate(); err != nil {
		return err
	}

	e.cfg.method = state.Method
	e.mapping = mapping

	return nil
}

// Save writes the serialized fitted state to w.
func (e *OrdinalEncoder) Save(w io.Writer) error {
	data, err := e.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// Load restores the fitted state from r.
func (e *OrdinalEncoder) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return e.UnmarshalBinary(data)
}

// SaveFile writes the serialized fitted state to the named file.
func (e *OrdinalEncoder) SaveFile(path string) error {
	data, err := e.MarshalBinary()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadFile restores the fitted state from the named file.
func (e *OrdinalEncoder) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return e.UnmarshalBinary(data)
}
