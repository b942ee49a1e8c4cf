package encoding

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
)

func fittedEncoder(t *testing.T, opts ...Option) *OrdinalEncoder {
	t.Helper()

	f, err := frame.New(
		frame.NewStringColumn("colour", []string{"blue", "red", "grey", "blue", "red", "red"}),
	)
	require.NoError(t, err)
	y := frame.NewSeries("target", []float64{0.5, 0.8, 0.1, 0.6, 0.9, 0.7})

	enc, err := NewOrdinalEncoder(append([]Option{WithColumns("colour")}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, enc.Fit(f, y))

	return enc
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			enc := fittedEncoder(t, WithStateCompression(compression))

			data, err := enc.MarshalBinary()
			require.NoError(t, err)
			require.Greater(t, len(data), format.StateHeaderSize)

			restored, err := NewOrdinalEncoder()
			require.NoError(t, err)
			require.NoError(t, restored.UnmarshalBinary(data))

			require.True(t, restored.IsFitted())
			require.Equal(t, enc.Method(), restored.Method())
			require.Equal(t, enc.Mapping().Fingerprint(), restored.Mapping().Fingerprint())

			codes, ok := restored.Mapping().Codes("colour")
			require.True(t, ok)
			require.Equal(t, map[string]int{"grey": 0, "blue": 1, "red": 2}, codes)
		})
	}
}

func TestRestoredEncoderTransforms(t *testing.T) {
	enc := fittedEncoder(t)

	data, err := enc.MarshalBinary()
	require.NoError(t, err)

	restored, err := NewOrdinalEncoder()
	require.NoError(t, err)
	require.NoError(t, restored.UnmarshalBinary(data))

	test, err := frame.New(
		frame.NewStringColumn("colour", []string{"blue", "grey", "red"}),
	)
	require.NoError(t, err)

	encoded, err := restored.Transform(test)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 2}, intValues(t, encoded, "colour"))
}

func TestMarshalUnfitted(t *testing.T) {
	enc, err := NewOrdinalEncoder()
	require.NoError(t, err)

	_, err = enc.MarshalBinary()
	require.ErrorIs(t, err, errs.ErrNotFitted)
}

func TestUnmarshalRejectsBadData(t *testing.T) {
	enc := fittedEncoder(t)
	data, err := enc.MarshalBinary()
	require.NoError(t, err)

	t.Run("truncated header", func(t *testing.T) {
		restored, err := NewOrdinalEncoder()
		require.NoError(t, err)
		require.ErrorIs(t, restored.UnmarshalBinary(data[:10]), errs.ErrInvalidStateData)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupt := bytes.Clone(data)
		corrupt[0] ^= 0xFF

		restored, err := NewOrdinalEncoder()
		require.NoError(t, err)
		require.ErrorIs(t, restored.UnmarshalBinary(corrupt), errs.ErrInvalidStateData)
	})

	t.Run("unknown version", func(t *testing.T) {
		corrupt := bytes.Clone(data)
		corrupt[4] = 0x7F

		restored, err := NewOrdinalEncoder()
		require.NoError(t, err)
		require.ErrorIs(t, restored.UnmarshalBinary(corrupt), errs.ErrUnsupportedVersion)
	})

	t.Run("corrupted payload fails checksum", func(t *testing.T) {
		corrupt := bytes.Clone(data)
		corrupt[len(corrupt)-1] ^= 0xFF

		restored, err := NewOrdinalEncoder()
		require.NoError(t, err)
		require.ErrorIs(t, restored.UnmarshalBinary(corrupt), errs.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		restored, err := NewOrdinalEncoder()
		require.NoError(t, err)
		require.ErrorIs(t, restored.UnmarshalBinary(data[:len(data)-3]), errs.ErrInvalidStateData)
	})
}

func TestSaveLoad(t *testing.T) {
	enc := fittedEncoder(t)

	var buf bytes.Buffer
	require.NoError(t, enc.Save(&buf))

	restored, err := NewOrdinalEncoder()
	require.NoError(t, err)
	require.NoError(t, restored.Load(&buf))
	require.Equal(t, enc.Mapping().Fingerprint(), restored.Mapping().Fingerprint())
}

func TestSaveLoadFile(t *testing.T) {
	enc := fittedEncoder(t)
	path := filepath.Join(t.TempDir(), "colour.enc")

	require.NoError(t, enc.SaveFile(path))

	restored, err := NewOrdinalEncoder()
	require.NoError(t, err)
	require.NoError(t, restored.LoadFile(path))
	require.Equal(t, enc.Mapping().Fingerprint(), restored.Mapping().Fingerprint())
}

func TestLoadFileMissing(t *testing.T) {
	enc, err := NewOrdinalEncoder()
	require.NoError(t, err)
	require.Error(t, enc.LoadFile(filepath.Join(t.TempDir(), "missing.enc")))
}
