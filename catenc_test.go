package catenc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/encoding"
	"github.com/arloliu/catenc/frame"
)

func createColourFrame(t *testing.T) (*frame.Frame, *frame.Series) {
	t.Helper()

	f, err := frame.New(
		frame.NewStringColumn("colour", []string{"blue", "red", "grey", "blue", "red", "red"}),
	)
	require.NoError(t, err)

	return f, frame.NewSeries("target", []float64{0.5, 0.8, 0.1, 0.6, 0.9, 0.7})
}

func TestNewOrderedEncoder(t *testing.T) {
	f, y := createColourFrame(t)

	enc, err := NewOrderedEncoder("colour")
	require.NoError(t, err)
	require.Equal(t, encoding.MethodOrdered, enc.Method())

	require.NoError(t, enc.Fit(f, y))
	codes, ok := enc.Mapping().Codes("colour")
	require.True(t, ok)
	require.Equal(t, map[string]int{"grey": 0, "blue": 1, "red": 2}, codes)
}

func TestNewArbitraryEncoder(t *testing.T) {
	f, _ := createColourFrame(t)

	enc, err := NewArbitraryEncoder("colour")
	require.NoError(t, err)
	require.Equal(t, encoding.MethodArbitrary, enc.Method())

	require.NoError(t, enc.Fit(f, nil))
	codes, ok := enc.Mapping().Codes("colour")
	require.True(t, ok)
	require.Equal(t, map[string]int{"blue": 0, "red": 1, "grey": 2}, codes)
}

func TestEncoderAutoResolution(t *testing.T) {
	f, err := frame.New(
		frame.NewStringColumn("colour", []string{"blue", "red"}),
		frame.NewFloatColumn("price", []float64{1, 2}),
	)
	require.NoError(t, err)

	enc, err := NewArbitraryEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.Fit(f, nil))
	require.Equal(t, []string{"colour"}, enc.Mapping().Columns())
}

func TestLoadEncoder(t *testing.T) {
	f, y := createColourFrame(t)

	enc, err := NewOrderedEncoder("colour")
	require.NoError(t, err)
	require.NoError(t, enc.Fit(f, y))

	var buf bytes.Buffer
	require.NoError(t, enc.Save(&buf))

	restored, err := LoadEncoder(&buf)
	require.NoError(t, err)
	require.True(t, restored.IsFitted())
	require.Equal(t, enc.Mapping().Fingerprint(), restored.Mapping().Fingerprint())
}

func TestLoadEncoderBadData(t *testing.T) {
	_, err := LoadEncoder(bytes.NewReader([]byte("not an encoder state")))
	require.Error(t, err)
}
