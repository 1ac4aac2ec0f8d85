package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/texpr/internal/eval"
	"github.com/born-ml/texpr/internal/lazy"
	"github.com/born-ml/texpr/internal/logging"
	"github.com/born-ml/texpr/internal/tensor"
)

func TestLayouts(t *testing.T) {
	dims := []int{2, 3}
	assert.Equal(t, 0, ColumnMajor.Offset(dims, []int{0, 0}))
	assert.Equal(t, 1, ColumnMajor.Offset(dims, []int{1, 0}))
	assert.Equal(t, 2, ColumnMajor.Offset(dims, []int{0, 1}))
	assert.Equal(t, 5, ColumnMajor.Offset(dims, []int{1, 2}))
	assert.Equal(t, 3, RowMajor.Offset(dims, []int{1, 0}))
	assert.Equal(t, 0, ColumnMajor.Offset(nil, nil))
}

func TestMaterializeColumnMajor(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Static(2, 3), true)
	require.NoError(t, err)

	a := Materialize[float64](x, nil)
	assert.Equal(t, Double, a.Class)
	assert.False(t, a.Complex)
	assert.Equal(t, []int{2, 3}, a.Dims)
	assert.Equal(t, 6, a.NumElements())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, a.Float64s())
	assert.Nil(t, a.Imag64s())

	r := Materialize[float64](x, RowMajor)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, r.Float64s())
}

func TestMaterializeSparseAndLazy(t *testing.T) {
	a := Materialize[int16](lazy.Eye[int16](3, 3), ColumnMajor)
	assert.Equal(t, Int16, a.Class)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, a.Float64s())

	grid := lazy.Meshgrid[uint32](2, 2)[1]
	assert.Equal(t, []float64{0, 0, 1, 1}, Materialize[uint32](grid, nil).Float64s())
}

func TestMaterializeComplex(t *testing.T) {
	z, err := tensor.FromSlice([]complex64{1 + 2i, 3 - 4i}, tensor.Static(2), false)
	require.NoError(t, err)
	a := Materialize[complex64](z, nil)
	assert.Equal(t, Single, a.Class)
	assert.True(t, a.Complex)
	assert.Equal(t, []float64{1, 3}, a.Float64s())
	assert.Equal(t, []float64{2, -4}, a.Imag64s())
}

func TestMaterializeMask(t *testing.T) {
	x, _ := tensor.FromSlice([]int{0, 5, -1, 0}, tensor.Static(2, 2), true)
	a := MaterializeMask[int](x, nil)
	assert.Equal(t, Logical, a.Class)
	assert.Equal(t, []float64{0, 1, 1, 0}, a.Float64s())
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		dt      tensor.DataType
		class   Class
		complex bool
	}{
		{tensor.Float64, Double, false},
		{tensor.Float32, Single, false},
		{tensor.Int, Int64, false},
		{tensor.Int8, Int8, false},
		{tensor.Uint64, Uint64, false},
		{tensor.Complex128, Double, true},
	}
	for _, tt := range tests {
		c, cplx := ClassOf(tt.dt)
		assert.Equal(t, tt.class, c, tt.dt.String())
		assert.Equal(t, tt.complex, cplx, tt.dt.String())
	}
	assert.Equal(t, 1, Logical.Size())
	assert.Equal(t, 8, Double.Size())
	assert.Equal(t, "uint16", Uint16.String())
}

func TestToTensorRoundTrip(t *testing.T) {
	x, _ := tensor.FromSlice([]int32{1, -2, 0, 4, 5, 0}, tensor.Static(3, 2), true)
	a := Materialize[int32](x, nil)

	back, err := ToTensor[int32](a, nil, false)
	require.NoError(t, err)
	assert.True(t, back.IsSparse())
	assert.True(t, eval.Equal[int32](x, back))

	_, err = ToTensor[float64](a, nil, true)
	assert.ErrorIs(t, err, ErrClassMismatch)
}

func TestCodecRoundTrip(t *testing.T) {
	x := eval.Dense[float64](lazy.Add[float64](lazy.Eye[float64](16, 16), lazy.Iota[float64](tensor.Dynamic(16, 16))))
	z, _ := tensor.FromSlice([]complex128{1i, 2, 3 + 3i}, tensor.Static(3), true)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			for _, a := range []*Array{Materialize[float64](x, nil), Materialize[complex128](z, nil)} {
				var buf bytes.Buffer
				require.NoError(t, Encode(&buf, a, c, WithMetadata(map[string]string{"name": "x"})))

				got, header, err := Decode(&buf)
				require.NoError(t, err)
				assert.Equal(t, a.Class, got.Class)
				assert.Equal(t, a.Complex, got.Complex)
				assert.Equal(t, a.Dims, got.Dims)
				assert.Equal(t, a.Float64s(), got.Float64s())
				assert.Equal(t, a.Imag64s(), got.Imag64s())
				assert.Equal(t, "x", header.Metadata["name"])
			}
		})
	}
}

func TestZstdShrinksSparseData(t *testing.T) {
	a := Materialize[float64](lazy.Eye[float64](64, 64), nil)
	var raw, packed bytes.Buffer
	require.NoError(t, Encode(&raw, a, CompressionNone))
	require.NoError(t, Encode(&packed, a, CompressionZstd))
	assert.Less(t, packed.Len(), raw.Len()/4)
}

func TestDecodeErrors(t *testing.T) {
	a := Materialize[uint8](lazy.Ones[uint8](tensor.Static(8)), nil)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, a, CompressionNone))
	valid := buf.Bytes()

	t.Run("magic", func(t *testing.T) {
		bad := append([]byte("NOPE"), valid[4:]...)
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})
	t.Run("version", func(t *testing.T) {
		bad := bytes.Clone(valid)
		bad[4] = 9
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})
	t.Run("checksum", func(t *testing.T) {
		bad := bytes.Clone(valid)
		bad[len(bad)-1] ^= 0xff
		_, _, err := Decode(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})
	t.Run("truncated", func(t *testing.T) {
		_, _, err := Decode(bytes.NewReader(valid[:len(valid)-3]))
		assert.ErrorIs(t, err, ErrCorrupt)
	})
	t.Run("empty", func(t *testing.T) {
		_, _, err := Decode(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrCorrupt)
	})
}

// rawContainer assembles a container around an arbitrary header and payload.
func rawContainer(t *testing.T, c Compression, h Header, payload []byte) []byte {
	t.Helper()
	headerJSON, err := json.Marshal(h)
	require.NoError(t, err)
	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(FormatVersion)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(c)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON))))
	buf.Write(headerJSON)
	buf.Write(make([]byte, ChecksumSize))
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeHugeDeclaredSize(t *testing.T) {
	const n = 1 << 27 // 1 GiB of doubles
	huge := Header{FormatVersion: FormatVersion, Class: "double", Dims: []int{n}, RealSize: 8 * n, PayloadSize: 8 * n}
	small := huge
	small.PayloadSize = 64

	tests := []struct {
		name   string
		c      Compression
		header Header
	}{
		{"truncated raw payload", CompressionNone, huge},
		{"lz4 block too small", CompressionLZ4, small},
		{"zstd garbage", CompressionZstd, small},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := rawContainer(t, tt.c, tt.header, make([]byte, 64))

			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, _, err := Decode(bytes.NewReader(data))
			runtime.ReadMemStats(&after)

			assert.ErrorIs(t, err, ErrCorrupt)
			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
		})
	}
}

func TestValidateHeader(t *testing.T) {
	ok := Header{Class: "double", Dims: []int{2}, RealSize: 16, PayloadSize: 16}
	assert.NoError(t, validateHeader(ok))

	bad := ok
	bad.RealSize = 8
	assert.ErrorIs(t, validateHeader(bad), ErrCorrupt)

	bad = ok
	bad.ImagSize = 16
	assert.ErrorIs(t, validateHeader(bad), ErrCorrupt)

	bad = ok
	bad.Dims = []int{-1}
	assert.ErrorIs(t, validateHeader(bad), ErrCorrupt)
}

func TestCodecLogs(t *testing.T) {
	var logs bytes.Buffer
	l := logging.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := Materialize[float32](lazy.Ones[float32](tensor.Static(4)), nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, a, CompressionLZ4, WithLogger(l)))
	_, _, err := Decode(&buf, WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "op=encode")
	assert.Contains(t, logs.String(), "op=decode")
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, c)
	_, err = ParseCompression("gzip")
	assert.Error(t, err)
}
