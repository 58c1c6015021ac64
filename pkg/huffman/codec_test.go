package huffman

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestRoundTrip(t *testing.T) {
	codec := NewCodec()

	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte("a")},
		{"single symbol repeated", bytes.Repeat([]byte{0x7f}, 1000)},
		{"two symbols", []byte("abababababb")},
		{"text", []byte("deep learning models have transformed the field of ai")},
		{"all byte values", allBytes()},
		{"zero bytes", make([]byte, 33)},
		{"random", randomBytes(10000, 42)},
		{"skewed", append(bytes.Repeat([]byte("e"), 5000), []byte("xyzq")...)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compressed := codec.Compress(tc.data)
			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, tc.data, got)
		})
	}
}

func TestRoundTripAcrossCodecs(t *testing.T) {
	data := []byte(strings.Repeat("neural networks are powerful ", 50))
	compressed := NewCodec().Compress(data)

	var other Codec
	got, err := other.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestCompressDeterministic(t *testing.T) {
	data := randomBytes(4096, 7)
	assert.Equal(t, NewCodec().Compress(data), NewCodec().Compress(data))
}

func TestCompressEmpty(t *testing.T) {
	out, stats := NewCodec().CompressWithStats(nil)
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Equal(t, Stats{}, stats)
}

func TestSingleSymbolLayout(t *testing.T) {
	out, stats := NewCodec().CompressWithStats([]byte("aaaa"))

	assert.Equal(t, Stats{Symbols: 1, MaxCodeLength: 1, Bits: 4}, stats)
	require.Len(t, out, headerSize+1+2+1)
	assert.Equal(t, uint64(4), binary.LittleEndian.Uint64(out))
	assert.Equal(t, byte(0), out[8], "symbol count is stored minus one")
	assert.Equal(t, []byte{'a', 1}, out[9:11])
	assert.Equal(t, byte(0x00), out[11])
}

func TestCompressWithStats(t *testing.T) {
	_, stats := NewCodec().CompressWithStats([]byte("aaab"))
	assert.Equal(t, 2, stats.Symbols)
	assert.Equal(t, 1, stats.MaxCodeLength)
	assert.Equal(t, uint64(4), stats.Bits)
}

func TestCompressShrinksText(t *testing.T) {
	data := []byte(strings.Repeat("machine learning is fun ", 200))
	compressed := NewCodec().Compress(data)
	assert.Less(t, len(compressed), len(data))
	assert.Less(t, CompressionRatio(data, compressed), 1.0)
}

// payload builds a raw payload from its parts.
func payload(origLen uint64, table []byte, stream ...byte) []byte {
	out := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(out, origLen)
	out = append(out, table...)
	return append(out, stream...)
}

func TestDecompressLongCodes(t *testing.T) {
	// 70 symbols with lengths 1..69,69 form a complete code whose longest
	// codewords exceed 64 bits.
	table := []byte{69}
	for s := 0; s < 69; s++ {
		table = append(table, byte(s), byte(s+1))
	}
	table = append(table, 69, 69)

	// symbol 69 is 69 one bits
	stream := append(bytes.Repeat([]byte{0xFF}, 8), 0xF8)
	got, err := NewCodec().Decompress(payload(1, table, stream...))
	require.NoError(t, err)
	assert.Equal(t, []byte{69}, got)
}

func TestDecompressTruncated(t *testing.T) {
	for _, data := range [][]byte{{1}, {1, 2, 3}, {1, 2, 3, 4, 5, 6, 7}} {
		_, err := NewCodec().Decompress(data)
		assert.ErrorIs(t, err, ErrTruncated)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	valid := NewCodec().Compress([]byte("aaaa"))
	nonZeroPadding := append([]byte(nil), valid...)
	nonZeroPadding[len(nonZeroPadding)-1] = 0x01

	testCases := []struct {
		name string
		data []byte
	}{
		{"length prefix only", payload(5, nil)},
		{"zero original length", payload(0, []byte{0, 'a', 1}, 0x00)},
		{"table cut short", payload(1, []byte{2, 'a', 1, 'b'})},
		{"zero code length", payload(1, []byte{0, 'a', 0}, 0x00)},
		{"duplicate symbol", payload(1, []byte{1, 'a', 1, 'a', 1}, 0x00)},
		{"over-subscribed", payload(1, []byte{2, 'a', 1, 'b', 1, 'c', 1}, 0x00)},
		{"length beyond stream", payload(9, []byte{0, 'a', 1}, 0x00)},
		{"walk off tree", payload(1, []byte{0, 'a', 1}, 0x80)},
		{"bits exhausted", payload(5, []byte{1, 'a', 2, 'b', 2}, 0x00)},
		{"trailing byte", append(append([]byte(nil), valid...), 0x00)},
		{"non-zero padding", nonZeroPadding},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCodec().Decompress(tc.data)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestCompressionRatio(t *testing.T) {
	assert.Equal(t, 0.0, CompressionRatio(nil, []byte("x")))
	assert.Equal(t, 0.5, CompressionRatio([]byte("abcd"), []byte("ab")))
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "index.huf")
	codec := NewCodec()
	data := codec.Compress(randomBytes(2048, 3))

	require.NoError(t, codec.SaveToFile(path, data))
	got, err := codec.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, fs.ErrNotExist, "temp file must not survive")

	// overwrite in place
	require.NoError(t, codec.SaveToFile(path, []byte("x")))
	got, err = codec.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewCodec().LoadFromFile(filepath.Join(t.TempDir(), "missing.huf"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func BenchmarkCompress(b *testing.B) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 1000))
	codec := NewCodec()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		codec.Compress(data)
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 1000))
	codec := NewCodec()
	compressed := codec.Compress(data)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}
