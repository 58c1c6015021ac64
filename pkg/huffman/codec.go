// Package huffman implements a byte-oriented canonical Huffman codec.
//
// A compressed payload is self-describing:
//
//	[original length uint64 LE][symbol count - 1 uint8][(symbol, code length) ...][bitstream]
//
// The bitstream is packed most significant bit first and zero padded to a
// whole byte. Any Codec can decompress any payload.
package huffman

import (
	"encoding/binary"
	"errors"
)

// headerSize is the width of the original-length prefix.
const headerSize = 8

var (
	// ErrTruncated is returned when a payload cannot even hold its length prefix.
	ErrTruncated = errors.New("huffman: payload shorter than length prefix")
	// ErrCorrupt is returned for payloads that were not produced by Compress.
	ErrCorrupt = errors.New("huffman: corrupt payload")
)

// Stats describes a single Compress call.
type Stats struct {
	Symbols       int
	MaxCodeLength int
	Bits          uint64
}

// Codec compresses and decompresses byte slices. The zero value is ready to
// use and holds no state between calls.
type Codec struct{}

// NewCodec returns a Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Compress encodes data. Empty input yields empty output.
func (c *Codec) Compress(data []byte) []byte {
	out, _ := c.CompressWithStats(data)
	return out
}

// CompressWithStats is Compress that also reports the code it built.
func (c *Codec) CompressWithStats(data []byte) ([]byte, Stats) {
	if len(data) == 0 {
		return []byte{}, Stats{}
	}

	var freq [256]uint64
	for _, b := range data {
		freq[b]++
	}
	entries := codeLengths(&freq)
	sortCanonical(entries)
	codes, err := canonicalCodes(entries)
	if err != nil {
		// lengths from a real tree always satisfy Kraft
		panic("huffman: inconsistent code lengths")
	}

	var table [256][]byte
	stats := Stats{Symbols: len(entries)}
	for i, e := range entries {
		table[e.symbol] = codes[i]
		stats.Bits += freq[e.symbol] * uint64(e.length)
		if int(e.length) > stats.MaxCodeLength {
			stats.MaxCodeLength = int(e.length)
		}
	}

	size := headerSize + 1 + 2*len(entries) + int((stats.Bits+7)/8)
	out := make([]byte, headerSize, size)
	binary.LittleEndian.PutUint64(out, uint64(len(data)))
	out = append(out, byte(len(entries)-1))
	for _, e := range entries {
		out = append(out, e.symbol, e.length)
	}

	w := bitWriter{buf: out}
	for _, b := range data {
		for _, bit := range table[b] {
			w.writeBit(bit)
		}
	}
	return w.bytes(), stats
}

// Decompress decodes a payload produced by Compress. Empty input yields empty
// output.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	origLen := binary.LittleEndian.Uint64(data[:headerSize])
	rest := data[headerSize:]
	if len(rest) < 1 {
		return nil, ErrCorrupt
	}

	count := int(rest[0]) + 1
	rest = rest[1:]
	if len(rest) < 2*count {
		return nil, ErrCorrupt
	}
	entries := make([]codeEntry, count)
	var seen [256]bool
	for i := range entries {
		sym, length := rest[2*i], rest[2*i+1]
		if length == 0 || seen[sym] {
			return nil, ErrCorrupt
		}
		seen[sym] = true
		entries[i] = codeEntry{symbol: sym, length: length}
	}
	stream := rest[2*count:]

	// every symbol costs at least one bit
	if origLen == 0 || origLen > uint64(len(stream))*8 {
		return nil, ErrCorrupt
	}

	sortCanonical(entries)
	codes, err := canonicalCodes(entries)
	if err != nil {
		return nil, err
	}
	nodes, err := decodeTree(entries, codes)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, origLen)
	r := bitReader{buf: stream}
	cur := int32(0)
	for uint64(len(out)) < origLen {
		bit, ok := r.readBit()
		if !ok {
			return nil, ErrCorrupt
		}
		cur = nodes[cur].child[bit]
		if cur < 0 {
			return nil, ErrCorrupt
		}
		if nodes[cur].leaf {
			out = append(out, nodes[cur].symbol)
			cur = 0
		}
	}
	if !r.paddingOnly() {
		return nil, ErrCorrupt
	}
	return out, nil
}

// CompressionRatio returns len(compressed)/len(original), or 0 when original
// is empty.
func CompressionRatio(original, compressed []byte) float64 {
	if len(original) == 0 {
		return 0
	}
	return float64(len(compressed)) / float64(len(original))
}

type bitWriter struct {
	buf   []byte
	nbits uint8
}

func (w *bitWriter) writeBit(bit byte) {
	if w.nbits == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit != 0 {
		w.buf[len(w.buf)-1] |= 1 << (7 - w.nbits)
	}
	w.nbits = (w.nbits + 1) % 8
}

func (w *bitWriter) bytes() []byte {
	return w.buf
}

type bitReader struct {
	buf []byte
	pos uint64
}

func (r *bitReader) readBit() (byte, bool) {
	if r.pos >= uint64(len(r.buf))*8 {
		return 0, false
	}
	b := r.buf[r.pos/8] >> (7 - r.pos%8) & 1
	r.pos++
	return b, true
}

// paddingOnly reports whether everything after the read position is the zero
// padding of the current byte.
func (r *bitReader) paddingOnly() bool {
	used := (r.pos + 7) / 8
	if used != uint64(len(r.buf)) {
		return false
	}
	if r.pos%8 == 0 {
		return true
	}
	mask := byte(0xFF) >> (r.pos % 8)
	return r.buf[len(r.buf)-1]&mask == 0
}
