package engine

import (
	"encoding/binary"
	"fmt"
)

// docRef is the persisted identity of a document. Word counts are never
// stored; they are rebuilt from the source on load.
type docRef struct {
	ID   string
	Path string
}

// encodeDocuments lays out refs as
//
//	[count uint64][id_len uint64][id][path_len uint64][path] ...
//
// with every integer little-endian.
func encodeDocuments(refs []docRef) []byte {
	size := 8
	for _, r := range refs {
		size += 16 + len(r.ID) + len(r.Path)
	}
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(refs)))
	for _, r := range refs {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(r.ID)))
		buf = append(buf, r.ID...)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(r.Path)))
		buf = append(buf, r.Path...)
	}
	return buf
}

// decodeDocuments reverses encodeDocuments. Short fields, impossible counts
// and trailing bytes yield ErrIndexCorrupt.
func decodeDocuments(data []byte) ([]docRef, error) {
	count, rest, err := readUint64(data)
	if err != nil {
		return nil, err
	}
	// each entry carries two length fields
	if count > uint64(len(rest))/16 {
		return nil, fmt.Errorf("%w: %d documents in %d bytes", ErrIndexCorrupt, count, len(rest))
	}

	refs := make([]docRef, 0, count)
	for i := uint64(0); i < count; i++ {
		var id, path string
		if id, rest, err = readString(rest); err != nil {
			return nil, fmt.Errorf("document %d id: %w", i, err)
		}
		if path, rest, err = readString(rest); err != nil {
			return nil, fmt.Errorf("document %d path: %w", i, err)
		}
		refs = append(refs, docRef{ID: id, Path: path})
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrIndexCorrupt, len(rest))
	}
	return refs, nil
}

func readUint64(data []byte) (uint64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, fmt.Errorf("%w: short length field", ErrIndexCorrupt)
	}
	return binary.LittleEndian.Uint64(data), data[8:], nil
}

func readString(data []byte) (string, []byte, error) {
	n, rest, err := readUint64(data)
	if err != nil {
		return "", nil, err
	}
	if n > uint64(len(rest)) {
		return "", nil, fmt.Errorf("%w: string of %d bytes exceeds payload", ErrIndexCorrupt, n)
	}
	return string(rest[:n]), rest[n:], nil
}
