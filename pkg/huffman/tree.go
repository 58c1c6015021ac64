package huffman

import (
	"container/heap"
	"sort"
)

// buildNode is one node of the merge tree. Leaves have left == right == -1.
type buildNode struct {
	left, right int32
	symbol      byte
}

type heapItem struct {
	weight uint64
	order  int
	node   int32
}

// mergeHeap orders by weight, then creation order, so equal weights merge
// deterministically.
type mergeHeap []heapItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].order < h[j].order
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(heapItem))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// codeEntry is one row of the code-length table.
type codeEntry struct {
	symbol byte
	length uint8
}

// codeLengths builds the Huffman tree for freq and returns the depth of every
// present symbol. A lone symbol gets length 1.
func codeLengths(freq *[256]uint64) []codeEntry {
	nodes := make([]buildNode, 0, 511)
	h := make(mergeHeap, 0, 256)
	for s := 0; s < 256; s++ {
		if freq[s] == 0 {
			continue
		}
		nodes = append(nodes, buildNode{left: -1, right: -1, symbol: byte(s)})
		h = append(h, heapItem{weight: freq[s], order: len(nodes) - 1, node: int32(len(nodes) - 1)})
	}
	if len(h) == 0 {
		return nil
	}
	if len(h) == 1 {
		return []codeEntry{{symbol: nodes[0].symbol, length: 1}}
	}

	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		nodes = append(nodes, buildNode{left: a.node, right: b.node})
		idx := int32(len(nodes) - 1)
		heap.Push(&h, heapItem{weight: a.weight + b.weight, order: int(idx), node: idx})
	}

	var entries []codeEntry
	assignDepths(nodes, h[0].node, 0, &entries)
	return entries
}

// assignDepths recurses into the merge tree. Depth never exceeds 255 since
// there are at most 256 leaves.
func assignDepths(nodes []buildNode, idx int32, depth uint8, out *[]codeEntry) {
	n := nodes[idx]
	if n.left < 0 {
		*out = append(*out, codeEntry{symbol: n.symbol, length: depth})
		return
	}
	assignDepths(nodes, n.left, depth+1, out)
	assignDepths(nodes, n.right, depth+1, out)
}

// sortCanonical orders entries by code length, then symbol.
func sortCanonical(entries []codeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].symbol < entries[j].symbol
	})
}

// canonicalCodes assigns canonical codes to entries, which must already be in
// canonical order. Codes are bit slices (one 0/1 byte per bit) because lengths
// can exceed 64. It fails when the lengths over-subscribe the code space.
func canonicalCodes(entries []codeEntry) ([][]byte, error) {
	codes := make([][]byte, len(entries))
	var code []byte
	for i, e := range entries {
		if i == 0 {
			code = make([]byte, e.length)
		} else {
			if !increment(code) {
				return nil, ErrCorrupt
			}
			for len(code) < int(e.length) {
				code = append(code, 0)
			}
		}
		codes[i] = append([]byte(nil), code...)
	}
	return codes, nil
}

// increment adds one to the big-endian bit slice code. It returns false when
// code was all ones.
func increment(code []byte) bool {
	for i := len(code) - 1; i >= 0; i-- {
		if code[i] == 0 {
			code[i] = 1
			return true
		}
		code[i] = 0
	}
	return false
}

// decodeNode is a node of the decoding tree; child holds -1 where absent.
type decodeNode struct {
	child  [2]int32
	symbol byte
	leaf   bool
}

// decodeTree rebuilds the prefix tree from canonical codes.
func decodeTree(entries []codeEntry, codes [][]byte) ([]decodeNode, error) {
	nodes := []decodeNode{{child: [2]int32{-1, -1}}}
	for i, code := range codes {
		cur := int32(0)
		for _, bit := range code {
			if nodes[cur].leaf {
				return nil, ErrCorrupt
			}
			next := nodes[cur].child[bit]
			if next < 0 {
				nodes = append(nodes, decodeNode{child: [2]int32{-1, -1}})
				next = int32(len(nodes) - 1)
				nodes[cur].child[bit] = next
			}
			cur = next
		}
		if nodes[cur].leaf || nodes[cur].child != [2]int32{-1, -1} {
			return nil, ErrCorrupt
		}
		nodes[cur].leaf = true
		nodes[cur].symbol = entries[i].symbol
	}
	return nodes, nil
}
