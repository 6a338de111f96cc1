package pruning

import (
	"fmt"

	"github.com/icza/bitio"
)

// ExactTable is the BackendExactUncompressed implementation: one byte per
// hash index, direct-indexed.
type ExactTable struct {
	data []uint8
}

// NewExactTable allocates an ExactTable of the given size, every entry
// Unreached until Set is called.
func NewExactTable(size uint64) *ExactTable {
	data := make([]uint8, size)
	for i := range data {
		data[i] = Unreached
	}
	return &ExactTable{data: data}
}

func (t *ExactTable) Lookup(hash uint64) uint8 {
	if hash >= uint64(len(t.data)) {
		return 0
	}
	if d := t.data[hash]; d != Unreached {
		return d
	}
	return 0
}

func (t *ExactTable) Backend() Backend { return BackendExactUncompressed }

// Set records dist at hash, saturating to MaxDepth.
func (t *ExactTable) Set(hash uint64, dist uint8) {
	if dist > MaxDepth {
		dist = MaxDepth
	}
	t.data[hash] = dist
}

// Len reports the table's addressable size.
func (t *ExactTable) Len() uint64 { return uint64(len(t.data)) }

// isSet reports whether hash has already been recorded by BFS
// construction, checking the raw Unreached sentinel directly rather than
// going through Lookup's zero-translation (which cannot distinguish
// "unreached" from "reached at distance 0").
func (t *ExactTable) isSet(hash uint64) bool {
	return t.data[hash] != Unreached
}

// PackedTable is the BackendExactPacked implementation: one nibble per hash
// index, two entries per byte. Lookup does the shift-and-mask directly
// (bitio's stream abstraction is unsuited to random access); bitio is used
// only by packBytes/unpackBytes below, which Build and the CBOR persistence
// path use to move between this in-memory layout and a flat byte stream.
type PackedTable struct {
	packed []byte
	size   uint64
}

// NewPackedTable allocates a PackedTable of the given logical size (number
// of hash indices), backed by ceil(size/2) bytes, every nibble Unreached's
// low nibble (0xF) until Set is called.
func NewPackedTable(size uint64) *PackedTable {
	packed := make([]byte, (size+1)/2)
	for i := range packed {
		packed[i] = 0xFF
	}
	return &PackedTable{packed: packed, size: size}
}

func (t *PackedTable) Lookup(hash uint64) uint8 {
	if hash >= t.size {
		return 0
	}
	b := t.packed[hash/2]
	var nibble byte
	if hash%2 == 0 {
		nibble = b & 0x0F
	} else {
		nibble = b >> 4
	}
	if nibble == 0xF {
		return 0
	}
	return uint8(nibble)
}

func (t *PackedTable) Backend() Backend { return BackendExactPacked }

// Set records dist at hash, saturating to the largest value a nibble can
// hold short of the Unreached sentinel (0xE, 14).
func (t *PackedTable) Set(hash uint64, dist uint8) {
	if dist > 0xE {
		dist = 0xE
	}
	idx := hash / 2
	if hash%2 == 0 {
		t.packed[idx] = (t.packed[idx] &^ 0x0F) | dist
	} else {
		t.packed[idx] = (t.packed[idx] &^ 0xF0) | (dist << 4)
	}
}

// Len reports the table's logical size (number of hash indices, not bytes).
func (t *PackedTable) Len() uint64 { return t.size }

// isSet reports whether hash has already been recorded by BFS
// construction; see ExactTable.isSet.
func (t *PackedTable) isSet(hash uint64) bool {
	b := t.packed[hash/2]
	if hash%2 == 0 {
		return b&0x0F != 0xF
	}
	return b>>4 != 0xF
}

// rawNibbles extracts every nibble, sentinel included, as a flat byte
// slice — the form packBytes/unpackBytes exchange with the CBOR
// persistence format via bitio, independent of this type's own
// shift-and-mask in-memory layout.
func (t *PackedTable) rawNibbles() []uint8 {
	out := make([]uint8, t.size)
	for i := uint64(0); i < t.size; i++ {
		b := t.packed[i/2]
		if i%2 == 0 {
			out[i] = b & 0x0F
		} else {
			out[i] = b >> 4
		}
	}
	return out
}

// setRawNibble writes v (0-15, sentinel 0xF included) at hash, bypassing
// Set's saturation to the real-distance range — used only when
// reconstructing a PackedTable from rawNibbles after a CBOR round trip.
func (t *PackedTable) setRawNibble(hash uint64, v uint8) {
	idx := hash / 2
	if hash%2 == 0 {
		t.packed[idx] = (t.packed[idx] &^ 0x0F) | (v & 0x0F)
	} else {
		t.packed[idx] = (t.packed[idx] &^ 0xF0) | (v << 4)
	}
}

// packBytes streams a PackedTable's nibbles out through a bitio.Writer into
// a freshly allocated byte slice, for CBOR persistence: bitio's bit-level
// accounting means the packed representation written here is identical
// regardless of size parity, which hand-rolled byte-at-a-time packing would
// need its own careful last-byte handling to guarantee.
func packBytes(nibbles []uint8) ([]byte, error) {
	var buf byteBuffer
	w := bitio.NewWriter(&buf)
	for _, n := range nibbles {
		if err := w.WriteBits(uint64(n), 4); err != nil {
			return nil, fmt.Errorf("pruning: packing nibble stream: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("pruning: closing nibble writer: %w", err)
	}
	return buf.bytes(), nil
}

// unpackBytes is packBytes's inverse: reads count 4-bit nibbles back out of
// packed.
func unpackBytes(packed []byte, count uint64) ([]uint8, error) {
	r := bitio.NewReader(newByteReader(packed))
	out := make([]uint8, count)
	for i := range out {
		bits, err := r.ReadBits(4)
		if err != nil {
			return nil, fmt.Errorf("pruning: unpacking nibble stream: %w", err)
		}
		out[i] = uint8(bits)
	}
	return out, nil
}
