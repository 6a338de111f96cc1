package pruning

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// persistedTable is the CBOR-serializable form a Table backend round-trips
// through. Bytes holds BackendExactUncompressed's one-byte-per-index
// payload (depths up to MaxDepth need the full byte range, so this backend
// is never nibble-packed); Packed holds BackendExactPacked's nibble stream
// (already capped to a nibble's range by PackedTable.Set); Sparse holds
// BackendApproximate's map directly.
type persistedTable struct {
	Backend Backend          `cbor:"backend"`
	Size    uint64           `cbor:"size"`
	Bytes   []byte           `cbor:"bytes,omitempty"`
	Packed  []byte           `cbor:"packed,omitempty"`
	Sparse  map[uint64]uint8 `cbor:"sparse,omitempty"`
}

// Save serializes table to w as CBOR. BackendZero tables serialize to a
// few bytes (just the backend tag); BackendApproximate tables serialize
// their sparse map directly; BackendExactPacked serializes its nibble
// stream as-is; BackendExactUncompressed serializes its byte slice as-is.
func Save(w io.Writer, table Table) error {
	p, err := toPersisted(table)
	if err != nil {
		return err
	}
	enc := cbor.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("pruning: encoding table: %w", err)
	}
	return nil
}

func toPersisted(table Table) (persistedTable, error) {
	switch tt := table.(type) {
	case zeroTable:
		return persistedTable{Backend: BackendZero}, nil
	case *ExactTable:
		return persistedTable{Backend: BackendExactUncompressed, Size: tt.Len(), Bytes: tt.data}, nil
	case *PackedTable:
		packed, err := packBytes(tt.rawNibbles())
		if err != nil {
			return persistedTable{}, err
		}
		return persistedTable{Backend: BackendExactPacked, Size: tt.Len(), Packed: packed}, nil
	case *ApproximateTable:
		sparse := make(map[uint64]uint8, len(tt.entries))
		for k, v := range tt.entries {
			sparse[k] = v
		}
		return persistedTable{Backend: BackendApproximate, Sparse: sparse}, nil
	default:
		return persistedTable{}, fmt.Errorf("%w: %T", ErrUnknownBackend, table)
	}
}

// Load deserializes a Table previously written by Save.
func Load(r io.Reader) (Table, error) {
	var p persistedTable
	dec := cbor.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("pruning: decoding table: %w", err)
	}

	switch p.Backend {
	case BackendZero:
		return NewZeroTable(), nil
	case BackendExactUncompressed:
		return &ExactTable{data: p.Bytes}, nil
	case BackendExactPacked:
		nibbles, err := unpackBytes(p.Packed, p.Size)
		if err != nil {
			return nil, err
		}
		t := NewPackedTable(p.Size)
		for i, n := range nibbles {
			t.setRawNibble(uint64(i), n)
		}
		return t, nil
	case BackendApproximate:
		t := NewApproximateTable()
		for k, v := range p.Sparse {
			t.entries[k] = v
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, p.Backend)
	}
}
