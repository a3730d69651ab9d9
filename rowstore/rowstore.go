package rowstore

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/corrindex/schema"
)

// RowStore is an append-only table of fixed-width tuples, addressed by a
// monotonically increasing row offset assigned at append time.
type RowStore struct {
	tupleWidth int
	data       [][]byte
}

// New returns an empty RowStore whose tuples must all be tupleWidth
// bytes, typically schema.TupleWidth() for the schema describing its rows.
func New(tupleWidth int) *RowStore {
	return &RowStore{tupleWidth: tupleWidth}
}

// Append adds tuple to the store and returns its row offset. tuple is
// copied; the caller's slice may be reused afterward. Returns
// ErrWrongWidth if len(tuple) != the store's configured tuple width.
func (rs *RowStore) Append(tuple []byte) (uint64, error) {
	if len(tuple) != rs.tupleWidth {
		return 0, fmt.Errorf("Append: %w (got %d, want %d)", ErrWrongWidth, len(tuple), rs.tupleWidth)
	}

	cp := make([]byte, rs.tupleWidth)
	copy(cp, tuple)
	offset := uint64(len(rs.data))
	rs.data = append(rs.data, cp)

	return offset, nil
}

// Fetch returns the tuple at offset. The returned slice must not be
// mutated by the caller. Returns ErrOffsetOutOfRange if offset is beyond
// the store's current size.
func (rs *RowStore) Fetch(offset uint64) ([]byte, error) {
	if offset >= uint64(len(rs.data)) {
		return nil, fmt.Errorf("Fetch(%d): %w", offset, ErrOffsetOutOfRange)
	}
	return rs.data[offset], nil
}

// Len reports the number of tuples appended so far.
func (rs *RowStore) Len() int {
	return len(rs.data)
}

// TupleWidth reports the configured fixed tuple width in bytes.
func (rs *RowStore) TupleWidth() int {
	return rs.tupleWidth
}

// ReadAttr reads the little-endian uint64 value of column id within
// tuple, using sch to locate its offset and width. Returns
// schema.ErrUnknownColumn if id is not declared in sch, or an error if
// the column's width is not 8 bytes (the only width this module's
// numeric-only data model uses).
func ReadAttr(tuple []byte, sch *schema.Schema, id int) (uint64, error) {
	width, err := sch.Width(id)
	if err != nil {
		return 0, fmt.Errorf("ReadAttr(%d): %w", id, err)
	}
	if width != 8 {
		return 0, fmt.Errorf("ReadAttr(%d): unsupported width %d, want 8", id, width)
	}
	offset, err := sch.Offset(id)
	if err != nil {
		return 0, fmt.Errorf("ReadAttr(%d): %w", id, err)
	}
	if offset+8 > len(tuple) {
		return 0, fmt.Errorf("ReadAttr(%d): tuple too short (%d bytes)", id, len(tuple))
	}

	return binary.LittleEndian.Uint64(tuple[offset : offset+8]), nil
}

// PutAttr writes val as a little-endian uint64 into tuple at the offset
// and width of column id in sch. tuple must already be sized to at least
// sch.TupleWidth(); typical callers allocate a fresh
// make([]byte, sch.TupleWidth()) and call PutAttr once per column before
// a single Append.
func PutAttr(tuple []byte, sch *schema.Schema, id int, val uint64) error {
	width, err := sch.Width(id)
	if err != nil {
		return fmt.Errorf("PutAttr(%d): %w", id, err)
	}
	if width != 8 {
		return fmt.Errorf("PutAttr(%d): unsupported width %d, want 8", id, width)
	}
	offset, err := sch.Offset(id)
	if err != nil {
		return fmt.Errorf("PutAttr(%d): %w", id, err)
	}
	if offset+8 > len(tuple) {
		return fmt.Errorf("PutAttr(%d): tuple too short (%d bytes)", id, len(tuple))
	}

	binary.LittleEndian.PutUint64(tuple[offset:offset+8], val)
	return nil
}
