package dataset

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
)

// LoadTaxiRecords reads little-endian (distance, fare, total) uint64
// triples from r — the on-disk record shape of the taxi dataset's
// preprocessing step — and builds a row store of up to tupleCount rows
// with host=distance, guest=fare, measure=total, and a sequential
// primary key. tupleCount <= 0 reads until EOF.
func LoadTaxiRecords(r io.Reader, tupleCount int) (*rowstore.RowStore, *schema.Schema, Columns, error) {
	sch, cols := NewWorkloadSchema()
	rs := rowstore.New(sch.TupleWidth())

	var primaryKey uint64
	for tupleCount <= 0 || int(primaryKey) < tupleCount {
		distance, fare, total, ok, err := readTriple(r)
		if err != nil {
			return nil, nil, Columns{}, fmt.Errorf("LoadTaxiRecords: %w", err)
		}
		if !ok {
			break
		}

		buf := make([]byte, sch.TupleWidth())
		if err := putTriple(buf, sch, cols, primaryKey, distance, fare, total); err != nil {
			return nil, nil, Columns{}, fmt.Errorf("LoadTaxiRecords: %w", err)
		}

		if _, err := rs.Append(buf); err != nil {
			return nil, nil, Columns{}, fmt.Errorf("LoadTaxiRecords: %w", err)
		}
		primaryKey++
	}

	return rs, sch, cols, nil
}

// LoadFlightRecords reads little-endian (elapsed_time, air_time,
// distance) uint64 triples from r, skipping any record with
// air_time < 20 (the original preprocessing's filter, applied here during
// decode rather than as a second pass), and builds a row store of up to
// tupleCount kept rows with host=distance, guest=air_time,
// measure=elapsed_time. tupleCount <= 0 reads until EOF.
func LoadFlightRecords(r io.Reader, tupleCount int) (*rowstore.RowStore, *schema.Schema, Columns, error) {
	sch, cols := NewWorkloadSchema()
	rs := rowstore.New(sch.TupleWidth())

	var primaryKey uint64
	for tupleCount <= 0 || int(primaryKey) < tupleCount {
		elapsedTime, airTime, distance, ok, err := readTriple(r)
		if err != nil {
			return nil, nil, Columns{}, fmt.Errorf("LoadFlightRecords: %w", err)
		}
		if !ok {
			break
		}
		if airTime < 20 {
			continue
		}

		buf := make([]byte, sch.TupleWidth())
		if err := putTriple(buf, sch, cols, primaryKey, distance, airTime, elapsedTime); err != nil {
			return nil, nil, Columns{}, fmt.Errorf("LoadFlightRecords: %w", err)
		}

		if _, err := rs.Append(buf); err != nil {
			return nil, nil, Columns{}, fmt.Errorf("LoadFlightRecords: %w", err)
		}
		primaryKey++
	}

	return rs, sch, cols, nil
}

// putTriple writes (primaryKey, host, guest, measure) into buf under sch.
func putTriple(buf []byte, sch *schema.Schema, cols Columns, primaryKey, host, guest, measure uint64) error {
	if err := rowstore.PutAttr(buf, sch, cols.Primary, primaryKey); err != nil {
		return err
	}
	if err := rowstore.PutAttr(buf, sch, cols.Host, host); err != nil {
		return err
	}
	if err := rowstore.PutAttr(buf, sch, cols.Guest, guest); err != nil {
		return err
	}
	return rowstore.PutAttr(buf, sch, cols.Measure, measure)
}

// readTriple reads three consecutive little-endian uint64 values from r.
// ok is false (with a nil error) on a clean EOF before any of the three
// values is read; a partial triple is ErrTruncatedRecord.
func readTriple(r io.Reader) (a, b, c uint64, ok bool, err error) {
	var buf [24]byte
	n, err := io.ReadFull(r, buf[:])
	if err == io.EOF && n == 0 {
		return 0, 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, 0, false, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
	}

	a = binary.LittleEndian.Uint64(buf[0:8])
	b = binary.LittleEndian.Uint64(buf[8:16])
	c = binary.LittleEndian.Uint64(buf[16:24])
	return a, b, c, true, nil
}
