package indexbuilder

import (
	"fmt"

	"github.com/katalvlaran/corrindex/correlation"
	"github.com/katalvlaran/corrindex/hostindex"
	"github.com/katalvlaran/corrindex/primaryindex"
	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
	"github.com/katalvlaran/corrindex/tupleref"
)

// Built bundles the three structures produced by Build: the primary index
// (populated only when mode is tupleref.Logical; nil otherwise, since a
// physical-mode deployment never needs the primary-key hop), the host
// index, and the correlation index.
type Built struct {
	Primary     *primaryindex.Index
	Host        *hostindex.Index
	Correlation *correlation.Index
}

// Build scans rs once to populate the primary index (when mode is
// Logical) and the host index, then drives correlation.Construct over a
// second scan to build the correlation index. primaryCol identifies the
// primary-key attribute; guestCol and hostCol identify the correlation
// index's guest and host attributes respectively.
//
// Returns ErrEmptyRowStore if rs has no rows.
func Build(rs *rowstore.RowStore, sch *schema.Schema, primaryCol, guestCol, hostCol int, mode tupleref.PointerMode, cfg correlation.Config) (*Built, error) {
	if rs.Len() == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyRowStore)
	}

	var pidx *primaryindex.Index
	hidx := hostindex.New(mode)
	if mode == tupleref.Logical {
		pidx = primaryindex.New()
	}

	for offset := uint64(0); offset < uint64(rs.Len()); offset++ {
		tuple, err := rs.Fetch(offset)
		if err != nil {
			return nil, fmt.Errorf("Build: scanning offset %d: %w", offset, err)
		}

		host, err := rowstore.ReadAttr(tuple, sch, hostCol)
		if err != nil {
			return nil, fmt.Errorf("Build: host column at offset %d: %w", offset, err)
		}

		var ref tupleref.TupleRef
		if mode == tupleref.Logical {
			pkey, err := rowstore.ReadAttr(tuple, sch, primaryCol)
			if err != nil {
				return nil, fmt.Errorf("Build: primary key at offset %d: %w", offset, err)
			}
			pidx.Insert(pkey, offset)
			ref = tupleref.TupleRef(pkey)
		} else {
			ref = tupleref.TupleRef(offset)
		}

		hidx.Insert(host, ref)
	}

	ci, err := correlation.Construct(newCursor(rs), sch, primaryCol, guestCol, hostCol, mode, cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return &Built{Primary: pidx, Host: hidx, Correlation: ci}, nil
}

// cursor adapts a *rowstore.RowStore into a correlation.RowSource,
// scanning offsets 0..Len()-1 in order.
type cursor struct {
	rs     *rowstore.RowStore
	offset uint64
}

func newCursor(rs *rowstore.RowStore) *cursor {
	return &cursor{rs: rs}
}

func (c *cursor) Next() ([]byte, uint64, bool) {
	if c.offset >= uint64(c.rs.Len()) {
		return nil, 0, false
	}
	tuple, err := c.rs.Fetch(c.offset)
	if err != nil {
		return nil, 0, false
	}
	offset := c.offset
	c.offset++
	return tuple, offset, true
}
