// Package primaryindex implements the ordered multimap {primary_key →
// row_offset} used to resolve logical-mode tuple references (primary
// keys) to physical row offsets.
//
// It is a thin, typed façade over ordmap.Multimap — the primary index
// never needs anything the generic multimap doesn't already provide.
package primaryindex
