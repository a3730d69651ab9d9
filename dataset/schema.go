package dataset

import "github.com/katalvlaran/corrindex/schema"

// Columns names the four column ids every workload schema declares, in
// the order NewWorkloadSchema adds them.
type Columns struct {
	Primary int
	Host    int
	Guest   int
	Measure int
}

// NewWorkloadSchema returns the shared four-uint64-attribute schema used
// by every workload in this package, along with the column ids assigned
// to each role.
func NewWorkloadSchema() (*schema.Schema, Columns) {
	sch := schema.New()
	primary, _ := sch.AddAttr(8)
	host, _ := sch.AddAttr(8)
	guest, _ := sch.AddAttr(8)
	measure, _ := sch.AddAttr(8)
	return sch, Columns{Primary: primary, Host: host, Guest: guest, Measure: measure}
}
