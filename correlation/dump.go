package correlation

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// dumpHeader names the CSV columns Dump emits, in order, per spec.md §6's
// diagnostic print(verbose) format.
var dumpHeader = []string{
	"level", "guest_lo", "guest_hi", "host_lo", "host_hi",
	"span_length", "epsilon", "slope", "intercept",
	"outlier_count", "is_leaf", "model_valid",
}

// Dump writes a BFS-ordered CSV diagnostic of idx's tree to w: one line per
// node, columns per dumpHeader. host_lo/host_hi/slope/intercept are printed
// as NA for nodes whose model never validated (per spec.md §6), since those
// fields carry no meaning without a fitted model.
//
// When verbose is false, only leaf nodes are emitted — the summary view an
// operator reaches for first; verbose includes every internal node too.
//
// If gzipOutput is true, w receives gzip-compressed CSV instead of plain
// text (used by cmd/corrbench's -dump-path flag for paths ending in .gz).
func (idx *Index) Dump(w io.Writer, verbose bool, gzipOutput bool) error {
	var sink io.Writer = w
	var gz *gzip.Writer
	if gzipOutput {
		gz = gzip.NewWriter(w)
		sink = gz
	}

	if _, err := fmt.Fprintln(sink, strings.Join(dumpHeader, ",")); err != nil {
		return fmt.Errorf("Dump: header: %w", err)
	}

	queue := []int{idx.root}
	for len(queue) > 0 {
		arenaIdx := queue[0]
		queue = queue[1:]

		n := &idx.nodes[arenaIdx]
		if verbose || n.isLeaf() {
			if err := dumpNode(sink, n); err != nil {
				return fmt.Errorf("Dump: node: %w", err)
			}
		}

		queue = append(queue, n.children...)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("Dump: gzip close: %w", err)
		}
	}
	return nil
}

func dumpNode(w io.Writer, n *node) error {
	spanOutliers := 0
	if n.outliers != nil {
		spanOutliers = n.outliers.Len()
	}

	hostLo, hostHi, slope, intercept := "NA", "NA", "NA", "NA"
	if n.modelValid {
		hostLo = fmt.Sprintf("%d", n.hostLo)
		hostHi = fmt.Sprintf("%d", n.hostHi)
		slope = fmt.Sprintf("%g", n.slope)
		intercept = fmt.Sprintf("%g", n.intercept)
	}

	_, err := fmt.Fprintf(w, "%d,%d,%d,%s,%s,%d,%d,%s,%s,%d,%t,%t\n",
		n.level, n.guestLo, n.guestHi, hostLo, hostHi,
		n.spanLength(), n.epsilon, slope, intercept,
		spanOutliers, n.isLeaf(), n.modelValid)
	return err
}
