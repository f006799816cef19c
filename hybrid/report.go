// Package hybrid: plain-text report writer for pipeline results.
package hybrid

import (
	"fmt"
	"io"
	"sort"
)

// WriteReport renders the per-partition summary in the layout consumed by the
// downstream decomposition tooling: header, size, I/O counts, and the sorted
// node list of each partition.
func (r *Result) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Total Partitions Created: %d\n\n", len(r.Parts)); err != nil {
		return err
	}

	for i, p := range r.Parts {
		info := r.Report.Partitions[i]
		ids := make([]string, 0, len(p))
		for id := range p {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		if _, err := fmt.Fprintf(w, "--- Partition %d ---\n", i); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  - Size: %d nodes\n", info.Size); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  - I/O: %d inputs, %d outputs\n", info.Inputs, info.Outputs); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  - Nodes: %v\n\n", ids); err != nil {
			return err
		}
	}

	return nil
}
