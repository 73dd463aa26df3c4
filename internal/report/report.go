// Package report generates summary reports of an emit run.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"imgpick/internal/emitter"
)

// Print writes a summary report to the given writer. remaining is the number
// of unused images left in the pool after the run.
func Print(w io.Writer, results []emitter.Result, remaining int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Summary ===")
	fmt.Fprintf(w, "Images written:      %d\n", len(results))
	fmt.Fprintf(w, "Images remaining:    %d\n", remaining)

	if len(results) == 0 {
		fmt.Fprintln(w, "\nNo files written.")
		return
	}

	// Group results by output format
	groups := make(map[string][]emitter.Result)
	for _, r := range results {
		groups[string(r.Format)] = append(groups[string(r.Format)], r)
	}

	// Sort format names
	names := make([]string, 0, len(groups))
	for k := range groups {
		names = append(names, k)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "Formats:             %d\n", len(names))
	fmt.Fprintln(w)

	for _, name := range names {
		items := groups[name]
		fmt.Fprintf(w, "  %s (%d files)\n", name, len(items))
		for _, r := range items {
			fmt.Fprintf(w, "    Wrote %s → %s\n", filepath.Base(r.Source), r.Dest)
		}
	}
	fmt.Fprintln(w)
}
