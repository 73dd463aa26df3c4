// Package emitter drives a picker across a list of destination paths.
package emitter

import (
	"imgpick/internal/format"
	"imgpick/internal/picker"
)

// Result describes one written destination.
type Result struct {
	Source string
	Dest   string
	Format format.Format
}

// Emit writes one pool image per destination, in order. It stops at the
// first failure and returns the results produced so far along with the
// error; images consumed by a failed write stay consumed. progressFn, when
// non-nil, is called before each write.
func Emit(p *picker.Picker, dests []string, progressFn func(current, total int)) ([]Result, error) {
	results := make([]Result, 0, len(dests))

	for i, dest := range dests {
		if progressFn != nil {
			progressFn(i+1, len(dests))
		}

		src, _ := p.Next()
		f, err := p.Create(dest)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Source: src, Dest: dest, Format: f})
	}

	return results, nil
}
