package intent

import (
	"strings"

	"contour/internal/graph"
)

// Graphing: "y = sin(x)", "x^2 + 1". Compilation produces an evaluatable
// plot; rendering and sampling belong to the UI layer.

// DetectGraph matches single-variable function expressions.
func DetectGraph(text string) *Result {
	s := strings.TrimSpace(text)
	if s == "" || !graph.Candidate(s) {
		return nil
	}

	plot, ok := graph.Compile(s)
	if !ok {
		// A candidate that fails to compile is usually mid-keystroke:
		// "sin(" or "x^".
		return &Result{
			Kind:    KindGraph,
			Partial: true,
			Display: s + " ...",
		}
	}

	return &Result{
		Kind:    KindGraph,
		Display: "y = " + plot.Expression,
		Copy:    plot.Expression,
		Graph:   plot,
	}
}
