package intent

import (
	"strings"

	"contour/internal/expr"
)

// DetectCalculator matches plain arithmetic. It is the broadest pattern and
// deliberately runs last in the pipeline. A bare number is not an
// expression; at least one operator or paren is required, which also keeps
// the detector from matching its own "a = b" display output.
func DetectCalculator(text string) *Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if !strings.ContainsAny(trimmed, "+-*/%^()") {
		return nil
	}

	r := expr.Evaluate(trimmed)
	if r == nil {
		return nil
	}

	display := r.Expression + " = " + r.Display
	if r.Partial {
		display = strings.TrimSpace(text) + " = " + r.Display
	}

	return &Result{
		Kind:    KindCalculator,
		Partial: r.Partial,
		Display: display,
		Copy:    expr.FormatNumber(r.Value),
	}
}
