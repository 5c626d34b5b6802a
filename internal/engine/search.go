package engine

import (
	"strings"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Search returns the violations whose field values contain query as a
// case-insensitive substring. An empty query matches every record. Missing
// field values are excluded from the scan. The result is a new slice in the
// input order.
func Search(violations []reports.Violation, query string) []reports.Violation {
	if query == "" {
		out := make([]reports.Violation, len(violations))
		copy(out, violations)
		return out
	}

	needle := strings.ToLower(query)
	out := make([]reports.Violation, 0, len(violations))
	for _, v := range violations {
		if matches(v, needle) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v reports.Violation, needle string) bool {
	for _, fv := range values(v) {
		if !fv.present {
			continue
		}
		if strings.Contains(strings.ToLower(fv.text), needle) {
			return true
		}
	}
	return false
}
