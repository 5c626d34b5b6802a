package engine

import (
	"sort"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Direction orders a sorted view ascending or descending.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps "desc" to Descending and anything else to Ascending.
func ParseDirection(s string) Direction {
	if s == string(Descending) {
		return Descending
	}
	return Ascending
}

// Sort returns a new slice ordered by the named field. Latitude and
// longitude compare numerically, every other field lexically. A record with
// a missing value on the sort field compares less than any record with a
// present value; the direction flag then inverts the whole comparison, so
// missing values lead ascending output and trail descending output.
// Equal values keep their input order (stable). Note: keeping missing
// values glued to the low end of the value scale in both directions mirrors
// the behavior the operators already rely on, even though it reads like it
// could have been an accident; see DESIGN.md before changing it.
func Sort(violations []reports.Violation, field string, dir Direction) []reports.Violation {
	out := make([]reports.Violation, len(violations))
	copy(out, violations)

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(value(out[i], field), value(out[j], field))
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compare orders two field values: missing below present, then typed
// comparison. Returns -1, 0, or 1.
func compare(a, b fieldValue) int {
	switch {
	case !a.present && !b.present:
		return 0
	case !a.present:
		return -1
	case !b.present:
		return 1
	}
	if a.numeric && b.numeric {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	switch {
	case a.text < b.text:
		return -1
	case a.text > b.text:
		return 1
	}
	return 0
}
