// Package geo maps violation coordinates onto the simplified planar map
// view: a fixed bounding box projected to percent positions, with markers
// colored by violation type.
package geo

import "strings"

// Bounds is the latitude/longitude rectangle the map projects.
type Bounds struct {
	LatMin float64 `yaml:"lat_min" json:"latMin"`
	LatMax float64 `yaml:"lat_max" json:"latMax"`
	LngMin float64 `yaml:"lng_min" json:"lngMin"`
	LngMax float64 `yaml:"lng_max" json:"lngMax"`
}

// DefaultBounds covers the monitored site.
func DefaultBounds() Bounds {
	return Bounds{LatMin: 23.745, LatMax: 23.755, LngMin: 85.980, LngMax: 85.990}
}

// Clamp limits for projected positions, in percent. Markers never render
// flush against the viewport edge.
const (
	clampMin = 5
	clampMax = 95
)

// Project maps a coordinate into percent positions within the bounds.
// x grows with longitude; y is inverted so increasing latitude moves toward
// the top of the display. The result is unclamped and falls outside
// [0, 100] for coordinates outside the box.
func (b Bounds) Project(lat, lng float64) (x, y float64) {
	x = (lng - b.LngMin) / (b.LngMax - b.LngMin) * 100
	y = (b.LatMax - lat) / (b.LatMax - b.LatMin) * 100
	return x, y
}

// ProjectClamped projects and then pins the position to the [5, 95] band.
// Out-of-box coordinates end up on the boundary; that loss is accepted, not
// an error.
func (b Bounds) ProjectClamped(lat, lng float64) (x, y float64) {
	x, y = b.Project(lat, lng)
	return clamp(x), clamp(y)
}

func clamp(v float64) float64 {
	if v < clampMin {
		return clampMin
	}
	if v > clampMax {
		return clampMax
	}
	return v
}

// Marker colors, keyed by lowercased violation type. Unlisted types fall
// back to DefaultColor so every violation renders.
const (
	ColorFire         = "#ef4444"
	ColorUnauthorized = "#f97316"
	ColorNoPPE        = "#eab308"
	DefaultColor      = "#3b82f6"
)

var typeColors = map[string]string{
	"fire detected":       ColorFire,
	"unauthorized person": ColorUnauthorized,
	"no ppe kit":          ColorNoPPE,
}

// MarkerColor returns the marker color for a violation type,
// case-insensitively, defaulting for unknown types.
func MarkerColor(violationType string) string {
	if c, ok := typeColors[normalizeType(violationType)]; ok {
		return c
	}
	return DefaultColor
}

func normalizeType(violationType string) string {
	return strings.ToLower(violationType)
}
