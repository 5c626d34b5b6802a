package geo

import (
	"fmt"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Marker is one violation placed on the map view.
type Marker struct {
	Key         string  `json:"key"`
	ViolationID string  `json:"violation_id"`
	Type        string  `json:"type"`
	DroneID     string  `json:"drone_id"`
	Date        string  `json:"date"`
	Timestamp   string  `json:"timestamp"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Color       string  `json:"color"`
}

// TypeStat is one legend entry: a violation type with its marker count.
type TypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Markers projects every violation into the bounds with the built-in
// colors. Violation ids are not globally unique, so marker keys combine the
// id with the ordinal index.
func Markers(violations []reports.Violation, bounds Bounds) []Marker {
	return MarkersColored(violations, bounds, MarkerColor)
}

// MarkersColored is Markers with a custom color palette.
func MarkersColored(violations []reports.Violation, bounds Bounds, color func(string) string) []Marker {
	markers := make([]Marker, 0, len(violations))
	for i, v := range violations {
		x, y := bounds.ProjectClamped(v.Latitude, v.Longitude)
		markers = append(markers, Marker{
			Key:         markerKey(v.ViolationID, i),
			ViolationID: v.ViolationID,
			Type:        v.Type,
			DroneID:     v.DroneID,
			Date:        v.Date,
			Timestamp:   v.Timestamp,
			Location:    v.Location,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			ImageURL:    v.ImageURL,
			X:           x,
			Y:           y,
			Color:       color(v.Type),
		})
	}
	return markers
}

// TypeStats counts markers per violation type, in first-seen order.
func TypeStats(violations []reports.Violation) []TypeStat {
	return TypeStatsColored(violations, MarkerColor)
}

// TypeStatsColored is TypeStats with a custom color palette.
func TypeStatsColored(violations []reports.Violation, color func(string) string) []TypeStat {
	index := make(map[string]int)
	stats := make([]TypeStat, 0)
	for _, v := range violations {
		if i, ok := index[v.Type]; ok {
			stats[i].Count++
			continue
		}
		index[v.Type] = len(stats)
		stats = append(stats, TypeStat{Type: v.Type, Count: 1, Color: color(v.Type)})
	}
	return stats
}

func markerKey(id string, ordinal int) string {
	return fmt.Sprintf("%s-%d", id, ordinal)
}
