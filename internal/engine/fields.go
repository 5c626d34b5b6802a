// Package engine derives the table view from a violation collection: a
// free-text search followed by a stable, typed sort. Both are pure
// derivations; the input collection is never mutated.
package engine

import (
	"strconv"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Sortable field names, matching the violation wire field names.
const (
	FieldViolationID = "violation_id"
	FieldType        = "type"
	FieldTimestamp   = "timestamp"
	FieldDate        = "date"
	FieldDroneID     = "drone_id"
	FieldLocation    = "location"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldImageURL    = "image_url"
	FieldCreatedAt   = "created_at"
)

// fieldValue is one violation field prepared for comparison and matching.
// A zero value (empty string, zero coordinate) counts as missing: it is
// excluded from search and anchored at the low end of any sort.
type fieldValue struct {
	text    string
	num     float64
	numeric bool
	present bool
}

func stringValue(s string) fieldValue {
	return fieldValue{text: s, present: s != ""}
}

func numberValue(f float64) fieldValue {
	return fieldValue{
		text:    strconv.FormatFloat(f, 'f', -1, 64),
		num:     f,
		numeric: true,
		present: f != 0,
	}
}

// value extracts the named field. Unknown names yield a missing value, so
// sorting by them preserves the input order.
func value(v reports.Violation, field string) fieldValue {
	switch field {
	case FieldViolationID:
		return stringValue(v.ViolationID)
	case FieldType:
		return stringValue(v.Type)
	case FieldTimestamp:
		return stringValue(v.Timestamp)
	case FieldDate:
		return stringValue(v.Date)
	case FieldDroneID:
		return stringValue(v.DroneID)
	case FieldLocation:
		return stringValue(v.Location)
	case FieldLatitude:
		return numberValue(v.Latitude)
	case FieldLongitude:
		return numberValue(v.Longitude)
	case FieldImageURL:
		return stringValue(v.ImageURL)
	case FieldCreatedAt:
		return stringValue(v.CreatedAt)
	}
	return fieldValue{}
}

// values lists every field of the violation in declaration order, for the
// search scan.
func values(v reports.Violation) []fieldValue {
	return []fieldValue{
		stringValue(v.ViolationID),
		stringValue(v.Type),
		stringValue(v.Timestamp),
		stringValue(v.Date),
		stringValue(v.DroneID),
		stringValue(v.Location),
		numberValue(v.Latitude),
		numberValue(v.Longitude),
		stringValue(v.ImageURL),
		stringValue(v.CreatedAt),
	}
}
