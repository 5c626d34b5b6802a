// Package reports holds the domain types shared by every view of the
// violation analytics console: violation records, KPI summaries, and the
// filter state applied to all of them.
package reports

// Violation is one detected safety event from a drone flight report.
// Records are read-only once fetched; the engine never mutates them.
type Violation struct {
	ViolationID string  `json:"violation_id"`
	Type        string  `json:"type"`
	Timestamp   string  `json:"timestamp"`
	Date        string  `json:"date"`
	DroneID     string  `json:"drone_id"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// TypeCount is one byType KPI bucket.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DroneCount is one byDrone KPI bucket.
type DroneCount struct {
	DroneID string `json:"drone_id"`
	Count   int    `json:"count"`
}

// LocationCount is one byLocation KPI bucket.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// DateCount is one overTime KPI bucket. Bucket order is whatever the
// backend supplied; the console never re-sorts it.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// KPISummary is the backend's pre-aggregated counts for the active filter.
// The console consumes these as-is and does not recompute them from raw
// violations.
type KPISummary struct {
	Total      int             `json:"total"`
	ByType     []TypeCount     `json:"byType"`
	ByDrone    []DroneCount    `json:"byDrone"`
	ByLocation []LocationCount `json:"byLocation"`
	OverTime   []DateCount     `json:"overTime"`
}

// FilterOptions lists the selectable values for each filter dimension.
// They populate choices only; filter values are never validated against them.
type FilterOptions struct {
	DroneIDs []string `json:"droneIds"`
	Dates    []string `json:"dates"`
	Types    []string `json:"types"`
}

// UploadResult is the backend's response to a successful report upload.
type UploadResult struct {
	ViolationsCount int `json:"violationsCount"`
}
