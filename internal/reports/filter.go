package reports

import "net/url"

// Filter is the three-dimensional constraint shared by every view.
// An empty string leaves that dimension unconstrained. Values are passed to
// the backend verbatim; an unknown drone id yields an empty result upstream,
// not an error here.
type Filter struct {
	DroneID string `json:"droneId"`
	Date    string `json:"date"`
	Type    string `json:"type"`
}

// FilterPatch is a partial filter update. Nil fields leave the current
// value unchanged.
type FilterPatch struct {
	DroneID *string `json:"droneId"`
	Date    *string `json:"date"`
	Type    *string `json:"type"`
}

// Merge returns a new filter with the patch applied on top of f.
func (f Filter) Merge(p FilterPatch) Filter {
	next := f
	if p.DroneID != nil {
		next.DroneID = *p.DroneID
	}
	if p.Date != nil {
		next.Date = *p.Date
	}
	if p.Type != nil {
		next.Type = *p.Type
	}
	return next
}

// IsZero reports whether no dimension is constrained.
func (f Filter) IsZero() bool {
	return f.DroneID == "" && f.Date == "" && f.Type == ""
}

// Query encodes the filter as backend query parameters, setting only the
// dimensions that are constrained.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.DroneID != "" {
		q.Set("drone_id", f.DroneID)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	return q
}
