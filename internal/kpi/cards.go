package kpi

import "github.com/codecraft26/aeroniva-console/internal/reports"

// Cards are the dashboard headline figures.
type Cards struct {
	TotalViolations int `json:"totalViolations"`
	ViolationTypes  int `json:"violationTypes"`
	ActiveDrones    int `json:"activeDrones"`
	Locations       int `json:"locations"`
}

// BuildCards derives the headline cards from a KPI summary.
func BuildCards(summary reports.KPISummary) Cards {
	return Cards{
		TotalViolations: summary.Total,
		ViolationTypes:  len(summary.ByType),
		ActiveDrones:    len(summary.ByDrone),
		Locations:       len(summary.ByLocation),
	}
}

// Recent returns up to n violations from the head of the collection, for
// the dashboard's recent-violations list.
func Recent(violations []reports.Violation, n int) []reports.Violation {
	if n > len(violations) {
		n = len(violations)
	}
	out := make([]reports.Violation, n)
	copy(out, violations[:n])
	return out
}
