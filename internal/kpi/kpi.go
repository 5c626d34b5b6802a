// Package kpi turns backend-aggregated KPI summaries into proportional
// visual encodings: pie shares, bar widths, and headline cards. It consumes
// pre-computed counts and never recomputes them from raw violations.
package kpi

import (
	"math"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Bucket is one categorical aggregate entry.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Share is a bucket with its percentage of the total, rounded to one
// decimal place.
type Share struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Bar is a bucket with its width relative to the largest bucket, in
// percent.
type Bar struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Width float64 `json:"width"`
}

// Shares computes each bucket's share of total as count/total*100, rounded
// to one decimal. A zero total yields zero shares for every bucket rather
// than a division-by-zero artifact.
func Shares(buckets []Bucket, total int) []Share {
	shares := make([]Share, len(buckets))
	for i, b := range buckets {
		var pct float64
		if total > 0 {
			pct = round1(float64(b.Count) / float64(total) * 100)
		}
		shares[i] = Share{Key: b.Key, Count: b.Count, Percent: pct}
	}
	return shares
}

// Bars scales each bucket against the largest count. All-zero counts yield
// zero widths.
func Bars(buckets []Bucket) []Bar {
	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	bars := make([]Bar, len(buckets))
	for i, b := range buckets {
		var width float64
		if max > 0 {
			width = float64(b.Count) / float64(max) * 100
		}
		bars[i] = Bar{Key: b.Key, Count: b.Count, Width: width}
	}
	return bars
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TypeBuckets adapts the byType aggregate.
func TypeBuckets(counts []reports.TypeCount) []Bucket {
	buckets := make([]Bucket, len(counts))
	for i, c := range counts {
		buckets[i] = Bucket{Key: c.Type, Count: c.Count}
	}
	return buckets
}

// DroneBuckets adapts the byDrone aggregate.
func DroneBuckets(counts []reports.DroneCount) []Bucket {
	buckets := make([]Bucket, len(counts))
	for i, c := range counts {
		buckets[i] = Bucket{Key: c.DroneID, Count: c.Count}
	}
	return buckets
}

// LocationBuckets adapts the byLocation aggregate.
func LocationBuckets(counts []reports.LocationCount) []Bucket {
	buckets := make([]Bucket, len(counts))
	for i, c := range counts {
		buckets[i] = Bucket{Key: c.Location, Count: c.Count}
	}
	return buckets
}
