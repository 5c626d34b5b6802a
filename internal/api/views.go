package api

import (
	"fmt"
	"net/http"

	"github.com/codecraft26/aeroniva-console/internal/engine"
	"github.com/codecraft26/aeroniva-console/internal/geo"
	"github.com/codecraft26/aeroniva-console/internal/kpi"
	"github.com/codecraft26/aeroniva-console/internal/reports"
	"github.com/codecraft26/aeroniva-console/internal/upstream"
)

const recentViolations = 10

// TableRow is one rendered table entry. Violation ids repeat across
// reports, so Key combines the id with the row's ordinal index.
type TableRow struct {
	Key string `json:"key"`
	reports.Violation
	TypeColor   string `json:"typeColor"`
	HasEvidence bool   `json:"hasEvidence"`
}

type TableView struct {
	Filter        reports.Filter `json:"filter"`
	Query         string         `json:"query"`
	SortField     string         `json:"sortField"`
	SortDirection string         `json:"sortDirection"`
	Total         int            `json:"total"`
	Rows          []TableRow     `json:"rows"`
	Generation    uint64         `json:"generation"`
}

type MapView struct {
	Filter     reports.Filter `json:"filter"`
	Bounds     geo.Bounds     `json:"bounds"`
	Total      int            `json:"total"`
	Markers    []geo.Marker   `json:"markers"`
	Legend     []geo.TypeStat `json:"legend"`
	Generation uint64         `json:"generation"`
}

type DashboardView struct {
	Filter     reports.Filter      `json:"filter"`
	Cards      kpi.Cards           `json:"cards"`
	ByType     []kpi.Share         `json:"byType"`
	ByDrone    []kpi.Bar           `json:"byDrone"`
	ByLocation []kpi.Share         `json:"byLocation"`
	OverTime   []reports.DateCount `json:"overTime"`
	Recent     []reports.Violation `json:"recent"`
	Generation uint64              `json:"generation"`
}

// tableQuery applies search and sort parameters to a snapshot. Defaults
// mirror the table's initial state: newest ingested first.
func tableQuery(r *http.Request, snap upstream.Snapshot) (rows []reports.Violation, query, field string, dir engine.Direction) {
	q := r.URL.Query()
	query = q.Get("query")
	field = q.Get("sort")
	if field == "" {
		field = engine.FieldCreatedAt
	}
	dirParam := q.Get("dir")
	if dirParam == "" {
		dirParam = string(engine.Descending)
	}
	dir = engine.ParseDirection(dirParam)
	rows = engine.Sort(engine.Search(snap.Violations, query), field, dir)
	return rows, query, field, dir
}

func (h *Handler) handleTableView(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	sorted, query, field, dir := tableQuery(r, snap)

	color := h.palette()
	rows := make([]TableRow, len(sorted))
	for i, v := range sorted {
		rows[i] = TableRow{
			Key:         fmt.Sprintf("%s-%d", v.ViolationID, i),
			Violation:   v,
			TypeColor:   color(v.Type),
			HasEvidence: v.ImageURL != "",
		}
	}

	writeJSON(w, http.StatusOK, TableView{
		Filter:        snap.Filter,
		Query:         query,
		SortField:     field,
		SortDirection: string(dir),
		Total:         len(rows),
		Rows:          rows,
		Generation:    snap.Generation,
	})
}

func (h *Handler) handleMapView(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MapView{
		Filter:     snap.Filter,
		Bounds:     h.Bounds,
		Total:      len(snap.Violations),
		Markers:    geo.MarkersColored(snap.Violations, h.Bounds, h.palette()),
		Legend:     geo.TypeStatsColored(snap.Violations, h.palette()),
		Generation: snap.Generation,
	})
}

func (h *Handler) handleDashboardView(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	summary := snap.KPIs
	writeJSON(w, http.StatusOK, DashboardView{
		Filter:     snap.Filter,
		Cards:      kpi.BuildCards(summary),
		ByType:     kpi.Shares(kpi.TypeBuckets(summary.ByType), summary.Total),
		ByDrone:    kpi.Bars(kpi.DroneBuckets(summary.ByDrone)),
		ByLocation: kpi.Shares(kpi.LocationBuckets(summary.ByLocation), summary.Total),
		OverTime:   summary.OverTime,
		Recent:     kpi.Recent(snap.Violations, recentViolations),
		Generation: snap.Generation,
	})
}
