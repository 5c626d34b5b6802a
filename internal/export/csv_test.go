package export

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

func sampleViolations() []reports.Violation {
	return []reports.Violation{
		{
			ViolationID: "v1",
			Type:        "Fire Detected",
			Timestamp:   "10:32:14",
			Date:        "2025-07-10",
			DroneID:     "D1",
			Location:    "Zone A",
			Latitude:    23.74891,
			Longitude:   85.98523,
			ImageURL:    "https://example.com/v1.jpg",
		},
		{
			ViolationID: "v2",
			Type:        "No PPE Kit",
			Timestamp:   "11:01:02",
			Date:        "2025-07-11",
			DroneID:     "D2",
			Location:    `Zone "B"`,
			Latitude:    23.75102,
			Longitude:   85.98844,
			ImageURL:    "https://example.com/v2.jpg",
		},
	}
}

func TestCSVHeaderOnlyForEmptyInput(t *testing.T) {
	got := CSV(nil)
	want := `"Violation ID","Type","Drone ID","Date","Time","Location","Latitude","Longitude","Image URL"` + "\n"
	if got != want {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestCSVRowOrderAndQuoting(t *testing.T) {
	got := CSV(sampleViolations())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], `"v1","Fire Detected","D1","2025-07-10","10:32:14","Zone A","23.748910","85.985230"`) {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
			t.Errorf("line %d not fully quoted: %s", i, line)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	violations := sampleViolations()
	records, err := csv.NewReader(strings.NewReader(CSV(violations))).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing export failed: %v", err)
	}
	if len(records) != len(violations)+1 {
		t.Fatalf("expected %d records, got %d", len(violations)+1, len(records))
	}
	for i, v := range violations {
		row := records[i+1]
		if row[0] != v.ViolationID || row[1] != v.Type || row[2] != v.DroneID ||
			row[3] != v.Date || row[4] != v.Timestamp || row[5] != v.Location || row[8] != v.ImageURL {
			t.Errorf("row %d fields do not round-trip: %v", i, row)
		}
		lat, err := strconv.ParseFloat(row[6], 64)
		if err != nil {
			t.Fatalf("row %d latitude unparsable: %v", i, err)
		}
		lng, err := strconv.ParseFloat(row[7], 64)
		if err != nil {
			t.Fatalf("row %d longitude unparsable: %v", i, err)
		}
		if !almostEqual(lat, v.Latitude) || !almostEqual(lng, v.Longitude) {
			t.Errorf("row %d coordinates %f,%f do not match %f,%f", i, lat, lng, v.Latitude, v.Longitude)
		}
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 0.0000005
}

func TestCSVCoordinatesSixDecimals(t *testing.T) {
	got := CSV([]reports.Violation{{ViolationID: "v1", Latitude: 23.7, Longitude: 85.98}})
	if !strings.Contains(got, `"23.700000"`) || !strings.Contains(got, `"85.980000"`) {
		t.Errorf("coordinates not padded to six decimals: %s", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 7, 12, 18, 30, 0, 0, time.UTC)
	if got := Filename(now); got != "violations_2025-07-12.csv" {
		t.Errorf("Filename = %q", got)
	}
}
