// Package export serializes a sorted, filtered violation view to the CSV
// artifact offered for download.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Header is the fixed CSV column order. Data rows must match it exactly.
var Header = []string{
	"Violation ID",
	"Type",
	"Drone ID",
	"Date",
	"Time",
	"Location",
	"Latitude",
	"Longitude",
	"Image URL",
}

// Filename names the artifact after the export date: violations_<date>.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("violations_%s.csv", now.UTC().Format("2006-01-02"))
}

// WriteCSV emits the header row followed by one row per violation, every
// field individually quoted and coordinates formatted to exactly six
// decimal places. An empty input produces only the header.
func WriteCSV(w io.Writer, violations []reports.Violation) error {
	if err := writeRow(w, Header); err != nil {
		return err
	}
	for _, v := range violations {
		row := []string{
			v.ViolationID,
			v.Type,
			v.DroneID,
			v.Date,
			v.Timestamp,
			v.Location,
			fmt.Sprintf("%.6f", v.Latitude),
			fmt.Sprintf("%.6f", v.Longitude),
			v.ImageURL,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// CSV renders the export as a string.
func CSV(violations []reports.Violation) string {
	var sb strings.Builder
	_ = WriteCSV(&sb, violations)
	return sb.String()
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
