package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestViolationsQueryEncoding(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{"violations": []reports.Violation{{ViolationID: "v1"}}})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	violations, err := client.Violations(context.Background(), reports.Filter{DroneID: "D1", Type: "Fire Detected"})
	if err != nil {
		t.Fatalf("Violations failed: %v", err)
	}
	if len(violations) != 1 || violations[0].ViolationID != "v1" {
		t.Errorf("unexpected violations: %+v", violations)
	}
	if got := gotQuery["drone_id"]; len(got) != 1 || got[0] != "D1" {
		t.Errorf("drone_id param = %v", got)
	}
	if _, ok := gotQuery["date"]; ok {
		t.Error("empty date dimension was sent")
	}
}

func TestViolationsToleratesMissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	violations, err := NewClient(server.URL, testLogger()).Violations(context.Background(), reports.Filter{})
	if err != nil {
		t.Fatalf("Violations failed: %v", err)
	}
	if violations == nil || len(violations) != 0 {
		t.Errorf("expected empty non-nil collection, got %#v", violations)
	}
}

func TestErrorBodySurfacedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("report is missing drone_id"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, testLogger()).KPIs(context.Background(), reports.Filter{})
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", statusErr.StatusCode)
	}
	if err.Error() != "report is missing drone_id" {
		t.Errorf("error message = %q, want verbatim body", err.Error())
	}
}

func TestBearerTokenForwarded(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(reports.FilterOptions{})
	}))
	defer server.Close()

	ctx := WithToken(context.Background(), "tok-123")
	if _, err := NewClient(server.URL, testLogger()).FilterOptions(ctx); err != nil {
		t.Fatalf("FilterOptions failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestUploadSendsMultipartReport(t *testing.T) {
	var (
		gotField    []byte
		gotFilename string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("report")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotField, _ = io.ReadAll(file)
		_ = json.NewEncoder(w).Encode(reports.UploadResult{ViolationsCount: 4})
	}))
	defer server.Close()

	content := []byte(`{"drone_id":"D1","violations":[]}`)
	result, err := NewClient(server.URL, testLogger()).Upload(context.Background(), "report.json", content)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if result.ViolationsCount != 4 {
		t.Errorf("violationsCount = %d", result.ViolationsCount)
	}
	if gotFilename != "report.json" {
		t.Errorf("filename = %q", gotFilename)
	}
	if string(gotField) != string(content) {
		t.Errorf("uploaded content = %q", gotField)
	}
}

func TestUploadErrorPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid report format"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, testLogger()).Upload(context.Background(), "report.json", []byte(`{}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != `{"error":"invalid report format"}` {
		t.Errorf("error = %q, want verbatim body", err.Error())
	}
}
