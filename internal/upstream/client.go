// Package upstream talks to the Aeroniva reports backend: violation
// collections, KPI summaries, filter options, and report uploads. It also
// coordinates the joint snapshot fetch the views render from.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Client is the backend REST client. Bearer credentials travel per request
// through the context; the auth subsystem that issues them is an external
// collaborator.
type Client struct {
	base   string
	httpc  *http.Client
	logger *slog.Logger
}

func NewClient(base string, logger *slog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		httpc:  &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// StatusError is a non-success backend response. The body is surfaced
// verbatim to the user.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	return http.StatusText(e.StatusCode)
}

type tokenKey struct{}

// WithToken carries a bearer credential for outgoing backend calls.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Violations fetches the collection for the filter. A response without a
// violations key decodes to an empty collection.
func (c *Client) Violations(ctx context.Context, filter reports.Filter) ([]reports.Violation, error) {
	var payload struct {
		Violations []reports.Violation `json:"violations"`
	}
	if err := c.get(ctx, "/violations", filter.Query(), &payload); err != nil {
		return nil, err
	}
	if payload.Violations == nil {
		return []reports.Violation{}, nil
	}
	return payload.Violations, nil
}

// KPIs fetches the pre-aggregated summary for the filter.
func (c *Client) KPIs(ctx context.Context, filter reports.Filter) (reports.KPISummary, error) {
	var summary reports.KPISummary
	if err := c.get(ctx, "/kpis", filter.Query(), &summary); err != nil {
		return reports.KPISummary{}, err
	}
	return summary, nil
}

// FilterOptions fetches the selectable values for each filter dimension.
func (c *Client) FilterOptions(ctx context.Context) (reports.FilterOptions, error) {
	var options reports.FilterOptions
	if err := c.get(ctx, "/filters", nil, &options); err != nil {
		return reports.FilterOptions{}, err
	}
	return options, nil
}

// Upload forwards a JSON report file as the multipart "report" field.
func (c *Client) Upload(ctx context.Context, filename string, content []byte) (reports.UploadResult, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("report", filename)
	if err != nil {
		return reports.UploadResult{}, err
	}
	if _, err := part.Write(content); err != nil {
		return reports.UploadResult{}, err
	}
	if err := mw.Close(); err != nil {
		return reports.UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload", body)
	if err != nil {
		return reports.UploadResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(ctx, req)

	var result reports.UploadResult
	if err := c.do(req, &result); err != nil {
		return reports.UploadResult{}, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	c.authorize(ctx, req)
	return c.do(req, out)
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("backend request failed",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
