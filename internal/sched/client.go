// Package sched provides the HTTP client for the external timetable
// scheduling service.
package sched

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"slate/internal/schedule"
)

const defaultTimeout = 30 * time.Second

// ExportKind selects an export document format.
type ExportKind string

const (
	ExportPDF   ExportKind = "pdf"
	ExportExcel ExportKind = "excel"
)

// Teacher is the wire shape of a roster teacher. Availability maps a
// day to the time slots the teacher can take; an absent day means fully
// available.
type Teacher struct {
	Name         string              `json:"name"`
	Subjects     []string            `json:"subjects"`
	Availability map[string][]string `json:"availability,omitempty"`
}

// Subject is the wire shape of a roster subject.
type Subject struct {
	Name            string `json:"name"`
	Semester        string `json:"semester,omitempty"`
	SessionsPerWeek int    `json:"sessions_per_week,omitempty"`
}

// Roster is the full configuration sent on a generation request.
type Roster struct {
	Teachers   []Teacher `json:"teachers"`
	Subjects   []Subject `json:"subjects"`
	Classrooms []string  `json:"classrooms"`
	TimeSlots  []string  `json:"timeSlots"`
	Days       []string  `json:"days"`
	Semesters  []string  `json:"semesters"`
}

// GenerateResult holds a successful generation response.
type GenerateResult struct {
	SessionID string
	Entries   []*schedule.Entry
	Conflicts []schedule.Conflict
}

// Client talks to the scheduling service. Calls are fire-once: no
// retries, no request de-duplication. Sequencing of responses is the
// caller's concern (see schedule.Board sync sequence).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	SessionID  *string   `json:"session_id"`
	Teachers   []Teacher `json:"teachers"`
	Subjects   []Subject `json:"subjects"`
	Classrooms []string  `json:"classrooms"`
	TimeSlots  []string  `json:"timeSlots"`
	Days       []string  `json:"days"`
	Semesters  []string  `json:"semesters"`
}

type generateResponse struct {
	Success   bool                `json:"success"`
	Error     string              `json:"error"`
	SessionID string              `json:"session_id"`
	Timetable []*schedule.Entry   `json:"timetable"`
	Conflicts []schedule.Conflict `json:"conflicts"`
}

// Generate asks the service for a complete timetable from the roster.
// A non-empty session handle is passed through so the service can
// correlate state across calls; pass "" before the first generation.
func (c *Client) Generate(ctx context.Context, roster Roster, session string) (*GenerateResult, error) {
	req := generateRequest{
		Teachers:   roster.Teachers,
		Subjects:   roster.Subjects,
		Classrooms: roster.Classrooms,
		TimeSlots:  roster.TimeSlots,
		Days:       roster.Days,
		Semesters:  roster.Semesters,
	}
	if session != "" {
		req.SessionID = &session
	}

	var resp generateResponse
	if err := c.postJSON(ctx, "/generate", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("scheduling service: %s", resp.Error)
	}

	return &GenerateResult{
		SessionID: resp.SessionID,
		Entries:   resp.Timetable,
		Conflicts: resp.Conflicts,
	}, nil
}

type updateRequest struct {
	SessionID string           `json:"session_id"`
	Timetable []schedule.Entry `json:"timetable"`
}

type updateResponse struct {
	Success   bool                `json:"success"`
	Error     string              `json:"error"`
	Conflicts []schedule.Conflict `json:"conflicts"`
}

// Update sends the full current entry list for re-validation after a
// local mutation. Only conflicts flow back; the service's own copy of
// the timetable is never applied to the local cache.
func (c *Client) Update(ctx context.Context, session string, entries []schedule.Entry) ([]schedule.Conflict, error) {
	if session == "" {
		return nil, schedule.ErrNoSession
	}
	if entries == nil {
		entries = []schedule.Entry{}
	}

	var resp updateResponse
	if err := c.postJSON(ctx, "/update-timetable", updateRequest{SessionID: session, Timetable: entries}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("scheduling service: %s", resp.Error)
	}
	return resp.Conflicts, nil
}

type conflictsResponse struct {
	Success   bool                `json:"success"`
	Error     string              `json:"error"`
	Conflicts []schedule.Conflict `json:"conflicts"`
}

// Conflicts fetches the current conflict report for a session.
func (c *Client) Conflicts(ctx context.Context, session string) ([]schedule.Conflict, error) {
	if session == "" {
		return nil, schedule.ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/conflicts/"+url.PathEscape(session), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching conflicts: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("conflicts request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var cr conflictsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !cr.Success {
		return nil, fmt.Errorf("scheduling service: %s", cr.Error)
	}
	return cr.Conflicts, nil
}

// ExportURL returns the export link for the session's timetable.
// Rejected client-side when no session handle exists yet.
func (c *Client) ExportURL(kind ExportKind, session string) (string, error) {
	if session == "" {
		return "", schedule.ErrNoSession
	}
	return fmt.Sprintf("%s/export/%s/%s", c.baseURL, kind, url.PathEscape(session)), nil
}

// Export downloads the exported document into w.
func (c *Client) Export(ctx context.Context, kind ExportKind, session string, w io.Writer) error {
	exportURL, err := c.ExportURL(kind, session)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading export: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("export failed (status %d): %s", resp.StatusCode, string(body))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	// The service reports semantic failures as JSON bodies with
	// non-200 statuses; decode those too so the reason surfaces.
	if err := json.Unmarshal(raw, result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(raw))
		}
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
