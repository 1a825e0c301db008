package campussdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the campus API. Public reads are available directly;
// writes need a Session obtained from Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// CheckScopes makes a Session refuse calls its token has no scope for
	// before sending them. Tests turn it off to exercise server-side checks.
	CheckScopes bool
}

// NewClient creates a client with scope checking enabled.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		CheckScopes: true,
	}
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	body, headers, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/register", body, headers)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token and wraps it in a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, headers, err := jsonBody(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/login", body, headers)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(out.Token)
}

func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	return out, c.getJSON(ctx, "/api/departments", nil, &out)
}

func (c *Client) ListEvents(ctx context.Context, f EventFilter) ([]Event, error) {
	q := url.Values{}
	setIf(q, "department", f.Department)
	setIf(q, "id", f.ID)
	setIf(q, "status", f.Status)

	var out []Event
	return out, c.getJSON(ctx, "/api/events", q, &out)
}

func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	var out Event
	if err := c.getJSON(ctx, "/api/events/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAchievements(ctx context.Context, f AchievementFilter) ([]Achievement, error) {
	q := url.Values{}
	setIf(q, "type", f.Type)
	setIf(q, "department", f.Department)
	setIf(q, "category", f.Category)

	var out []Achievement
	return out, c.getJSON(ctx, "/api/achievements", q, &out)
}

func (c *Client) GetAchievement(ctx context.Context, id string) (*Achievement, error) {
	var out Achievement
	if err := c.getJSON(ctx, "/api/achievements/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetResults(ctx context.Context, department, batch string, semester int) (*ResultsResponse, error) {
	var out ResultsResponse
	if err := c.getJSON(ctx, "/api/results", sheetQuery(department, batch, semester), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListResultSheets(ctx context.Context, department, batch string) ([]ResultSheet, error) {
	q := url.Values{}
	setIf(q, "department", department)
	setIf(q, "batch", batch)

	var out []ResultSheet
	return out, c.getJSON(ctx, "/api/result-sheets", q, &out)
}

func (c *Client) GetAnalytics(ctx context.Context, department, batch string, semester int) (*AnalyticsResponse, error) {
	var out AnalyticsResponse
	if err := c.getJSON(ctx, "/api/analytics", sheetQuery(department, batch, semester), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBatchPerformance(ctx context.Context, batch string) (*BatchPerformanceResponse, error) {
	q := url.Values{}
	setIf(q, "batch", batch)

	var out BatchPerformanceResponse
	if err := c.getJSON(ctx, "/api/batch-performance", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAcademicYearData(ctx context.Context, academicYear string) (*AcademicYearData, error) {
	q := url.Values{}
	setIf(q, "academicYear", academicYear)

	var out AcademicYearData
	if err := c.getJSON(ctx, "/api/data/by-academic-year", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAnnualReports returns every annual report, or only academicYear's.
func (c *Client) ListAnnualReports(ctx context.Context, academicYear string) ([]AnnualReport, error) {
	q := url.Values{}
	setIf(q, "academicYear", academicYear)

	var out []AnnualReport
	return out, c.getJSON(ctx, "/api/annual-report", q, &out)
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/livez", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/readyz", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, target any) error {
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func sheetQuery(department, batch string, semester int) url.Values {
	q := url.Values{}
	setIf(q, "department", department)
	setIf(q, "batch", batch)
	if semester > 0 {
		q.Set("semester", strconv.Itoa(semester))
	}
	return q
}
