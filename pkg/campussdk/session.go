package campussdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionExpired is returned once the session's token has expired.
// There are no refresh tokens; log in again.
var ErrSessionExpired = errors.New("campussdk: session expired")

// Session is an authenticated view of the API. The token's claims are read
// without verification purely to pre-check scopes; the server verifies.
type Session struct {
	client *Client

	token     string
	subject   string
	role      string
	dept      string
	expiresAt time.Time
	scopes    map[string]bool
}

// NewSession wraps an existing access token.
func (c *Client) NewSession(token string) (*Session, error) {
	var claims jwtx.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("campussdk: parse token: %w", err)
	}

	s := &Session{
		client:  c,
		token:   token,
		subject: claims.Subject,
		role:    claims.Role,
		dept:    claims.Department,
		scopes:  make(map[string]bool, len(claims.Scopes)),
	}
	if claims.ExpiresAt != nil {
		s.expiresAt = claims.ExpiresAt.Time
	}
	for _, sc := range claims.Scopes {
		s.scopes[sc] = true
	}
	return s, nil
}

func (s *Session) Token() string      { return s.token }
func (s *Session) UserID() string     { return s.subject }
func (s *Session) Role() string       { return s.role }
func (s *Session) Department() string { return s.dept }

// HasScope returns true if the session has the specified scope.
func (s *Session) HasScope(scope string) bool { return s.scopes[scope] }

func (s *Session) validToken() (string, error) {
	if !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

// checkScopes returns an error naming the missing scopes when client-side
// scope checking is enabled.
func (s *Session) checkScopes(required ...string) error {
	if !s.client.CheckScopes || len(required) == 0 {
		return nil
	}

	var missing []string
	for _, scope := range required {
		if !s.scopes[scope] {
			missing = append(missing, scope)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required scope(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// Me returns the caller's account and role profile.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/me", nil, nil)
	if err != nil {
		return nil, err
	}
	var out User
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account on behalf of the session's user. Admin
// accounts can only be created this way, by a college-level admin.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := s.postJSON(ctx, "/api/register", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListUsers(ctx context.Context, department, role string) ([]User, error) {
	path := "/api/users"
	q := url.Values{}
	setIf(q, "department", department)
	setIf(q, "role", role)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil, "users:read")
	if err != nil {
		return nil, err
	}
	var out []User
	return out, decodeJSON(resp, &out, http.StatusOK)
}

func (s *Session) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	var out Event
	if err := s.postJSON(ctx, "/api/events", req, &out, http.StatusCreated, "events:write"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateAchievement(ctx context.Context, req CreateAchievementRequest) (*Achievement, error) {
	var out Achievement
	if err := s.postJSON(ctx, "/api/achievements", req, &out, http.StatusCreated, "achievements:write"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadResult uploads a result sheet (.xlsx or .csv) read from file.
func (s *Session) UploadResult(ctx context.Context, req UploadResultRequest, file io.Reader) (*UploadResultResponse, error) {
	body, headers, err := multipartBody([]formPart{
		{Name: "department", Value: req.Department},
		{Name: "batchNumber", Value: req.Batch},
		{Name: "semester", Value: req.Semester},
		{Name: "file", FileName: req.FileName, File: file},
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/upload-result", body, headers, "results:write")
	if err != nil {
		return nil, err
	}
	var out UploadResultResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateReport drafts and renders the report of an event.
func (s *Session) GenerateReport(ctx context.Context, req GenerateReportRequest) (*GenerateReportResponse, error) {
	parts := []formPart{
		{Name: "eventId", Value: req.EventID},
		{Name: "eventName", Value: req.EventName},
		{Name: "eventType", Value: req.EventType},
		{Name: "description", Value: req.Description},
	}
	if len(req.DynamicFields) > 0 {
		b, err := json.Marshal(req.DynamicFields)
		if err != nil {
			return nil, err
		}
		parts = append(parts, formPart{Name: "dynamicFields", Value: string(b)})
	}
	for _, img := range req.Images {
		parts = append(parts, formPart{Name: "images", FileName: img.FileName, File: bytes.NewReader(img.Data)})
	}

	body, headers, err := multipartBody(parts)
	if err != nil {
		return nil, err
	}
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/generate-report", body, headers, "reports:write")
	if err != nil {
		return nil, err
	}
	var out GenerateReportResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GenerateAnnualReport(ctx context.Context, req GenerateAnnualReportRequest) (*GenerateAnnualReportResponse, error) {
	var out GenerateAnnualReportResponse
	if err := s.postJSON(ctx, "/api/generate-annual-report", req, &out, http.StatusCreated, "annual:write"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) postJSON(ctx context.Context, path string, in, out any, expected int, scopes ...string) error {
	body, headers, err := jsonBody(in)
	if err != nil {
		return err
	}
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body, headers, scopes...)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expected)
}
