package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/drafting"
	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const password = "correct horse battery"

var testSecret = []byte(strings.Repeat("s", 32))

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "campus-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	*httptest.Server
	client *campussdk.Client
	auth   *service.AuthService
	dir    string
}

func fixedClock() time.Time { return time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC) }

func newServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "campus"})
	require.NoError(t, err)

	dir := t.TempDir()
	cat := catalog.Default()
	events := &service.EventService{Store: st, Catalog: cat, Clock: fixedClock}
	achievements := &service.AchievementService{Store: st, Catalog: cat}
	analytics := &service.AnalyticsService{Store: st, Catalog: cat}

	router := httpapi.NewRouter(verifier, "test", st, slogx.Discard())
	router.Catalog = cat
	auth := &service.AuthService{Store: st, Catalog: cat, Signer: signer, Issuer: "campus", TokenTTL: time.Hour}
	router.AuthService = auth
	router.EventService = events
	router.AchievementService = achievements
	router.ResultService = &service.ResultService{Store: st, Catalog: cat, UploadsDir: filepath.Join(dir, "uploads"), Clock: fixedClock}
	router.AnalyticsService = analytics
	router.ReportService = &service.ReportService{
		Store: st, Drafter: drafting.OfflineDrafter{}, Dir: filepath.Join(dir, "reports"), Clock: fixedClock,
	}
	router.AnnualReportService = &service.AnnualReportService{
		Store: st, Events: events, Achievements: achievements, Analytics: analytics,
		Drafter: drafting.OfflineDrafter{}, Dir: filepath.Join(dir, "annual_reports"), Clock: fixedClock,
	}
	router.ReportsDir = filepath.Join(dir, "reports")
	router.AnnualReportsDir = filepath.Join(dir, "annual_reports")
	router.MaxUploadBytes = 1 << 20
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, client: campussdk.NewClient(srv.URL), auth: auth, dir: dir}
}

// signup registers req and logs in as the new user.
func (s *testServer) signup(t *testing.T, req campussdk.RegisterRequest) *campussdk.Session {
	t.Helper()
	ctx := context.Background()
	req.Password = password
	_, err := s.client.Register(ctx, req)
	require.NoError(t, err)
	sess, err := s.client.Login(ctx, req.Email, password)
	require.NoError(t, err)
	return sess
}

// collegeAdmin bootstraps the first admin and logs in as them.
func (s *testServer) collegeAdmin(t *testing.T) *campussdk.Session {
	t.Helper()
	ctx := context.Background()
	_, err := s.auth.Bootstrap(ctx, "dean@college.edu", "Dean", password)
	require.NoError(t, err)
	sess, err := s.client.Login(ctx, "dean@college.edu", password)
	require.NoError(t, err)
	return sess
}

func (s *testServer) faculty(t *testing.T, email, dept string) *campussdk.Session {
	return s.signup(t, campussdk.RegisterRequest{
		Username: "Prof", Email: email, Role: "faculty", Department: dept, FacultyID: "F-" + dept, Position: "Professor",
	})
}

func (s *testServer) do(t *testing.T, method, path, token, contentType string, body io.Reader) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, s.URL+path, body)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func requireAPIError(t *testing.T, err error, status int, code string) *campussdk.APIError {
	t.Helper()
	var apiErr *campussdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
