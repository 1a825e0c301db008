package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

func TestRegisterAndLogin(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	admin := s.collegeAdmin(t)
	require.Equal(t, "admin", admin.Role())
	require.True(t, admin.HasScope("annual:write"))

	_, err := admin.Register(ctx, campussdk.RegisterRequest{
		Username: "Again", Email: "DEAN@college.edu", Password: password, Role: "admin", AdminID: "A-002", AdminLevel: "college",
	})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeUserExists)
	require.Equal(t, "User with this email already exists", apiErr.Description)

	_, err = s.client.Login(ctx, "dean@college.edu", "wrong password")
	requireAPIError(t, err, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredential)
	_, err = s.client.Login(ctx, "nobody@college.edu", password)
	requireAPIError(t, err, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredential)

	_, err = s.client.Register(ctx, campussdk.RegisterRequest{
		Username: "Short", Email: "short@college.edu", Password: "123", Role: "student", Department: "CSE",
		StudentID: "21CS009", YearOfStudy: 1,
	})
	requireAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeValidation)

	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "dean@college.edu", me.Email)
	require.NotNil(t, me.Profile)
	require.Equal(t, "college", me.Profile.AdminLevel)

	student := s.signup(t, campussdk.RegisterRequest{
		Username: "Asha", Email: "asha@college.edu", Role: "student", Department: "cse", StudentID: "21CS001", YearOfStudy: 2,
	})
	require.Equal(t, "CSE", student.Department())
	require.False(t, student.HasScope("events:write"))

	users, err := admin.ListUsers(ctx, "CSE", "")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "asha@college.edu", users[0].Email)
}

func TestRegisterAdminAccounts(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	hod := campussdk.RegisterRequest{
		Username: "HoD", Email: "hod.ece@college.edu", Password: password, Role: "admin", Department: "ECE",
		AdminID: "H-ECE", AdminLevel: "department",
	}
	principal := campussdk.RegisterRequest{
		Username: "Principal", Email: "principal@college.edu", Password: password, Role: "admin",
		AdminID: "A-009", AdminLevel: "college",
	}

	// Anonymous callers cannot create admins of either level.
	_, err := s.client.Register(ctx, principal)
	apiErr := requireAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeAccessDenied)
	require.Contains(t, apiErr.Description, "college administrators")
	_, err = s.client.Register(ctx, hod)
	requireAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeAccessDenied)
	_, err = s.client.Login(ctx, principal.Email, password)
	requireAPIError(t, err, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredential)

	// Neither can faculty, nor callers with a bad token.
	prof := s.faculty(t, "prof@college.edu", "CSE")
	_, err = prof.Register(ctx, principal)
	requireAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeAccessDenied)
	resp, _ := s.do(t, http.MethodPost, "/api/register", "not-a-token", "application/json",
		strings.NewReader(`{"username":"X","email":"x@college.edu","password":"long-enough","role":"admin","adminId":"A","adminLevel":"college"}`))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	dean := s.collegeAdmin(t)
	out, err := dean.Register(ctx, hod)
	require.NoError(t, err)
	require.NotEmpty(t, out.UserID)

	// A department admin cannot mint further admins.
	hodSess, err := s.client.Login(ctx, hod.Email, password)
	require.NoError(t, err)
	require.Equal(t, "ECE", hodSess.Department())
	_, err = hodSess.Register(ctx, principal)
	requireAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeAccessDenied)
}

func TestBadRequests(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/register", "", "application/json", strings.NewReader(`{"email":`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, campussdk.ErrorCodeInvalidRequest)

	resp, _ = s.do(t, http.MethodGet, "/api/me", "", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/me", "not-a-token", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	student := s.signup(t, campussdk.RegisterRequest{
		Username: "Asha", Email: "asha@college.edu", Role: "student", Department: "CSE", StudentID: "21CS001", YearOfStudy: 2,
	})
	resp, body = s.do(t, http.MethodPost, "/api/events", student.Token(), "application/json",
		strings.NewReader(`{"event_name":"Fest","start_date":"2024-04-01"}`))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Contains(t, body, "insufficient_scope")

	resp, _ = s.do(t, http.MethodGet, "/api/users", student.Token(), "", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSystemEndpoints(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	live, err := s.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := s.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	depts, err := s.client.ListDepartments(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, depts)
	require.Equal(t, "CIVIL", depts[0].Code, "ordered by code")

	resp, body := s.do(t, http.MethodGet, "/swagger/doc.json", "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Campus Administration API")
	require.Contains(t, body, "/api/upload-result")
}
