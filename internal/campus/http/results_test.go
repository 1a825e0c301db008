package http_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

const sem1CSV = "Roll No,Student Name,Maths,Physics\n" +
	"21CS001,Asha,9,8\n" +
	"21CS002,Bala,8,3\n" +
	"21CS003,Chitra,7,6\n" +
	"21CS004,Dev,8,5\n"

func (s *testServer) deptAdmin(t *testing.T, email, dept string) *campussdk.Session {
	t.Helper()
	ctx := context.Background()
	_, err := s.auth.Register(ctx, service.Operator, service.RegisterInput{
		Username: "HoD", Email: email, Password: password, Role: "admin", Department: dept,
		AdminID: "H-" + dept, AdminLevel: "department",
	})
	require.NoError(t, err)
	sess, err := s.client.Login(ctx, email, password)
	require.NoError(t, err)
	return sess
}

func uploadRequest(dept, semester string) campussdk.UploadResultRequest {
	return campussdk.UploadResultRequest{FileName: "sem1.csv", Department: dept, Batch: "2021-2025", Semester: semester}
}

func TestResults(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	hod := s.deptAdmin(t, "hod.cse@college.edu", "CSE")

	up, err := hod.UploadResult(ctx, uploadRequest("CSE", "Sem1"), strings.NewReader(sem1CSV))
	require.NoError(t, err)
	require.Equal(t, "Results uploaded successfully", up.Message)
	require.Equal(t, "student_results_cse_2021_2025_s1", up.TableName)
	require.Equal(t, 4, up.Students)
	require.Equal(t, 2, up.Subjects)

	res, err := s.client.GetResults(ctx, "cse", "2021-2025", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Maths", "Physics"}, res.Subjects)
	require.Len(t, res.Results, 4)
	require.Equal(t, "21CS001", res.Results[0].RollNumber)
	require.Equal(t, 9, res.Results[0].Marks["Maths"])

	_, err = s.client.GetResults(ctx, "CSE", "2021-2025", 2)
	requireAPIError(t, err, http.StatusNotFound, campussdk.ErrorCodeNotFound)

	sheets, err := s.client.ListResultSheets(ctx, "CSE", "")
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	require.Equal(t, 1, sheets[0].Semester)

	an, err := s.client.GetAnalytics(ctx, "CSE", "2021-2025", 1)
	require.NoError(t, err)
	require.Len(t, an.AverageMarks, 2)
	bySubject := map[string]campussdk.SubjectAverage{}
	for _, a := range an.AverageMarks {
		bySubject[a.Subject] = a
	}
	require.InDelta(t, 8.0, bySubject["Maths"].AverageMarks, 0.001)
	require.InDelta(t, 5.5, bySubject["Physics"].AverageMarks, 0.001)
	require.Equal(t, 1, bySubject["Physics"].FailCount)
	require.Equal(t, "21CS001", an.TopPerformers[0].RollNumber)
	require.Len(t, an.PerformanceTrend, 1)

	bp, err := s.client.GetBatchPerformance(ctx, "2021-2025")
	require.NoError(t, err)
	require.Len(t, bp.BatchPerformance, 1)
	require.Equal(t, "CSE", bp.BatchPerformance[0].Department)
	require.Len(t, bp.OverallDepartmentPerformance, 1)
}

func TestUploadRejected(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	hod := s.deptAdmin(t, "hod.ece@college.edu", "ECE")

	_, err := hod.UploadResult(ctx, uploadRequest("CSE", "1"), strings.NewReader(sem1CSV))
	requireAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeAccessDenied)

	_, err = hod.UploadResult(ctx, uploadRequest("ECE", "9"), strings.NewReader(sem1CSV))
	apiErr := requireAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeValidation)
	require.Equal(t, "Semester must be 1-8 or Sem1-Sem8", apiErr.Description)

	// No file part at all.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("department", "ECE"))
	require.NoError(t, mw.WriteField("batchNumber", "2021-2025"))
	require.NoError(t, mw.WriteField("semester", "1"))
	require.NoError(t, mw.Close())
	resp, body := s.do(t, http.MethodPost, "/api/upload-result", hod.Token(), mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "No file uploaded")

	resp, _ = s.do(t, http.MethodPost, "/api/upload-result", hod.Token(), "application/json", strings.NewReader("{}"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// wideCSV has one more subject column than a result table can hold.
func wideCSV() string {
	var header, row strings.Builder
	header.WriteString("Roll No,Student Name")
	row.WriteString("21EC001,Asha")
	for i := 1; i <= domain.MaxSubjects+1; i++ {
		fmt.Fprintf(&header, ",Subject %d", i)
		row.WriteString(",5")
	}
	return header.String() + "\n" + row.String() + "\n"
}

func TestUploadTooManySubjects(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	hod := s.deptAdmin(t, "hod.ece@college.edu", "ECE")

	_, err := hod.UploadResult(ctx, uploadRequest("ECE", "1"), strings.NewReader(wideCSV()))
	apiErr := requireAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeValidation)
	require.Contains(t, apiErr.Description, "too many subject columns")

	sheets, err := s.client.ListResultSheets(ctx, "ECE", "")
	require.NoError(t, err)
	require.Empty(t, sheets)
}

func TestUploadTooLarge(t *testing.T) {
	h := &httpapi.ResultsHandler{MaxUploadBytes: 1024}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("department", "CSE"))
	fw, err := mw.CreateFormFile("file", "big.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sem1CSV + strings.Repeat("21CS999,Filler,5,5\n", 200)))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-result", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Contains(t, rec.Body.String(), campussdk.ErrorCodePayloadTooLarge)
}
