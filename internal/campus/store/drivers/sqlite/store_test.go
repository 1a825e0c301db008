package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMigrationVersion(t *testing.T) {
	st := newStore(t)
	v, dirty, err := st.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, v)

	// Re-applying is a no-op.
	require.NoError(t, st.ApplyMigrations())
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	u := domain.User{
		ID: idx.New().String(), Username: "asha", Email: "asha@example.edu",
		PasswordHash: "hash", Role: domain.RoleStudent, Department: "CSE",
	}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return tx.Users().CreateProfile(ctx, u, domain.Profile{StudentID: "S1", YearOfStudy: 2})
	})
	require.NoError(t, err)

	got, err := st.Users().GetUserByEmail(ctx, "asha@example.edu")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleStudent, got.Role)
	require.False(t, got.CreatedAt.IsZero())

	p, err := st.Users().GetProfile(ctx, got)
	require.NoError(t, err)
	require.Equal(t, "S1", p.StudentID)
	require.Equal(t, 2, p.YearOfStudy)

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	_, err = st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	emails, err := st.Users().ListEmailsByDepartment(ctx, "CSE")
	require.NoError(t, err)
	require.Equal(t, []string{"asha@example.edu"}, emails)

	users, err := st.Users().ListUsers(ctx, store.UserFilter{Role: domain.RoleFaculty})
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestTxRollback(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	u := domain.User{ID: "u1", Username: "x", Email: "x@example.edu", PasswordHash: "h", Role: domain.RoleFaculty}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		// year_of_study violates the CHECK constraint.
		u.Role = domain.RoleStudent
		return tx.Users().CreateProfile(ctx, u, domain.Profile{StudentID: "S", YearOfStudy: 9})
	})
	require.Error(t, err)

	_, err = st.Users().GetUserByID(ctx, "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	end := day("2024-03-12")
	events := []domain.Event{
		{ID: "e1", Name: "Hackathon", StartDate: day("2024-03-10"), EndDate: &end, Department: "CSE", Status: domain.StatusScheduled},
		{ID: "e2", Name: "Seminar", StartDate: day("2024-03-20"), Department: "CSE", Status: domain.StatusScheduled,
			DynamicFields: map[string]any{"speaker": "Dr. Rao"}},
		{ID: "e3", Name: "Expo", StartDate: day("2024-02-01"), Department: "ECE", Status: domain.StatusScheduled},
	}
	for _, e := range events {
		require.NoError(t, st.Events().CreateEvent(ctx, e))
	}

	all, err := st.Events().ListEvents(ctx, store.EventFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"e2", "e1", "e3"}, eventIDs(all))
	require.Equal(t, "Dr. Rao", all[0].DynamicFields["speaker"])
	require.Nil(t, all[0].EndDate)

	cse, err := st.Events().ListEvents(ctx, store.EventFilter{Department: "CSE"})
	require.NoError(t, err)
	require.Equal(t, []string{"e2", "e1"}, eventIDs(cse))

	ongoing, err := st.Events().ListEvents(ctx, store.EventFilter{
		Status: domain.StatusOngoing, Today: day("2024-03-11"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"e1"}, eventIDs(ongoing))

	n, err := st.Events().RefreshStatuses(ctx, day("2024-03-11"))
	require.NoError(t, err)
	require.EqualValues(t, 2, n) // e1 ongoing, e3 completed

	e3, err := st.Events().GetEventByID(ctx, "e3")
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, e3.Status)

	due, err := st.Events().ListEventsNeedingReminder(ctx, day("2024-03-19"), day("2024-03-20"))
	require.NoError(t, err)
	require.Equal(t, []string{"e2"}, eventIDs(due))

	require.NoError(t, st.Events().MarkReminderSent(ctx, "e2", time.Now()))
	due, err = st.Events().ListEventsNeedingReminder(ctx, day("2024-03-19"), day("2024-03-20"))
	require.NoError(t, err)
	require.Empty(t, due)

	require.NoError(t, st.Events().SetEventReport(ctx, "e1", "http://x/reports/e1.pdf", "http://x/reports/e1.docx"))
	require.ErrorIs(t, st.Events().SetEventReport(ctx, "nope", "", ""), store.ErrNotFound)

	byIDs, err := st.Events().ListEventsByIDs(ctx, []string{"e3", "e1", "missing"})
	require.NoError(t, err)
	require.Equal(t, []string{"e3", "e1"}, eventIDs(byIDs))
}

func eventIDs(es []domain.Event) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

func TestAchievements(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	for _, a := range []domain.Achievement{
		{ID: "a1", Name: "Team A", Title: "Robotics", Date: day("2023-11-01"), Department: "CSE", Type: "student", Category: "tech"},
		{ID: "a2", Name: "Dr. Iyer", Title: "Best Paper", Date: day("2024-01-05"), Department: "CSE", Type: "faculty", Category: "research"},
		{ID: "a3", Name: "Team B", Title: "Quiz", Date: day("2024-07-01"), Department: "ECE", Type: "student"},
	} {
		require.NoError(t, st.Achievements().CreateAchievement(ctx, a))
	}

	got, err := st.Achievements().ListAchievements(ctx, store.AchievementFilter{Type: "student"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a3", got[0].ID)

	from, to := day("2023-06-01"), day("2024-05-31")
	got, err = st.Achievements().ListAchievements(ctx, store.AchievementFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = st.Achievements().GetAchievementByID(ctx, "zzz")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestResultsReplaceSheet(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	key, err := domain.NewSheetKey("CSE", "2021-2025", "3")
	require.NoError(t, err)

	sheet := domain.ResultSheet{
		Key:      key,
		Subjects: []string{"Data Structures", "DBMS'; DROP TABLE users; --"},
		Students: []domain.StudentMarks{
			{RollNumber: "21CS001", StudentName: "Asha", Marks: []int{9, 7}},
			{RollNumber: "21CS002", StudentName: "Bala", Marks: []int{3}},
		},
	}
	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Results().ReplaceSheet(ctx, sheet)
	}))

	got, err := st.Results().GetSheet(ctx, key)
	require.NoError(t, err)
	require.Equal(t, sheet.Subjects, got.Subjects)
	require.Len(t, got.Students, 2)
	require.Equal(t, []int{3, 0}, got.Students[1].Marks)

	// Replace with a narrower sheet.
	sheet.Subjects = []string{"Only"}
	sheet.Students = []domain.StudentMarks{{RollNumber: "21CS009", StudentName: "Chen", Marks: []int{10}}}
	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Results().ReplaceSheet(ctx, sheet)
	}))

	got, err = st.Results().GetSheet(ctx, key)
	require.NoError(t, err)
	require.Equal(t, []string{"Only"}, got.Subjects)
	require.Len(t, got.Students, 1)

	infos, err := st.Results().ListSheets(ctx, store.SheetFilter{Department: "CSE"})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "student_results_cse_2021_2025_s3", infos[0].TableName)
	require.Equal(t, 1, infos[0].Students)

	// The users table survived the hostile subject name.
	_, err = st.Users().ListUsers(ctx, store.UserFilter{})
	require.NoError(t, err)
}

func TestGetSheetDuringReupload(t *testing.T) {
	ctx := context.Background()
	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "campus.db")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	key, err := domain.NewSheetKey("CSE", "2021-2025", "3")
	require.NoError(t, err)

	sheetOf := func(n int) domain.ResultSheet {
		rs := domain.ResultSheet{Key: key}
		marks := make([]int, n)
		for i := range n {
			rs.Subjects = append(rs.Subjects, fmt.Sprintf("Subject %d", i+1))
			marks[i] = i + 1
		}
		rs.Students = []domain.StudentMarks{{RollNumber: "21CS001", StudentName: "Asha", Marks: marks}}
		return rs
	}
	replace := func(n int) error {
		return st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Results().ReplaceSheet(ctx, sheetOf(n))
		})
	}
	require.NoError(t, replace(3))

	done := make(chan error, 1)
	go func() {
		for i := range 40 {
			if err := replace(1 + 2*(i%2)); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for range 200 {
		got, err := st.Results().GetSheet(ctx, key)
		require.NoError(t, err)
		require.Len(t, got.Students, 1)
		require.Len(t, got.Students[0].Marks, len(got.Subjects))
		require.Equal(t, sheetOf(len(got.Subjects)).Students, got.Students)
	}
	require.NoError(t, <-done)
}

func TestResultsRejectsOutOfRangeMarks(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	key, err := domain.NewSheetKey("ECE", "2022-2026", "1")
	require.NoError(t, err)

	err = st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Results().ReplaceSheet(ctx, domain.ResultSheet{
			Key:      key,
			Subjects: []string{"Circuits"},
			Students: []domain.StudentMarks{{RollNumber: "1", Marks: []int{11}}},
		})
	})
	require.Error(t, err)

	_, err = st.Results().GetSheet(ctx, key)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAnnualReports(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	rep := domain.AnnualReport{AcademicYear: "2023-2024", ReportURL: "u.pdf", ReportDocxURL: "u.docx"}
	require.NoError(t, st.AnnualReports().CreateAnnualReport(ctx, rep))
	require.ErrorIs(t, st.AnnualReports().CreateAnnualReport(ctx, rep), store.ErrAlreadyExists)

	list, err := st.AnnualReports().ListAnnualReports(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = st.AnnualReports().ListAnnualReports(ctx, "2022-2023")
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = st.AnnualReports().GetAnnualReport(ctx, "2023-2024")
	require.NoError(t, err)
}
