package service

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/docgen"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/drafting"
)

func newAnnualService(t *testing.T) *AnnualReportService {
	t.Helper()
	events, achievements := services(t)
	return &AnnualReportService{
		Store:        events.Store,
		Events:       events,
		Achievements: achievements,
		Analytics:    &AnalyticsService{Store: events.Store, Catalog: catalog.Default()},
		Drafter:      drafting.OfflineDrafter{},
		Dir:          t.TempDir(),
		Clock:        fixedClock(),
	}
}

func TestAnnualReport(t *testing.T) {
	s := newAnnualService(t)

	inYear, err := s.Events.CreateEvent(ctx, cseFaculty, CreateEventInput{Name: "Hackathon", StartDate: "2023-09-01"})
	require.NoError(t, err)
	_, err = s.Events.CreateEvent(ctx, cseFaculty, CreateEventInput{Name: "Old fest", StartDate: "2023-05-31"})
	require.NoError(t, err)
	a, err := s.Achievements.CreateAchievement(ctx, cseFaculty, CreateAchievementInput{
		Name: "Team Falcon", Title: "Hackathon winners", Date: "2024-05-31", Type: "student",
	})
	require.NoError(t, err)

	data, err := s.YearData(ctx, "2023-2024")
	require.NoError(t, err)
	require.Len(t, data.Events, 1)
	require.Equal(t, inYear.ID, data.Events[0].ID)
	require.Len(t, data.Achievements, 1)

	_, err = s.YearData(ctx, "2023-2025")
	requireInvalid(t, err, "Academic year")

	rep, err := s.Generate(ctx, collegeAdmin, GenerateAnnualInput{
		AcademicYear:   "2023-2024",
		EventIDs:       []string{inYear.ID, "missing"},
		AchievementIDs: []string{a.ID},
		Placement:      domain.PlacementInfo{TotalRegistered: 120, CompaniesArrived: 14, StudentsPlaced: 90},
	})
	require.NoError(t, err)
	require.Equal(t, "2023-2024", rep.AcademicYear)
	require.Equal(t, "/annual_reports/Annual_Report_2023-2024.pdf", rep.ReportURL)
	require.Equal(t, "/annual_reports/Annual_Report_2023-2024.docx", rep.ReportDocxURL)
	require.Equal(t, collegeAdmin.UserID, rep.CreatedBy)

	_, err = os.Stat(filepath.Join(s.Dir, "Annual_Report_2023-2024.pdf"))
	require.NoError(t, err)

	_, err = s.Generate(ctx, collegeAdmin, GenerateAnnualInput{AcademicYear: "2023-2024"})
	require.ErrorIs(t, err, ErrAnnualReportExists)

	reports, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	reports, err = s.List(ctx, "2022-2023")
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestAnnualReportRejected(t *testing.T) {
	s := newAnnualService(t)

	_, err := s.Generate(ctx, collegeAdmin, GenerateAnnualInput{AcademicYear: "2023"})
	requireInvalid(t, err, "Academic year")

	_, err = s.Generate(ctx, collegeAdmin, GenerateAnnualInput{
		AcademicYear: "2023-2024",
		Placement:    domain.PlacementInfo{TotalRegistered: 10, StudentsPlaced: 11},
	})
	requireInvalid(t, err, "Placement figures")

	s.Drafter = failingDrafter{}
	_, err = s.Generate(ctx, collegeAdmin, GenerateAnnualInput{AcademicYear: "2023-2024"})
	require.ErrorIs(t, err, ErrDraftFailed)

	reports, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestAnnualBlocks(t *testing.T) {
	drafted := []docgen.Block{
		docgen.Heading(2, "Annual Report 2023-2024"),
		docgen.Heading(3, "1. Introduction"),
		docgen.Paragraph("intro"),
		docgen.Heading(3, "2. Events"),
		docgen.Bullet("drafted event"),
		docgen.Heading(3, "5. Placements"),
		docgen.Paragraph("90 of 120 students were placed."),
		docgen.Heading(3, "6. Conclusion"),
		docgen.Paragraph("end"),
	}
	in := domain.AnnualReportInput{
		Events: []domain.Event{{
			Name: "Hackathon", Type: "Technical", Description: "24h",
			StartDate: time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
		}},
		Placement: domain.PlacementInfo{TotalRegistered: 120, CompaniesArrived: 14, StudentsPlaced: 90},
	}

	got := annualBlocks(drafted, in)

	var headings []string
	for _, b := range got {
		if b.Kind == docgen.KindHeading {
			headings = append(headings, b.Text)
		}
	}
	require.Equal(t, []string{
		"Annual Report 2023-2024", "1. Introduction", "2. Events",
		"5. Placements", "3. Achievements", "6. Conclusion",
	}, headings)

	require.Equal(t, docgen.Paragraph(eventsIntro), got[4])
	require.Equal(t, docgen.KindTable, got[5].Kind)
	require.Equal(t, []string{"Hackathon", "Technical", "24h", "01 Sep 2023"}, got[5].Table.Rows[0])

	require.Equal(t, docgen.Paragraph("90 of 120 students were placed."), got[7])
	require.Equal(t, docgen.KindTable, got[8].Kind)
	require.Equal(t, []string{"Placement Percentage", "75.00%"}, got[8].Table.Rows[3])

	// No achievements selected: intro only.
	require.Equal(t, docgen.Paragraph(achievementsIntro), got[10])
	require.Equal(t, docgen.Heading(3, "6. Conclusion"), got[11])
}

func TestPlacementTable(t *testing.T) {
	tbl := placementTable(domain.PlacementInfo{})
	require.Equal(t, []string{"Placement Percentage", "0%"}, tbl.Rows[3])

	tbl = placementTable(domain.PlacementInfo{TotalRegistered: 3, StudentsPlaced: 1, CompaniesArrived: 2})
	require.Equal(t, []string{"Number of Companies Arrived", "2"}, tbl.Rows[1])
	require.Equal(t, []string{"Placement Percentage", "33.33%"}, tbl.Rows[3])
}

// gatedDrafter holds every caller until all expected callers have drafted.
type gatedDrafter struct {
	arrived sync.WaitGroup
}

func (d *gatedDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	d.arrived.Done()
	d.arrived.Wait()
	return drafting.OfflineDrafter{}.Draft(ctx, prompt)
}

func docxText(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	rc, err := zr.Open("word/document.xml")
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestAnnualReportConcurrentGenerate(t *testing.T) {
	s := newAnnualService(t)
	d := &gatedDrafter{}
	d.arrived.Add(2)
	s.Drafter = d

	registered := []int{4242, 7373}
	errs := make([]error, len(registered))
	var wg sync.WaitGroup
	for i, n := range registered {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Generate(ctx, collegeAdmin, GenerateAnnualInput{
				AcademicYear: "2023-2024",
				Placement:    domain.PlacementInfo{TotalRegistered: n},
			})
		}()
	}
	wg.Wait()

	winner, loser := 0, 1
	if errs[0] != nil {
		winner, loser = 1, 0
	}
	require.NoError(t, errs[winner])
	require.ErrorIs(t, errs[loser], ErrAnnualReportExists)

	text := docxText(t, filepath.Join(s.Dir, "Annual_Report_2023-2024.docx"))
	require.Contains(t, text, strconv.Itoa(registered[winner]))
	require.NotContains(t, text, strconv.Itoa(registered[loser]))

	// The losing render is cleaned up.
	entries, err := os.ReadDir(s.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
