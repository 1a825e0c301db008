package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/campus/internal/campus/docgen"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/drafting"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const tableDateLayout = "02 Jan 2006"

type GenerateAnnualInput struct {
	AcademicYear   string
	EventIDs       []string
	AchievementIDs []string
	Placement      domain.PlacementInfo
}

type YearData struct {
	Year         domain.AcademicYear
	Events       []domain.Event
	Achievements []domain.Achievement
}

type AnnualReportService struct {
	Store         store.Store
	Events        *EventService
	Achievements  *AchievementService
	Analytics     *AnalyticsService
	Drafter       drafting.Drafter
	Dir           string
	PublicBaseURL string
	Clock         Clock
}

// YearData lists the events and achievements falling inside an academic
// year, the candidates for an annual report.
func (s *AnnualReportService) YearData(ctx context.Context, academicYear string) (YearData, error) {
	year, err := domain.ParseAcademicYear(academicYear)
	if err != nil {
		return YearData{}, wrapInvalid(err, "Academic year must look like 2023-2024")
	}

	out := YearData{Year: year}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Events, err = s.Events.EventsInYear(gctx, year)
		return err
	})
	g.Go(func() error {
		var err error
		out.Achievements, err = s.Achievements.AchievementsInYear(gctx, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return YearData{}, err
	}
	return out, nil
}

// Generate drafts the annual report from the selected records and writes it
// as Annual_Report_<year>.pdf and .docx. Only one report per year exists.
func (s *AnnualReportService) Generate(ctx context.Context, p domain.Principal, in GenerateAnnualInput) (domain.AnnualReport, error) {
	log := slogx.FromContext(ctx)

	year, err := domain.ParseAcademicYear(in.AcademicYear)
	if err != nil {
		return domain.AnnualReport{}, wrapInvalid(err, "Academic year must look like 2023-2024")
	}
	if err := in.Placement.Validate(); err != nil {
		return domain.AnnualReport{}, wrapInvalid(err, "Placement figures must be non-negative and placed cannot exceed registered")
	}

	_, err = s.Store.AnnualReports().GetAnnualReport(ctx, year.String())
	switch {
	case err == nil:
		return domain.AnnualReport{}, ErrAnnualReportExists
	case !errors.Is(err, store.ErrNotFound):
		return domain.AnnualReport{}, err
	}

	input := domain.AnnualReportInput{Year: year, Placement: in.Placement}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		input.Events, err = s.Store.Events().ListEventsByIDs(gctx, in.EventIDs)
		return err
	})
	g.Go(func() error {
		var err error
		input.Achievements, err = s.Store.Achievements().ListAchievementsByIDs(gctx, in.AchievementIDs)
		return err
	})
	g.Go(func() error {
		var err error
		input.Performance, err = s.Analytics.DepartmentPerformance(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.AnnualReport{}, err
	}
	if len(input.Events) != len(uniq(in.EventIDs)) || len(input.Achievements) != len(uniq(in.AchievementIDs)) {
		log.Warn("annual report selection references unknown records",
			slog.Int("events_selected", len(in.EventIDs)), slog.Int("events_found", len(input.Events)),
			slog.Int("achievements_selected", len(in.AchievementIDs)), slog.Int("achievements_found", len(input.Achievements)),
		)
	}

	prompt, err := drafting.AnnualPrompt(input)
	if err != nil {
		return domain.AnnualReport{}, err
	}
	text, err := s.Drafter.Draft(ctx, prompt)
	if err != nil {
		log.Error("failed to draft annual report", slog.String("academic_year", year.String()), slog.Any("error", err))
		return domain.AnnualReport{}, fmt.Errorf("%w: %v", ErrDraftFailed, err)
	}

	doc := docgen.Document{
		Title:  "Annual Report " + year.String(),
		Blocks: annualBlocks(docgen.Segment(docgen.CleanDraft(text)), input),
	}
	// Files are rendered under a hidden pending name and only moved into
	// place inside the transaction that records the year.
	base := "Annual_Report_" + year.String()
	pending := "." + base + "." + idx.New().String()
	if _, _, err := docgen.WriteReport(s.Dir, pending, doc); err != nil {
		log.Error("failed to render annual report", slog.String("academic_year", year.String()), slog.Any("error", err))
		_ = docgen.RemoveReport(s.Dir, pending)
		return domain.AnnualReport{}, err
	}

	rep := domain.AnnualReport{
		AcademicYear:  year.String(),
		ReportURL:     publicURL(s.PublicBaseURL, "annual_reports", base+".pdf"),
		ReportDocxURL: publicURL(s.PublicBaseURL, "annual_reports", base+".docx"),
		CreatedBy:     p.UserID,
		CreatedAt:     s.Clock.now(),
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.AnnualReports().CreateAnnualReport(ctx, rep); err != nil {
			return err
		}
		_, _, err := docgen.PromoteReport(s.Dir, pending, base)
		return err
	})
	if err != nil {
		if rmErr := docgen.RemoveReport(s.Dir, pending); rmErr != nil {
			log.Warn("failed to remove pending annual report", slog.String("name", pending), slog.Any("error", rmErr))
		}
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.AnnualReport{}, ErrAnnualReportExists
		}
		log.Error("failed to store annual report", slog.String("academic_year", year.String()), slog.Any("error", err))
		return domain.AnnualReport{}, err
	}

	log.Info("annual report generated",
		slog.String("academic_year", rep.AcademicYear),
		slog.Int("events", len(input.Events)),
		slog.Int("achievements", len(input.Achievements)),
	)
	return rep, nil
}

func (s *AnnualReportService) List(ctx context.Context, academicYear string) ([]domain.AnnualReport, error) {
	if academicYear != "" {
		year, err := domain.ParseAcademicYear(academicYear)
		if err != nil {
			return nil, wrapInvalid(err, "Academic year must look like 2023-2024")
		}
		academicYear = year.String()
	}
	return s.Store.AnnualReports().ListAnnualReports(ctx, academicYear)
}

const (
	eventsIntro       = "The institution organized several academic and professional events throughout the year. Below is a summary of key events conducted:"
	achievementsIntro = "The institution witnessed notable achievements during the academic year. Key highlights include:"
)

// annualBlocks swaps the drafted Events and Achievements sections for
// tables of the selected records and appends the placement figures to the
// Placements section.
func annualBlocks(blocks []docgen.Block, in domain.AnnualReportInput) []docgen.Block {
	const level = 3

	events := []docgen.Block{docgen.Heading(level, "2. Events"), docgen.Paragraph(eventsIntro)}
	if len(in.Events) > 0 {
		events = append(events, docgen.TableBlock(eventsTable(in.Events)))
	}
	blocks = docgen.ReplaceSection(blocks, "events", "conclusion", events)

	achievements := []docgen.Block{docgen.Heading(level, "3. Achievements"), docgen.Paragraph(achievementsIntro)}
	if len(in.Achievements) > 0 {
		achievements = append(achievements, docgen.TableBlock(achievementsTable(in.Achievements)))
	}
	blocks = docgen.ReplaceSection(blocks, "achievements", "conclusion", achievements)

	placements := []docgen.Block{docgen.Heading(level, "Placements")}
	if h, body, ok := docgen.Section(blocks, "placements"); ok {
		placements = append([]docgen.Block{h}, body...)
	}
	placements = append(placements, docgen.TableBlock(placementTable(in.Placement)))
	return docgen.ReplaceSection(blocks, "placements", "conclusion", placements)
}

func eventsTable(events []domain.Event) docgen.Table {
	t := docgen.Table{
		Header: []string{"Event Name", "Type", "Description", "Date"},
		Widths: []float64{120, 80, 180, 80},
	}
	for _, e := range events {
		t.Rows = append(t.Rows, []string{e.Name, e.Type, e.Description, e.StartDate.Format(tableDateLayout)})
	}
	return t
}

func achievementsTable(achievements []domain.Achievement) docgen.Table {
	t := docgen.Table{
		Header: []string{"Title", "Category", "Name", "Description", "Date"},
		Widths: []float64{100, 80, 80, 140, 80},
	}
	for _, a := range achievements {
		t.Rows = append(t.Rows, []string{a.Title, a.Category, a.Name, a.Description, a.Date.Format(tableDateLayout)})
	}
	return t
}

func placementTable(p domain.PlacementInfo) docgen.Table {
	pct := "0%"
	if p.TotalRegistered > 0 {
		pct = strconv.FormatFloat(p.Percentage(), 'f', 2, 64) + "%"
	}
	return docgen.Table{
		Header: []string{"Metric", "Count"},
		Widths: []float64{250, 150},
		Rows: [][]string{
			{"Total Registered Students", strconv.Itoa(p.TotalRegistered)},
			{"Number of Companies Arrived", strconv.Itoa(p.CompaniesArrived)},
			{"Total Students Placed", strconv.Itoa(p.StudentsPlaced)},
			{"Placement Percentage", pct},
		},
	}
}

func uniq(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
