package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

// TopPerformerCount is how many students the analytics view ranks.
const TopPerformerCount = 5

// sheetLoadLimit bounds concurrent sheet loads.
const sheetLoadLimit = 4

type SheetAnalytics struct {
	Stats domain.SheetStats
	Top   []domain.Performer

	// Trend covers every uploaded semester of the same department and batch.
	Trend []domain.SemesterTrend
}

type BatchPerformance struct {
	Sheets      []domain.SheetStats
	Departments []domain.DepartmentPerformance
}

type AnalyticsService struct {
	Store    store.Store
	Catalog  *catalog.Catalog
	PassMark int
}

func (s *AnalyticsService) passMark() int {
	if s.PassMark <= 0 {
		return domain.DefaultPassMark
	}
	return s.PassMark
}

// Analytics computes the figures of one sheet and the semester-wise trend
// of its batch.
func (s *AnalyticsService) Analytics(ctx context.Context, department, batch, semester string) (SheetAnalytics, error) {
	if department == "" || batch == "" || semester == "" {
		return SheetAnalytics{}, invalid("department, batch and semester are required")
	}
	dept, err := s.Catalog.Lookup(department)
	if err != nil {
		return SheetAnalytics{}, invalidField("department", "Invalid department")
	}
	key, err := domain.NewSheetKey(dept.Code, batch, semester)
	if err != nil {
		return SheetAnalytics{}, wrapInvalid(err, err.Error())
	}

	rs, err := s.Store.Results().GetSheet(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SheetAnalytics{}, ErrSheetNotFound
		}
		return SheetAnalytics{}, err
	}

	trendStats, err := s.loadStats(ctx, store.SheetFilter{Department: key.Department, Batch: key.Batch.String()})
	if err != nil {
		return SheetAnalytics{}, err
	}

	return SheetAnalytics{
		Stats: domain.ComputeSheetStats(rs, s.passMark()),
		Top:   domain.TopPerformers(rs, TopPerformerCount),
		Trend: domain.SemesterTrends(trendStats),
	}, nil
}

// BatchPerformance returns per-sheet pass rates for batch (every batch when
// empty) and the overall department figures across all uploaded sheets.
func (s *AnalyticsService) BatchPerformance(ctx context.Context, batch string) (BatchPerformance, error) {
	var f store.SheetFilter
	if batch != "" {
		b, err := domain.ParseBatch(batch)
		if err != nil {
			return BatchPerformance{}, invalidField("batch", "Batch must look like 2021-2025")
		}
		f.Batch = b.String()
	}

	all, err := s.loadStats(ctx, store.SheetFilter{})
	if err != nil {
		return BatchPerformance{}, err
	}

	out := BatchPerformance{Departments: domain.DepartmentRollup(all)}
	for _, st := range all {
		if f.Batch == "" || st.Key.Batch.String() == f.Batch {
			out.Sheets = append(out.Sheets, st)
		}
	}
	return out, nil
}

// DepartmentPerformance averages the pass percentage of every uploaded
// sheet per department.
func (s *AnalyticsService) DepartmentPerformance(ctx context.Context) ([]domain.DepartmentPerformance, error) {
	all, err := s.loadStats(ctx, store.SheetFilter{})
	if err != nil {
		return nil, err
	}
	return domain.DepartmentRollup(all), nil
}

// loadStats loads every sheet matching f and computes its stats, in catalog
// order.
func (s *AnalyticsService) loadStats(ctx context.Context, f store.SheetFilter) ([]domain.SheetStats, error) {
	infos, err := s.Store.Results().ListSheets(ctx, f)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.SheetStats, len(infos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sheetLoadLimit)
	for i, info := range infos {
		g.Go(func() error {
			rs, err := s.Store.Results().GetSheet(gctx, info.Key)
			if err != nil {
				return err
			}
			stats[i] = domain.ComputeSheetStats(rs, s.passMark())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
