package domain

import (
	"errors"
	"time"
)

var ErrInvalidPlacement = errors.New("placement figures must be non-negative and placed <= registered")

type PlacementInfo struct {
	TotalRegistered  int
	CompaniesArrived int
	StudentsPlaced   int
}

func (p PlacementInfo) Validate() error {
	if p.TotalRegistered < 0 || p.CompaniesArrived < 0 || p.StudentsPlaced < 0 ||
		p.StudentsPlaced > p.TotalRegistered {
		return ErrInvalidPlacement
	}
	return nil
}

// Percentage is placed/registered*100 with 2dp, 0 when nobody registered.
func (p PlacementInfo) Percentage() float64 {
	if p.TotalRegistered == 0 {
		return 0
	}
	return Round2(float64(p.StudentsPlaced) / float64(p.TotalRegistered) * 100)
}

type AnnualReport struct {
	AcademicYear  string
	ReportURL     string
	ReportDocxURL string
	CreatedBy     string
	CreatedAt     time.Time
}

// AnnualReportInput is everything that goes into one annual report.
type AnnualReportInput struct {
	Year         AcademicYear
	Events       []Event
	Achievements []Achievement
	Performance  []DepartmentPerformance
	Placement    PlacementInfo
}
