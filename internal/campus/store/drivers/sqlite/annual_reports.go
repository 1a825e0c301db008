package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/jmoiron/sqlx"
)

type annualReportsRepo struct {
	q queryer
}

type annualReportRow struct {
	AcademicYear  string `db:"academic_year"`
	ReportURL     string `db:"report_url"`
	ReportDocxURL string `db:"report_docx_url"`
	CreatedBy     string `db:"created_by"`
	CreatedAt     string `db:"created_at"`
}

const annualReportColumns = `academic_year, report_url, report_docx_url, created_by, created_at`

func mapAnnualReport(row annualReportRow) domain.AnnualReport {
	return domain.AnnualReport{
		AcademicYear:  row.AcademicYear,
		ReportURL:     row.ReportURL,
		ReportDocxURL: row.ReportDocxURL,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     parseTime(row.CreatedAt),
	}
}

func (r *annualReportsRepo) CreateAnnualReport(ctx context.Context, rep domain.AnnualReport) error {
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now()
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO annual_reports (`+annualReportColumns+`) VALUES (?, ?, ?, ?, ?)`,
		rep.AcademicYear, rep.ReportURL, rep.ReportDocxURL, rep.CreatedBy, formatTime(rep.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *annualReportsRepo) GetAnnualReport(ctx context.Context, academicYear string) (domain.AnnualReport, error) {
	var row annualReportRow
	err := sqlx.GetContext(ctx, r.q, &row,
		`SELECT `+annualReportColumns+` FROM annual_reports WHERE academic_year = ?`, academicYear)
	if err != nil {
		return domain.AnnualReport{}, mapNotFound(err)
	}
	return mapAnnualReport(row), nil
}

func (r *annualReportsRepo) ListAnnualReports(ctx context.Context, academicYear string) ([]domain.AnnualReport, error) {
	query := `SELECT ` + annualReportColumns + ` FROM annual_reports`
	var args []any
	if academicYear != "" {
		query += ` WHERE academic_year = ?`
		args = append(args, academicYear)
	}
	query += ` ORDER BY academic_year DESC`

	var rows []annualReportRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.AnnualReport, len(rows))
	for i, row := range rows {
		out[i] = mapAnnualReport(row)
	}
	return out, nil
}
