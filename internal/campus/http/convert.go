package http

import (
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
)

func toUser(u domain.User, p *domain.Profile) campussdk.User {
	out := campussdk.User{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
	if p != nil {
		out.Profile = &campussdk.Profile{
			StudentID:   p.StudentID,
			YearOfStudy: p.YearOfStudy,
			FacultyID:   p.FacultyID,
			Position:    p.Position,
			AdminID:     p.AdminID,
			AdminLevel:  string(p.AdminLevel),
		}
	}
	return out
}

func toEvent(e domain.Event) campussdk.Event {
	out := campussdk.Event{
		ID:            e.ID,
		Name:          e.Name,
		Type:          e.Type,
		Description:   e.Description,
		StartDate:     e.StartDate.Format(domain.DateLayout),
		Department:    e.Department,
		Status:        string(e.Status),
		DynamicFields: e.DynamicFields,
		ReportURL:     e.ReportURL,
		ReportDocxURL: e.ReportDocxURL,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
	}
	if e.EndDate != nil {
		out.EndDate = e.EndDate.Format(domain.DateLayout)
	}
	return out
}

func toEvents(events []domain.Event) []campussdk.Event {
	out := make([]campussdk.Event, len(events))
	for i, e := range events {
		out[i] = toEvent(e)
	}
	return out
}

func toAchievement(a domain.Achievement) campussdk.Achievement {
	return campussdk.Achievement{
		ID:          a.ID,
		Name:        a.Name,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date.Format(domain.DateLayout),
		Category:    a.Category,
		Department:  a.Department,
		DocumentURL: a.DocumentURL,
		Type:        a.Type,
		CreatedAt:   a.CreatedAt,
	}
}

func toAchievements(as []domain.Achievement) []campussdk.Achievement {
	out := make([]campussdk.Achievement, len(as))
	for i, a := range as {
		out[i] = toAchievement(a)
	}
	return out
}

func toSheet(info domain.SheetInfo) campussdk.ResultSheet {
	return campussdk.ResultSheet{
		Department: info.Key.Department,
		Batch:      info.Key.Batch.String(),
		Semester:   info.Key.Semester,
		TableName:  info.TableName,
		Subjects:   info.Subjects,
		Students:   info.Students,
		SourceFile: info.SourceFile,
		UploadedBy: info.UploadedBy,
		UploadedAt: info.UploadedAt,
	}
}

func toResults(rs domain.ResultSheet) campussdk.ResultsResponse {
	out := campussdk.ResultsResponse{
		Department: rs.Key.Department,
		Batch:      rs.Key.Batch.String(),
		Semester:   rs.Key.Semester,
		Subjects:   rs.Subjects,
		Results:    make([]campussdk.StudentResult, len(rs.Students)),
	}
	for i, st := range rs.Students {
		marks := make(map[string]int, len(rs.Subjects))
		for j, subject := range rs.Subjects {
			if j < len(st.Marks) {
				marks[subject] = st.Marks[j]
			}
		}
		out.Results[i] = campussdk.StudentResult{
			RollNumber:  st.RollNumber,
			StudentName: st.StudentName,
			Marks:       marks,
		}
	}
	return out
}

func toAnalytics(a service.SheetAnalytics) campussdk.AnalyticsResponse {
	out := campussdk.AnalyticsResponse{
		AverageMarks:          make([]campussdk.SubjectAverage, len(a.Stats.Subjects)),
		TopPerformers:         make([]campussdk.TopPerformer, len(a.Top)),
		PerformanceTrend:      make([]campussdk.SemesterTrend, len(a.Trend)),
		AveragePassPercentage: a.Stats.AveragePassPercentage,
		ClearedAll:            a.Stats.ClearedAll,
		Students:              a.Stats.Students,
	}
	for i, s := range a.Stats.Subjects {
		out.AverageMarks[i] = campussdk.SubjectAverage{
			Subject:        s.Subject,
			AverageMarks:   s.AverageMarks,
			FailCount:      s.FailCount,
			Appeared:       s.Appeared,
			PassPercentage: s.PassPercentage,
		}
	}
	for i, p := range a.Top {
		out.TopPerformers[i] = campussdk.TopPerformer(p)
	}
	for i, t := range a.Trend {
		out.PerformanceTrend[i] = campussdk.SemesterTrend(t)
	}
	return out
}

func toBatchPerformance(bp service.BatchPerformance) campussdk.BatchPerformanceResponse {
	out := campussdk.BatchPerformanceResponse{
		BatchPerformance:             make([]campussdk.BatchSemesterPerformance, len(bp.Sheets)),
		OverallDepartmentPerformance: make([]campussdk.DepartmentPerformance, len(bp.Departments)),
	}
	for i, s := range bp.Sheets {
		out.BatchPerformance[i] = campussdk.BatchSemesterPerformance{
			Department:            s.Key.Department,
			Semester:              s.Key.Semester,
			AveragePassPercentage: s.AveragePassPercentage,
		}
	}
	for i, d := range bp.Departments {
		out.OverallDepartmentPerformance[i] = campussdk.DepartmentPerformance{
			Department:            d.Department,
			AveragePassPercentage: d.AveragePassPercentage,
		}
	}
	return out
}

func toAnnualReport(r domain.AnnualReport) campussdk.AnnualReport {
	return campussdk.AnnualReport{
		AcademicYear:  r.AcademicYear,
		ReportURL:     r.ReportURL,
		ReportDocxURL: r.ReportDocxURL,
		CreatedAt:     r.CreatedAt,
	}
}
