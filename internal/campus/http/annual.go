package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// AnnualReportsHandler handles the annual report endpoints.
type AnnualReportsHandler struct {
	AnnualReportService *service.AnnualReportService
}

// HandleYearData handles GET /api/data/by-academic-year
//
//	@Summary		Academic year data
//	@Description	Events and achievements dated inside an academic year (1 June to 31 May).
//	@Tags			Annual Reports
//	@Produce		json
//	@Param			academicYear	query		string						true	"e.g. 2023-2024"
//	@Success		200				{object}	campussdk.AcademicYearData	"events and achievements"
//	@Failure		400				{object}	httpx.ErrorBody				"validation_error"
//	@Router			/api/data/by-academic-year [get].
func (h *AnnualReportsHandler) HandleYearData(w http.ResponseWriter, r *http.Request) {
	data, err := h.AnnualReportService.YearData(r.Context(), r.URL.Query().Get("academicYear"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load academic year data")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, campussdk.AcademicYearData{
		Events:       toEvents(data.Events),
		Achievements: toAchievements(data.Achievements),
	})
}

// HandleList handles GET /api/annual-report
//
//	@Summary		List annual reports
//	@Tags			Annual Reports
//	@Produce		json
//	@Param			academicYear	query		string					false	"e.g. 2023-2024"
//	@Success		200				{array}		campussdk.AnnualReport	"reports"
//	@Failure		400				{object}	httpx.ErrorBody			"validation_error"
//	@Router			/api/annual-report [get].
func (h *AnnualReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.AnnualReportService.List(r.Context(), r.URL.Query().Get("academicYear"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list annual reports")
		return
	}
	out := make([]campussdk.AnnualReport, len(reports))
	for i, rep := range reports {
		out[i] = toAnnualReport(rep)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGenerate handles POST /api/generate-annual-report
//
//	@Summary		Generate annual report
//	@Description	Drafts the annual report of an academic year from the selected events and
//	@Description	achievements plus placement figures. Each year is generated once.
//	@Tags			Annual Reports
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		campussdk.GenerateAnnualReportRequest	true	"Selection"
//	@Success		201		{object}	campussdk.GenerateAnnualReportResponse	"stored report"
//	@Failure		400		{object}	httpx.ErrorBody							"validation_error"
//	@Failure		401		{object}	httpx.ErrorBody							"invalid_token"
//	@Failure		409		{object}	httpx.ErrorBody							"conflict"
//	@Failure		500		{object}	httpx.ErrorBody							"server_error"
//	@Router			/api/generate-annual-report [post].
func (h *AnnualReportsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req campussdk.GenerateAnnualReportRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	in := service.GenerateAnnualInput{
		AcademicYear: req.AcademicYear,
		Placement: domain.PlacementInfo{
			TotalRegistered:  req.PlacementInfo.TotalRegistered,
			CompaniesArrived: req.PlacementInfo.CompaniesArrived,
			StudentsPlaced:   req.PlacementInfo.StudentsPlaced,
		},
	}
	for _, s := range req.SelectedEvents {
		in.EventIDs = append(in.EventIDs, s.ID)
	}
	for _, s := range req.SelectedAchievements {
		in.AchievementIDs = append(in.AchievementIDs, s.ID)
	}

	report, err := h.AnnualReportService.Generate(r.Context(), principal(r), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to generate annual report")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.GenerateAnnualReportResponse{
		Success: true,
		Message: "Annual report generated successfully",
		Report:  toAnnualReport(report),
	})
}
