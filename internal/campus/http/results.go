package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// ResultsHandler handles result sheet uploads, lookups and analytics.
type ResultsHandler struct {
	ResultService    *service.ResultService
	AnalyticsService *service.AnalyticsService
	MaxUploadBytes   int64
}

// HandleUpload handles POST /api/upload-result
//
//	@Summary		Upload result sheet
//	@Description	Uploads an .xlsx or .csv sheet: roll number, student name, then one column of
//	@Description	grade points (0-10) per subject. Re-uploading a department, batch and semester
//	@Description	replaces the stored sheet.
//	@Tags			Results
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file		formData	file							true	"Result sheet (.xlsx or .csv)"
//	@Param			department	formData	string							true	"Department code"
//	@Param			batchNumber	formData	string							true	"Batch, e.g. 2021-2025"
//	@Param			semester	formData	string							true	"1-8 or Sem1-Sem8"
//	@Success		201			{object}	campussdk.UploadResultResponse	"stored table"
//	@Failure		400			{object}	httpx.ErrorBody					"validation_error"
//	@Failure		401			{object}	httpx.ErrorBody					"invalid_token"
//	@Failure		403			{object}	httpx.ErrorBody					"access_denied"
//	@Failure		413			{object}	httpx.ErrorBody					"payload_too_large"
//	@Router			/api/upload-result [post].
func (h *ResultsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.MaxUploadBytes); err != nil {
		writeFormError(w, err)
		return
	}

	name, data, err := readPart(r, "file")
	if err != nil {
		writeServiceError(w, r, err, "Failed to read upload")
		return
	}

	info, err := h.ResultService.Upload(r.Context(), principal(r), service.UploadInput{
		FileName:   name,
		Data:       data,
		Department: r.FormValue("department"),
		Batch:      r.FormValue("batchNumber"),
		Semester:   r.FormValue("semester"),
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to store results")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.UploadResultResponse{
		Message:   "Results uploaded successfully",
		TableName: info.TableName,
		Students:  info.Students,
		Subjects:  len(info.Subjects),
	})
}

// HandleGet handles GET /api/results
//
//	@Summary		Get results
//	@Tags			Results
//	@Produce		json
//	@Param			department	query		string						true	"Department code"
//	@Param			batch		query		string						true	"Batch, e.g. 2021-2025"
//	@Param			semester	query		string						true	"1-8 or Sem1-Sem8"
//	@Success		200			{object}	campussdk.ResultsResponse	"subjects and marks"
//	@Failure		400			{object}	httpx.ErrorBody				"validation_error"
//	@Failure		404			{object}	httpx.ErrorBody				"not_found"
//	@Router			/api/results [get].
func (h *ResultsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rs, err := h.ResultService.GetResults(r.Context(), q.Get("department"), q.Get("batch"), q.Get("semester"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load results")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResults(rs))
}

// HandleListSheets handles GET /api/result-sheets
//
//	@Summary		List result sheets
//	@Tags			Results
//	@Produce		json
//	@Param			department	query		string					false	"Department code"
//	@Param			batch		query		string					false	"Batch, e.g. 2021-2025"
//	@Success		200			{array}		campussdk.ResultSheet	"sheets"
//	@Failure		400			{object}	httpx.ErrorBody			"validation_error"
//	@Router			/api/result-sheets [get].
func (h *ResultsHandler) HandleListSheets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	infos, err := h.ResultService.ListSheets(r.Context(), q.Get("department"), q.Get("batch"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list result sheets")
		return
	}
	out := make([]campussdk.ResultSheet, len(infos))
	for i, info := range infos {
		out[i] = toSheet(info)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAnalytics handles GET /api/analytics
//
//	@Summary		Sheet analytics
//	@Description	Subject averages, fail counts, top performers and the semester trend of the batch.
//	@Tags			Analytics
//	@Produce		json
//	@Param			department	query		string						true	"Department code"
//	@Param			batch		query		string						true	"Batch, e.g. 2021-2025"
//	@Param			semester	query		string						true	"1-8 or Sem1-Sem8"
//	@Success		200			{object}	campussdk.AnalyticsResponse	"analytics"
//	@Failure		400			{object}	httpx.ErrorBody				"validation_error"
//	@Failure		404			{object}	httpx.ErrorBody				"not_found"
//	@Router			/api/analytics [get].
func (h *ResultsHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, err := h.AnalyticsService.Analytics(r.Context(), q.Get("department"), q.Get("batch"), q.Get("semester"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to compute analytics")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAnalytics(a))
}

// HandleBatchPerformance handles GET /api/batch-performance
//
//	@Summary		Batch performance
//	@Description	Pass percentage per department and semester of a batch, plus each department's
//	@Description	average over every uploaded sheet.
//	@Tags			Analytics
//	@Produce		json
//	@Param			batch	query		string								false	"Batch, e.g. 2021-2025"
//	@Success		200		{object}	campussdk.BatchPerformanceResponse	"performance"
//	@Failure		400		{object}	httpx.ErrorBody						"validation_error"
//	@Router			/api/batch-performance [get].
func (h *ResultsHandler) HandleBatchPerformance(w http.ResponseWriter, r *http.Request) {
	bp, err := h.AnalyticsService.BatchPerformance(r.Context(), r.URL.Query().Get("batch"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to compute batch performance")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBatchPerformance(bp))
}
