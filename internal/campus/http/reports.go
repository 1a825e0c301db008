package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// ReportsHandler drafts event reports.
type ReportsHandler struct {
	ReportService  *service.ReportService
	MaxUploadBytes int64
}

// HandleGenerate handles POST /api/generate-report
//
//	@Summary		Generate event report
//	@Description	Updates the event with the submitted details, drafts a report and stores it as
//	@Description	PDF and DOCX. Images (PNG or JPEG, at most 5) are embedded in the PDF.
//	@Tags			Reports
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			eventId			formData	string								true	"Event ID"
//	@Param			eventName		formData	string								false	"Event name"
//	@Param			eventType		formData	string								false	"Event type"
//	@Param			description		formData	string								false	"Description"
//	@Param			dynamicFields	formData	string								false	"JSON object of extra details"
//	@Param			images			formData	file								false	"Event photos"
//	@Success		200				{object}	campussdk.GenerateReportResponse	"report links"
//	@Failure		400				{object}	httpx.ErrorBody						"validation_error"
//	@Failure		401				{object}	httpx.ErrorBody						"invalid_token"
//	@Failure		404				{object}	httpx.ErrorBody						"not_found"
//	@Failure		413				{object}	httpx.ErrorBody						"payload_too_large"
//	@Failure		500				{object}	httpx.ErrorBody						"server_error"
//	@Router			/api/generate-report [post].
func (h *ReportsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.MaxUploadBytes); err != nil {
		writeFormError(w, err)
		return
	}

	in := service.GenerateReportInput{
		EventID:     r.FormValue("eventId"),
		Name:        r.FormValue("eventName"),
		Type:        r.FormValue("eventType"),
		Description: r.FormValue("description"),
	}
	if raw := strings.TrimSpace(r.FormValue("dynamicFields")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.DynamicFields); err != nil || in.DynamicFields == nil {
			writeBadRequest(w, "dynamicFields must be a JSON object")
			return
		}
	}

	for _, fh := range r.MultipartForm.File["images"] {
		data, err := readHeader(fh)
		if err != nil {
			writeServiceError(w, r, err, "Failed to read upload")
			return
		}
		in.Images = append(in.Images, service.ReportImage{FileName: fh.Filename, Data: data})
	}

	event, err := h.ReportService.GenerateEventReport(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to generate report")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.GenerateReportResponse{
		Success:   true,
		Message:   "Report generated successfully",
		ReportURL: event.ReportURL,
		WordURL:   event.ReportDocxURL,
	})
}
