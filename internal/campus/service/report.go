package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/docgen"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/drafting"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// MaxReportImages is how many photos one event report may carry.
const MaxReportImages = 5

type ReportImage struct {
	FileName string
	Data     []byte
}

// GenerateReportInput updates the event before drafting. Empty fields keep
// the stored value; a nil DynamicFields keeps the stored fields.
type GenerateReportInput struct {
	EventID       string
	Name          string
	Type          string
	Description   string
	DynamicFields map[string]any
	Images        []ReportImage
}

type ReportService struct {
	Store         store.Store
	Drafter       drafting.Drafter
	Dir           string
	PublicBaseURL string
	Clock         Clock
}

// GenerateEventReport drafts the report of an event and writes it as PDF
// and DOCX. The returned event carries the report URLs.
func (s *ReportService) GenerateEventReport(ctx context.Context, in GenerateReportInput) (domain.Event, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(in.EventID) == "" {
		return domain.Event{}, invalidField("eventId", "Event ID is required")
	}
	images, err := reportImages(in.Images)
	if err != nil {
		return domain.Event{}, err
	}

	var event domain.Event
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.Events().GetEventByID(ctx, in.EventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if v := strings.TrimSpace(in.Name); v != "" {
			e.Name = v
		}
		if v := strings.TrimSpace(in.Type); v != "" {
			e.Type = v
		}
		if v := strings.TrimSpace(in.Description); v != "" {
			e.Description = v
		}
		if in.DynamicFields != nil {
			e.DynamicFields = in.DynamicFields
		}
		event = e
		return tx.Events().UpdateEventDetails(ctx, e)
	})
	if err != nil {
		return domain.Event{}, err
	}

	prompt, err := drafting.EventPrompt(event)
	if err != nil {
		return domain.Event{}, err
	}
	text, err := s.Drafter.Draft(ctx, prompt)
	if err != nil {
		log.Error("failed to draft event report", slog.String("event_id", event.ID), slog.Any("error", err))
		return domain.Event{}, fmt.Errorf("%w: %v", ErrDraftFailed, err)
	}

	doc := docgen.Document{
		Title:  "Event Report",
		Blocks: docgen.Segment(docgen.CleanDraft(text)),
		Images: images,
	}
	pdfName, docxName, err := docgen.WriteReport(s.Dir, event.ID, doc)
	if err != nil {
		log.Error("failed to render event report", slog.String("event_id", event.ID), slog.Any("error", err))
		return domain.Event{}, err
	}

	event.ReportURL = publicURL(s.PublicBaseURL, "reports", pdfName)
	event.ReportDocxURL = publicURL(s.PublicBaseURL, "reports", docxName)
	if err := s.Store.Events().SetEventReport(ctx, event.ID, event.ReportURL, event.ReportDocxURL); err != nil {
		return domain.Event{}, err
	}
	event.Status = event.StatusOn(s.Clock.now())

	log.Info("event report generated", slog.String("event_id", event.ID), slog.Int("images", len(images)))
	return event, nil
}

// reportImages sniffs each upload and keeps only PNG and JPEG files.
func reportImages(in []ReportImage) ([]docgen.Image, error) {
	if len(in) > MaxReportImages {
		return nil, invalidField("images", fmt.Sprintf("At most %d images are allowed", MaxReportImages))
	}
	out := make([]docgen.Image, 0, len(in))
	for _, img := range in {
		var typ string
		switch http.DetectContentType(img.Data) {
		case "image/png":
			typ = "PNG"
		case "image/jpeg":
			typ = "JPG"
		default:
			return nil, invalidField("images", fmt.Sprintf("%s is not a PNG or JPEG image", img.FileName))
		}
		out = append(out, docgen.Image{Name: img.FileName, Type: typ, Data: img.Data})
	}
	return out, nil
}

// publicURL joins base with the escaped path elements. A relative path is
// returned when base is empty.
func publicURL(base string, elem ...string) string {
	parts := make([]string, len(elem))
	for i, e := range elem {
		parts[i] = url.PathEscape(e)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
