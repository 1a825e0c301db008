package http

import (
	"bytes"
	"net/http"

	"github.com/soh335/ical"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// EventsHandler handles the event endpoints.
type EventsHandler struct {
	EventService *service.EventService
}

// HandleList handles GET /api/events
//
//	@Summary		List events
//	@Description	Lists events by start date, newest first. Status is derived from today's date.
//	@Description	An id filter returns a one-element array, or an empty one when the event does not exist.
//	@Tags			Events
//	@Produce		json
//	@Param			department	query		string				false	"Department code"
//	@Param			id			query		string				false	"Event ID"
//	@Param			status		query		string				false	"Scheduled, Ongoing or Completed"
//	@Success		200			{array}		campussdk.Event		"events"
//	@Failure		400			{object}	httpx.ErrorBody		"validation_error"
//	@Router			/api/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := h.EventService.ListEvents(r.Context(), service.EventQuery{
		Department: q.Get("department"),
		ID:         q.Get("id"),
		Status:     q.Get("status"),
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to list events")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEvents(events))
}

// HandleGet handles GET /api/events/{id}
//
//	@Summary		Get event
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string			true	"Event ID"
//	@Success		200	{object}	campussdk.Event	"event"
//	@Failure		404	{object}	httpx.ErrorBody	"not_found"
//	@Router			/api/events/{id} [get].
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.EventService.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load event")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEvent(e))
}

// HandleCreate handles POST /api/events
//
//	@Summary		Create event
//	@Description	Creates an event. The department defaults to the caller's.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		campussdk.CreateEventRequest	true	"Event"
//	@Success		201		{object}	campussdk.Event					"created event"
//	@Failure		400		{object}	httpx.ErrorBody					"validation_error"
//	@Failure		401		{object}	httpx.ErrorBody					"invalid_token"
//	@Failure		403		{object}	httpx.ErrorBody					"insufficient_scope"
//	@Router			/api/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req campussdk.CreateEventRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	e, err := h.EventService.CreateEvent(r.Context(), principal(r), service.CreateEventInput{
		Name:          req.Name,
		Type:          req.Type,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Department:    req.Department,
		DynamicFields: req.DynamicFields,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to create event")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEvent(e))
}

// HandleCalendar handles GET /api/events.ics
//
//	@Summary		Event calendar
//	@Description	iCalendar feed of events as all-day entries, optionally for one department.
//	@Tags			Events
//	@Produce		text/calendar
//	@Param			department	query		string			false	"Department code"
//	@Success		200			{string}	string			"VCALENDAR"
//	@Failure		400			{object}	httpx.ErrorBody	"validation_error"
//	@Router			/api/events.ics [get].
func (h *EventsHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	dept := r.URL.Query().Get("department")
	events, err := h.EventService.ListEvents(r.Context(), service.EventQuery{Department: dept})
	if err != nil {
		writeServiceError(w, r, err, "Failed to list events")
		return
	}

	name := "Campus Events"
	if dept != "" && len(events) > 0 {
		name = events[0].Department + " Events"
	}

	cal := ical.NewBasicVCalendar()
	cal.PRODID = "-//AussieBroadWAN//Campus//EN"
	cal.VERSION = "2.0"
	cal.NAME = name
	cal.X_WR_CALNAME = name
	cal.DESCRIPTION = name
	cal.X_WR_CALDESC = name
	cal.TIMEZONE_ID = "UTC"
	cal.X_WR_TIMEZONE = "UTC"
	cal.REFRESH_INTERVAL = "PT1H"
	cal.X_PUBLISHED_TTL = "PT1H"
	cal.CALSCALE = "GREGORIAN"
	cal.METHOD = "PUBLISH"

	for _, e := range events {
		summary := e.Name
		if e.Type != "" {
			summary = "[" + e.Type + "] " + summary
		}
		cal.VComponent = append(cal.VComponent, &ical.VEvent{
			UID:         e.ID + "@campus",
			DTSTAMP:     e.UpdatedAt,
			DTSTART:     e.StartDate,
			DTEND:       e.LastDay().AddDate(0, 0, 1),
			SUMMARY:     summary,
			DESCRIPTION: e.Description,
			TZID:        "UTC",
			AllDay:      true,
		})
	}

	var buf bytes.Buffer
	if err := cal.Encode(&buf); err != nil {
		writeServiceError(w, r, err, "Failed to encode calendar")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
