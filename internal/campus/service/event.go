package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type CreateEventInput struct {
	Name          string         `json:"event_name" validate:"notblank,max=200"`
	Type          string         `json:"event_type" validate:"max=100"`
	Description   string         `json:"description" validate:"max=10000"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	Department    string         `json:"department"`
	DynamicFields map[string]any `json:"dynamic_fields"`
}

type EventQuery struct {
	Department string
	ID         string
	Status     string
}

type EventService struct {
	Store   store.Store
	Catalog *catalog.Catalog
	Clock   Clock
}

func (s *EventService) CreateEvent(ctx context.Context, p domain.Principal, in CreateEventInput) (domain.Event, error) {
	log := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return domain.Event{}, err
	}

	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return domain.Event{}, invalidField("start_date", "Invalid start date")
	}
	var end *time.Time
	if strings.TrimSpace(in.EndDate) != "" {
		e, err := domain.ParseDate(in.EndDate)
		if err != nil {
			return domain.Event{}, invalidField("end_date", "Invalid end date")
		}
		if e.Before(start) {
			return domain.Event{}, invalidField("end_date", "End date cannot be before start date")
		}
		end = &e
	}

	deptCode := in.Department
	if strings.TrimSpace(deptCode) == "" {
		deptCode = p.Department
	}
	dept, err := s.Catalog.Lookup(deptCode)
	if err != nil {
		return domain.Event{}, invalidField("department", "Invalid department")
	}

	e := domain.Event{
		ID:            idx.New().String(),
		Name:          in.Name,
		Type:          strings.TrimSpace(in.Type),
		Description:   strings.TrimSpace(in.Description),
		StartDate:     start,
		EndDate:       end,
		Department:    dept.Code,
		DynamicFields: in.DynamicFields,
		CreatedBy:     p.UserID,
	}
	e.Status = e.StatusOn(s.Clock.now())

	if err := s.Store.Events().CreateEvent(ctx, e); err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return domain.Event{}, err
	}
	log.Info("event created", slog.String("event_id", e.ID), slog.String("department", e.Department))

	return s.GetEvent(ctx, e.ID)
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	e, err := s.Store.Events().GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, err
	}
	e.Status = e.StatusOn(s.Clock.now())
	return e, nil
}

// ListEvents returns events newest first. An id filter yields at most one
// event and ignores the other filters.
func (s *EventService) ListEvents(ctx context.Context, q EventQuery) ([]domain.Event, error) {
	if id := strings.TrimSpace(q.ID); id != "" {
		e, err := s.GetEvent(ctx, id)
		if errors.Is(err, ErrEventNotFound) {
			return []domain.Event{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []domain.Event{e}, nil
	}

	now := s.Clock.now()
	f := store.EventFilter{Today: now}
	if q.Department != "" {
		dept, err := s.Catalog.Lookup(q.Department)
		if err != nil {
			return nil, invalidField("department", "Invalid department")
		}
		f.Department = dept.Code
	}
	if q.Status != "" {
		st, ok := domain.ParseEventStatus(q.Status)
		if !ok {
			return nil, invalidField("status", "status must be one of [Scheduled Ongoing Completed]")
		}
		f.Status = st
	}

	events, err := s.Store.Events().ListEvents(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Status = events[i].StatusOn(now)
	}
	return events, nil
}

// EventsInYear lists the events starting inside an academic year.
func (s *EventService) EventsInYear(ctx context.Context, year domain.AcademicYear) ([]domain.Event, error) {
	from, to := year.First(), year.Last()
	events, err := s.Store.Events().ListEvents(ctx, store.EventFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	now := s.Clock.now()
	for i := range events {
		events[i].Status = events[i].StatusOn(now)
	}
	return events, nil
}

// RefreshStatuses persists today's derived status on every event.
func (s *EventService) RefreshStatuses(ctx context.Context) (int64, error) {
	n, err := s.Store.Events().RefreshStatuses(ctx, s.Clock.now())
	if err != nil {
		return 0, err
	}
	slogx.FromContext(ctx).Info("event statuses refreshed", slog.Int64("changed", n))
	return n, nil
}
