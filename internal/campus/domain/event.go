package domain

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

type EventStatus string

const (
	StatusScheduled EventStatus = "Scheduled"
	StatusOngoing   EventStatus = "Ongoing"
	StatusCompleted EventStatus = "Completed"
)

func ParseEventStatus(s string) (EventStatus, bool) {
	for _, st := range []EventStatus{StatusScheduled, StatusOngoing, StatusCompleted} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

type Event struct {
	ID             string
	Name           string
	Type           string
	Description    string
	StartDate      time.Time  // civil date, UTC midnight
	EndDate        *time.Time // nil for single-day events
	Department     string
	Status         EventStatus
	DynamicFields  map[string]any
	ReportURL      string
	ReportDocxURL  string
	ReminderSentAt *time.Time
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LastDay is the end date, or the start date for single-day events.
func (e Event) LastDay() time.Time {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.StartDate
}

// StatusOn derives the status for the given day.
func (e Event) StatusOn(today time.Time) EventStatus {
	day := CivilDate(today)
	switch {
	case day.After(e.LastDay()):
		return StatusCompleted
	case !day.Before(e.StartDate):
		return StatusOngoing
	default:
		return StatusScheduled
	}
}

// CivilDate drops the clock, keeping the calendar date of t in its own
// location, and returns it as UTC midnight.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CivilDate(t), nil
	}
	return time.Time{}, ErrInvalidDate
}
