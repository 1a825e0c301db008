package service

import (
	"context"
	"errors"
	"net/mail"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	campusmail "github.com/aussiebroadwan/campus/internal/campus/mail"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type failingSender struct{}

func (failingSender) Send(context.Context, campusmail.Message) error {
	return errors.New("smtp unavailable")
}

func addUser(t *testing.T, events *EventService, email, dept string) {
	t.Helper()
	require.NoError(t, events.Store.Users().CreateUser(ctx, domain.User{
		ID: idx.New().String(), Username: email, Email: email,
		PasswordHash: "x", Role: domain.RoleStudent, Department: dept,
	}))
}

func newTestScheduler(t *testing.T, sender campusmail.Sender) (*Scheduler, *EventService) {
	t.Helper()
	events, _ := services(t)
	s, err := NewScheduler(events.Store, events, sender, slogx.Discard(), SchedulerConfig{})
	require.NoError(t, err)
	return s, events
}

func TestSendReminders(t *testing.T) {
	console := campusmail.NewConsole(mail.Address{Address: "noreply@college.edu"}, "[Campus] ")
	s, events := newTestScheduler(t, console)

	addUser(t, events, "asha@college.edu", "CSE")
	addUser(t, events, "bala@college.edu", "CSE")
	addUser(t, events, "rao@college.edu", "ECE")

	mk := func(p domain.Principal, name, start string) domain.Event {
		e, err := events.CreateEvent(ctx, p, CreateEventInput{Name: name, StartDate: start})
		require.NoError(t, err)
		return e
	}
	tomorrow := mk(cseFaculty, "Hackathon", "2024-03-12")
	mk(cseFaculty, "Symposium", "2024-04-01")
	mk(cseFaculty, "Seminar", "2024-03-01")
	mk(domain.Principal{UserID: "x", Department: "MECH"}, "Robotics", "2024-03-11")

	n, err := s.SendReminders(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n, "departments without users are still marked")

	sent := console.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "Reminder: Hackathon on 12 Mar", sent[0].Subject)
	require.Len(t, sent[0].Bcc, 2)
	require.Empty(t, sent[0].To)
	require.Contains(t, sent[0].Text, `"Hackathon" organised by the CSE department starts on Tuesday, 12 March 2024.`)

	stored, err := events.Store.Events().GetEventByID(ctx, tomorrow.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ReminderSentAt)

	n, err = s.SendReminders(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Len(t, console.Sent(), 1)
}

func TestSendRemindersRetriesFailures(t *testing.T) {
	s, events := newTestScheduler(t, failingSender{})
	addUser(t, events, "asha@college.edu", "CSE")

	e, err := events.CreateEvent(ctx, cseFaculty, CreateEventInput{Name: "Expo", StartDate: "2024-03-12"})
	require.NoError(t, err)

	n, err := s.SendReminders(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), e.ID)
	require.Zero(t, n)

	console := campusmail.NewConsole(mail.Address{Address: "noreply@college.edu"}, "")
	s.Mailer = console
	n, err = s.SendReminders(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Len(t, console.Sent(), 1)
}

func TestSchedulerStartStop(t *testing.T) {
	s, events := newTestScheduler(t, campusmail.NewConsole(mail.Address{Address: "a@b.c"}, ""))
	e, err := events.CreateEvent(ctx, cseFaculty, CreateEventInput{Name: "Expo", StartDate: "2024-03-12"})
	require.NoError(t, err)

	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	// Moving the clock makes the startup refresh persist a new status.
	s.Clock = func() time.Time { return today.AddDate(0, 0, 1) }
	s.Events.Clock = s.Clock
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()

	stored, err := events.Store.Events().GetEventByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOngoing, stored.Status)
}

func TestSchedulerRestart(t *testing.T) {
	s, events := newTestScheduler(t, campusmail.NewConsole(mail.Address{Address: "noreply@college.edu"}, ""))
	e, err := events.CreateEvent(ctx, cseFaculty, CreateEventInput{Name: "Seminar", StartDate: "2024-03-12"})
	require.NoError(t, err)

	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s.Start()
	s.Stop()
	require.NotPanics(t, func() {
		s.Clock = func() time.Time { return today.AddDate(0, 0, 1) }
		s.Events.Clock = s.Clock
		s.Start()
		s.Stop()
	})

	// The second start ran its refresh with a live context.
	stored, err := events.Store.Events().GetEventByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOngoing, stored.Status)
}

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	events, _ := services(t)
	_, err := NewScheduler(events.Store, events, campusmail.NewConsole(mail.Address{}, ""), slogx.Discard(),
		SchedulerConfig{ReminderSpec: "every morning"})
	require.ErrorContains(t, err, "every morning")
}
