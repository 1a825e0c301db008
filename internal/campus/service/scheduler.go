package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"text/template"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/mail"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const (
	DefaultStatusSpec   = "5 0 * * *"
	DefaultReminderSpec = "0 8 * * *"

	// reminderSendLimit bounds concurrent reminder deliveries.
	reminderSendLimit = 4
)

var reminderTmpl = template.Must(template.New("reminder").Parse(
	`Hello,

This is a reminder that "{{.Name}}" organised by the {{.Department}} department starts on {{.Start}}.
{{- with .Type}}
Type: {{.}}
{{- end}}
{{- with .Description}}

{{.}}
{{- end}}

See you there.
`))

type SchedulerConfig struct {
	StatusSpec   string
	ReminderSpec string

	// LeadDays is how many days ahead reminders look. Zero means 1.
	LeadDays int
	Location *time.Location
}

// Scheduler runs the periodic jobs: persisting event statuses and emailing
// reminders for upcoming events.
type Scheduler struct {
	Store  store.Store
	Events *EventService
	Mailer mail.Sender
	Logger *slog.Logger
	Clock  Clock

	leadDays int
	cron     *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	doneCh  chan struct{}
}

// NewScheduler registers the jobs. Invalid cron specs are reported here
// rather than on Start.
func NewScheduler(st store.Store, events *EventService, mailer mail.Sender, logger *slog.Logger, cfg SchedulerConfig) (*Scheduler, error) {
	if cfg.StatusSpec == "" {
		cfg.StatusSpec = DefaultStatusSpec
	}
	if cfg.ReminderSpec == "" {
		cfg.ReminderSpec = DefaultReminderSpec
	}
	if cfg.LeadDays <= 0 {
		cfg.LeadDays = 1
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	s := &Scheduler{
		Store:    st,
		Events:   events,
		Mailer:   mailer,
		Logger:   logger,
		Clock:    events.Clock,
		leadDays: cfg.LeadDays,
	}
	s.ctx, s.cancel = context.WithCancel(slogx.WithContext(context.Background(), logger))

	cl := cronLogger{logger}
	s.cron = cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := s.cron.AddFunc(cfg.StatusSpec, s.refreshStatuses); err != nil {
		return nil, fmt.Errorf("status schedule %q: %w", cfg.StatusSpec, err)
	}
	if _, err := s.cron.AddFunc(cfg.ReminderSpec, s.sendReminders); err != nil {
		return nil, fmt.Errorf("reminder schedule %q: %w", cfg.ReminderSpec, err)
	}
	return s, nil
}

// Start runs a status refresh right away and then hands the jobs to cron.
// It does not block. A stopped scheduler may be started again.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	s.ctx, s.cancel = context.WithCancel(slogx.WithContext(context.Background(), s.Logger))
	done := make(chan struct{})
	s.doneCh = done

	s.cron.Start()
	go func() {
		defer close(done)
		s.refreshStatuses()
	}()
	s.Logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.cancel()
		return
	}
	s.started = false

	<-s.cron.Stop().Done()
	<-s.doneCh
	s.cancel()
	s.Logger.Info("scheduler stopped")
}

func (s *Scheduler) refreshStatuses() {
	if _, err := s.Events.RefreshStatuses(s.ctx); err != nil {
		s.Logger.Error("failed to refresh event statuses", "error", err)
	}
}

func (s *Scheduler) sendReminders() {
	if _, err := s.SendReminders(s.ctx); err != nil {
		s.Logger.Error("reminder run finished with errors", "error", err)
	}
}

// SendReminders emails the department of every unreminded event starting
// within the lead window and marks the event reminded. It returns how many
// events were handled; failures are joined and the events retried next run.
func (s *Scheduler) SendReminders(ctx context.Context) (int, error) {
	log := slogx.FromContext(ctx)

	now := s.Clock.now()
	today := domain.CivilDate(now)
	until := today.AddDate(0, 0, s.leadDays)

	events, err := s.Store.Events().ListEventsNeedingReminder(ctx, today, until)
	if err != nil {
		return 0, err
	}

	var (
		mu   sync.Mutex
		errs []error
		done int
	)
	g := new(errgroup.Group)
	g.SetLimit(reminderSendLimit)
	for _, e := range events {
		g.Go(func() error {
			if err := s.remind(ctx, e, now); err != nil {
				log.Warn("reminder failed", slog.String("event_id", e.ID), slog.Any("error", err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
				mu.Unlock()
				return nil
			}
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	log.Info("reminders processed", slog.Int("events", len(events)), slog.Int("sent", done))
	return done, errors.Join(errs...)
}

func (s *Scheduler) remind(ctx context.Context, e domain.Event, now time.Time) error {
	emails, err := s.Store.Users().ListEmailsByDepartment(ctx, e.Department)
	if err != nil {
		return err
	}

	if len(emails) > 0 {
		var body bytes.Buffer
		err := reminderTmpl.Execute(&body, map[string]string{
			"Name":        e.Name,
			"Department":  e.Department,
			"Start":       e.StartDate.Format("Monday, 2 January 2006"),
			"Type":        e.Type,
			"Description": e.Description,
		})
		if err != nil {
			return err
		}
		msg := mail.Message{
			Bcc:     mail.Addresses(emails...),
			Subject: fmt.Sprintf("Reminder: %s on %s", e.Name, e.StartDate.Format("2 Jan")),
			Text:    body.String(),
		}
		if err := s.Mailer.Send(ctx, msg); err != nil {
			return err
		}
	}
	return s.Store.Events().MarkReminderSent(ctx, e.ID, now)
}

// cronLogger routes cron's own logging through slog.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, kv ...any) { c.l.Debug("cron: "+msg, kv...) }

func (c cronLogger) Error(err error, msg string, kv ...any) {
	c.l.Error("cron: "+msg, append(kv, "error", err)...)
}
