package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. It exposes sub-repositories so
// a transaction-scoped Store can hand out the same repos bound to the tx.
type Store interface {
	Users() Users
	Events() Events
	Achievements() Achievements
	Results() Results
	AnnualReports() AnnualReports

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	// Inside fn only the tx argument may be used; the outer Store is not
	// part of the transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type UserFilter struct {
	Department string
	Role       domain.Role
}

type Users interface {
	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// CreateProfile stores the role-specific record of a user.
	CreateProfile(ctx context.Context, u domain.User, p domain.Profile) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetProfile(ctx context.Context, u domain.User) (domain.Profile, error)

	// ListUsers is ordered by username.
	ListUsers(ctx context.Context, f UserFilter) ([]domain.User, error)

	// ListEmailsByDepartment returns the addresses reminders go to.
	ListEmailsByDepartment(ctx context.Context, department string) ([]string, error)
}

type EventFilter struct {
	Department string

	// Status filters on the status derived for Today.
	Status domain.EventStatus
	Today  time.Time

	// From and To bound start_date, inclusive.
	From *time.Time
	To   *time.Time
}

type Events interface {
	CreateEvent(ctx context.Context, e domain.Event) error
	GetEventByID(ctx context.Context, id string) (domain.Event, error)

	// ListEvents is ordered by start date, newest first.
	ListEvents(ctx context.Context, f EventFilter) ([]domain.Event, error)
	ListEventsByIDs(ctx context.Context, ids []string) ([]domain.Event, error)

	UpdateEventDetails(ctx context.Context, e domain.Event) error
	SetEventReport(ctx context.Context, id, pdfURL, docxURL string) error

	// RefreshStatuses persists the status derived for today on every event
	// and returns how many rows changed.
	RefreshStatuses(ctx context.Context, today time.Time) (int64, error)

	// ListEventsNeedingReminder returns unreminded events starting in
	// [from, to].
	ListEventsNeedingReminder(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) error
}

type AchievementFilter struct {
	Type       string
	Department string
	Category   string
	From       *time.Time
	To         *time.Time
}

type Achievements interface {
	CreateAchievement(ctx context.Context, a domain.Achievement) error
	GetAchievementByID(ctx context.Context, id string) (domain.Achievement, error)

	// ListAchievements is ordered by date, newest first.
	ListAchievements(ctx context.Context, f AchievementFilter) ([]domain.Achievement, error)
	ListAchievementsByIDs(ctx context.Context, ids []string) ([]domain.Achievement, error)
}

type SheetFilter struct {
	Department string
	Batch      string
}

type Results interface {
	// ReplaceSheet drops any existing table for the sheet key, recreates it,
	// inserts every row and upserts the catalog entry. Run it inside a Tx so
	// readers never see a half-written sheet.
	ReplaceSheet(ctx context.Context, sheet domain.ResultSheet) error

	GetSheet(ctx context.Context, key domain.SheetKey) (domain.ResultSheet, error)
	ListSheets(ctx context.Context, f SheetFilter) ([]domain.SheetInfo, error)
}

type AnnualReports interface {
	// CreateAnnualReport returns ErrAlreadyExists for a year already reported.
	CreateAnnualReport(ctx context.Context, r domain.AnnualReport) error
	GetAnnualReport(ctx context.Context, academicYear string) (domain.AnnualReport, error)

	// ListAnnualReports returns every report, or only academicYear's when set.
	ListAnnualReports(ctx context.Context, academicYear string) ([]domain.AnnualReport, error)
}
