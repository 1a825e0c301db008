package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/jmoiron/sqlx"
)

type eventsRepo struct {
	q queryer
}

type eventRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"event_name"`
	Type           string         `db:"event_type"`
	Description    string         `db:"description"`
	StartDate      string         `db:"start_date"`
	EndDate        sql.NullString `db:"end_date"`
	Department     string         `db:"department"`
	Status         string         `db:"status"`
	DynamicFields  string         `db:"dynamic_fields"`
	ReportURL      string         `db:"report_url"`
	ReportDocxURL  string         `db:"report_docx_url"`
	ReminderSentAt sql.NullString `db:"reminder_sent_at"`
	CreatedBy      string         `db:"created_by"`
	CreatedAt      string         `db:"created_at"`
	UpdatedAt      string         `db:"updated_at"`
}

const eventColumns = `id, event_name, event_type, description, start_date, end_date, department,
	status, dynamic_fields, report_url, report_docx_url, reminder_sent_at, created_by,
	created_at, updated_at`

// statusExpr derives the status for the date bound twice as its arguments.
// Dates are stored as YYYY-MM-DD so text comparison orders them correctly.
const statusExpr = `CASE
	WHEN ? > COALESCE(end_date, start_date) THEN 'Completed'
	WHEN ? >= start_date THEN 'Ongoing'
	ELSE 'Scheduled' END`

func mapEvent(row eventRow) domain.Event {
	e := domain.Event{
		ID:             row.ID,
		Name:           row.Name,
		Type:           row.Type,
		Description:    row.Description,
		StartDate:      parseDate(row.StartDate),
		EndDate:        parseNullDate(row.EndDate),
		Department:     row.Department,
		Status:         domain.EventStatus(row.Status),
		ReportURL:      row.ReportURL,
		ReportDocxURL:  row.ReportDocxURL,
		ReminderSentAt: parseNullTime(row.ReminderSentAt),
		CreatedBy:      row.CreatedBy,
		CreatedAt:      parseTime(row.CreatedAt),
		UpdatedAt:      parseTime(row.UpdatedAt),
	}
	if row.DynamicFields != "" {
		_ = json.Unmarshal([]byte(row.DynamicFields), &e.DynamicFields)
	}
	return e
}

func encodeFields(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	fields, err := encodeFields(e.DynamicFields)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Type, e.Description,
		formatDate(e.StartDate), formatNullDate(e.EndDate), e.Department,
		string(e.Status), fields, e.ReportURL, e.ReportDocxURL, sql.NullString{}, e.CreatedBy,
		formatTime(now), formatTime(now),
	)
	return mapConstraint(err)
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	var row eventRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return mapEvent(row), nil
}

func (r *eventsRepo) ListEvents(ctx context.Context, f store.EventFilter) ([]domain.Event, error) {
	var conds []string
	var args []any
	if f.Department != "" {
		conds = append(conds, "department = ?")
		args = append(args, f.Department)
	}
	if f.Status != "" {
		today := formatDate(domain.CivilDate(f.Today))
		conds = append(conds, "("+statusExpr+") = ?")
		args = append(args, today, today, string(f.Status))
	}
	if f.From != nil {
		conds = append(conds, "start_date >= ?")
		args = append(args, formatDate(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "start_date <= ?")
		args = append(args, formatDate(*f.To))
	}

	query := `SELECT ` + eventColumns + ` FROM events` + where(conds) + ` ORDER BY start_date DESC, id DESC`
	return r.selectEvents(ctx, query, args...)
}

func (r *eventsRepo) ListEventsByIDs(ctx context.Context, ids []string) ([]domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		`SELECT `+eventColumns+` FROM events WHERE id IN (?) ORDER BY start_date, id`, ids)
	if err != nil {
		return nil, err
	}
	return r.selectEvents(ctx, query, args...)
}

func (r *eventsRepo) selectEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	var rows []eventRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Event, len(rows))
	for i, row := range rows {
		out[i] = mapEvent(row)
	}
	return out, nil
}

func (r *eventsRepo) UpdateEventDetails(ctx context.Context, e domain.Event) error {
	fields, err := encodeFields(e.DynamicFields)
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx, `
		UPDATE events
		SET event_name = ?, event_type = ?, description = ?, dynamic_fields = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Type, e.Description, fields, formatTime(time.Now()), e.ID,
	)
	return expectOne(res, err)
}

func (r *eventsRepo) SetEventReport(ctx context.Context, id, pdfURL, docxURL string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE events SET report_url = ?, report_docx_url = ?, updated_at = ? WHERE id = ?`,
		pdfURL, docxURL, formatTime(time.Now()), id,
	)
	return expectOne(res, err)
}

func (r *eventsRepo) RefreshStatuses(ctx context.Context, today time.Time) (int64, error) {
	day := formatDate(domain.CivilDate(today))
	res, err := r.q.ExecContext(ctx, `
		UPDATE events SET status = `+statusExpr+`, updated_at = ?
		WHERE status <> (`+statusExpr+`)`,
		day, day, formatTime(time.Now()), day, day,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *eventsRepo) ListEventsNeedingReminder(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return r.selectEvents(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE reminder_sent_at IS NULL AND start_date BETWEEN ? AND ?
		ORDER BY start_date, id`,
		formatDate(from), formatDate(to),
	)
}

func (r *eventsRepo) MarkReminderSent(ctx context.Context, id string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE events SET reminder_sent_at = ? WHERE id = ?`, formatTime(at), id)
	return expectOne(res, err)
}

// expectOne maps a zero-row update to ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
