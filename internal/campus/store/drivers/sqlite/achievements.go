package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/jmoiron/sqlx"
)

type achievementsRepo struct {
	q queryer
}

type achievementRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	UserID      sql.NullString `db:"user_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Date        string         `db:"date"`
	Category    string         `db:"category"`
	Department  string         `db:"department"`
	DocumentURL string         `db:"document_url"`
	Type        string         `db:"type"`
	CreatedAt   string         `db:"created_at"`
}

const achievementColumns = `id, name, user_id, title, description, date, category, department,
	document_url, type, created_at`

func mapAchievement(row achievementRow) domain.Achievement {
	return domain.Achievement{
		ID:          row.ID,
		Name:        row.Name,
		UserID:      mapNullString(row.UserID),
		Title:       row.Title,
		Description: row.Description,
		Date:        parseDate(row.Date),
		Category:    row.Category,
		Department:  row.Department,
		DocumentURL: row.DocumentURL,
		Type:        row.Type,
		CreatedAt:   parseTime(row.CreatedAt),
	}
}

func (r *achievementsRepo) CreateAchievement(ctx context.Context, a domain.Achievement) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO achievements (`+achievementColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, mapStringNull(a.UserID), a.Title, a.Description, formatDate(a.Date),
		a.Category, a.Department, a.DocumentURL, a.Type, formatTime(time.Now()),
	)
	return mapConstraint(err)
}

func (r *achievementsRepo) GetAchievementByID(ctx context.Context, id string) (domain.Achievement, error) {
	var row achievementRow
	err := sqlx.GetContext(ctx, r.q, &row,
		`SELECT `+achievementColumns+` FROM achievements WHERE id = ?`, id)
	if err != nil {
		return domain.Achievement{}, mapNotFound(err)
	}
	return mapAchievement(row), nil
}

func (r *achievementsRepo) ListAchievements(ctx context.Context, f store.AchievementFilter) ([]domain.Achievement, error) {
	var conds []string
	var args []any
	for _, c := range []struct{ col, val string }{
		{"type", f.Type},
		{"department", f.Department},
		{"category", f.Category},
	} {
		if c.val != "" {
			conds = append(conds, c.col+" = ?")
			args = append(args, c.val)
		}
	}
	if f.From != nil {
		conds = append(conds, "date >= ?")
		args = append(args, formatDate(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "date <= ?")
		args = append(args, formatDate(*f.To))
	}

	return r.selectAchievements(ctx,
		`SELECT `+achievementColumns+` FROM achievements`+where(conds)+` ORDER BY date DESC, id DESC`,
		args...)
}

func (r *achievementsRepo) ListAchievementsByIDs(ctx context.Context, ids []string) ([]domain.Achievement, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		`SELECT `+achievementColumns+` FROM achievements WHERE id IN (?) ORDER BY date, id`, ids)
	if err != nil {
		return nil, err
	}
	return r.selectAchievements(ctx, query, args...)
}

func (r *achievementsRepo) selectAchievements(ctx context.Context, query string, args ...any) ([]domain.Achievement, error) {
	var rows []achievementRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Achievement, len(rows))
	for i, row := range rows {
		out[i] = mapAchievement(row)
	}
	return out, nil
}
