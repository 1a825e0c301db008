package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/jmoiron/sqlx"
)

type usersRepo struct {
	q queryer
}

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Department   string `db:"department"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
}

const userColumns = `id, username, email, password_hash, role, department, created_at, updated_at`

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		Department:   row.Department,
		CreatedAt:    parseTime(row.CreatedAt),
		UpdatedAt:    parseTime(row.UpdatedAt),
	}
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.Department,
		formatTime(u.CreatedAt), formatTime(now),
	)
	return mapConstraint(err)
}

func (r *usersRepo) CreateProfile(ctx context.Context, u domain.User, p domain.Profile) error {
	var err error
	switch u.Role {
	case domain.RoleStudent:
		_, err = r.q.ExecContext(ctx,
			`INSERT INTO student_info (user_id, student_id, year_of_study) VALUES (?, ?, ?)`,
			u.ID, p.StudentID, p.YearOfStudy)
	case domain.RoleFaculty:
		_, err = r.q.ExecContext(ctx,
			`INSERT INTO faculty_info (user_id, faculty_id, position) VALUES (?, ?, ?)`,
			u.ID, p.FacultyID, p.Position)
	case domain.RoleAdmin:
		dept := sql.NullString{}
		if p.AdminLevel == domain.AdminLevelDepartment {
			dept = mapStringNull(u.Department)
		}
		_, err = r.q.ExecContext(ctx,
			`INSERT INTO admin_info (user_id, admin_id, admin_level, department) VALUES (?, ?, ?, ?)`,
			u.ID, p.AdminID, string(p.AdminLevel), dept)
	default:
		return fmt.Errorf("store: unknown role %q", u.Role)
	}
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetProfile(ctx context.Context, u domain.User) (domain.Profile, error) {
	var p domain.Profile
	var err error

	switch u.Role {
	case domain.RoleStudent:
		var row struct {
			StudentID   string `db:"student_id"`
			YearOfStudy int    `db:"year_of_study"`
		}
		err = sqlx.GetContext(ctx, r.q, &row,
			`SELECT student_id, year_of_study FROM student_info WHERE user_id = ?`, u.ID)
		p.StudentID, p.YearOfStudy = row.StudentID, row.YearOfStudy
	case domain.RoleFaculty:
		var row struct {
			FacultyID string `db:"faculty_id"`
			Position  string `db:"position"`
		}
		err = sqlx.GetContext(ctx, r.q, &row,
			`SELECT faculty_id, position FROM faculty_info WHERE user_id = ?`, u.ID)
		p.FacultyID, p.Position = row.FacultyID, row.Position
	case domain.RoleAdmin:
		var row struct {
			AdminID    string `db:"admin_id"`
			AdminLevel string `db:"admin_level"`
		}
		err = sqlx.GetContext(ctx, r.q, &row,
			`SELECT admin_id, admin_level FROM admin_info WHERE user_id = ?`, u.ID)
		p.AdminID, p.AdminLevel = row.AdminID, domain.AdminLevel(row.AdminLevel)
	default:
		return p, fmt.Errorf("store: unknown role %q", u.Role)
	}
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *usersRepo) ListUsers(ctx context.Context, f store.UserFilter) ([]domain.User, error) {
	var conds []string
	var args []any
	if f.Department != "" {
		conds = append(conds, "department = ?")
		args = append(args, f.Department)
	}
	if f.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, string(f.Role))
	}

	var rows []userRow
	query := `SELECT ` + userColumns + ` FROM users` + where(conds) + ` ORDER BY username, id`
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = mapUser(row)
	}
	return out, nil
}

func (r *usersRepo) ListEmailsByDepartment(ctx context.Context, department string) ([]string, error) {
	var emails []string
	err := sqlx.SelectContext(ctx, r.q, &emails,
		`SELECT email FROM users WHERE department = ? ORDER BY email`, department)
	return emails, err
}
