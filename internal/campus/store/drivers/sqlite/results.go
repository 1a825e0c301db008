package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/jmoiron/sqlx"
)

type resultsRepo struct {
	q queryer
	// db is set outside a tx so reads spanning the catalog and a sheet
	// table can take their own snapshot.
	db *sqlx.DB
}

// Result table names are interpolated into SQL; refuse anything else.
var resultTableRe = regexp.MustCompile(`^student_results_[a-z][a-z0-9]{1,11}_\d{4}_\d{4}_s[1-8]$`)

type sheetRow struct {
	Department string `db:"department"`
	Batch      string `db:"batch"`
	Semester   int    `db:"semester"`
	TableName  string `db:"table_name"`
	Subjects   string `db:"subjects"`
	Students   int    `db:"students"`
	SourceFile string `db:"source_file"`
	UploadedBy string `db:"uploaded_by"`
	UploadedAt string `db:"uploaded_at"`
}

const sheetColumns = `department, batch, semester, table_name, subjects, students, source_file,
	uploaded_by, uploaded_at`

func mapSheetInfo(row sheetRow) (domain.SheetInfo, error) {
	batch, err := domain.ParseBatch(row.Batch)
	if err != nil {
		return domain.SheetInfo{}, fmt.Errorf("catalog row %s: %w", row.TableName, err)
	}
	var subjects []string
	if err := json.Unmarshal([]byte(row.Subjects), &subjects); err != nil {
		return domain.SheetInfo{}, fmt.Errorf("catalog row %s: subjects: %w", row.TableName, err)
	}
	return domain.SheetInfo{
		Key:        domain.SheetKey{Department: row.Department, Batch: batch, Semester: row.Semester},
		TableName:  row.TableName,
		Subjects:   subjects,
		Students:   row.Students,
		SourceFile: row.SourceFile,
		UploadedBy: row.UploadedBy,
		UploadedAt: parseTime(row.UploadedAt),
	}, nil
}

func tableFor(key domain.SheetKey) (string, error) {
	name := key.TableName()
	if !resultTableRe.MatchString(name) {
		return "", fmt.Errorf("store: refusing result table name %q", name)
	}
	return name, nil
}

func createResultTableSQL(table string, subjects int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `CREATE TABLE "%s" (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	roll_number  TEXT NOT NULL UNIQUE,
	student_name TEXT NOT NULL DEFAULT ''`, table)
	for i := range subjects {
		col := domain.SubjectColumn(i)
		fmt.Fprintf(&b, ",\n\t%s INTEGER NOT NULL DEFAULT 0 CHECK (%s BETWEEN %d AND %d)",
			col, col, domain.MinMark, domain.MaxMark)
	}
	b.WriteString("\n)")
	return b.String()
}

func subjectColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = domain.SubjectColumn(i)
	}
	return cols
}

func (r *resultsRepo) ReplaceSheet(ctx context.Context, sheet domain.ResultSheet) error {
	n := len(sheet.Subjects)
	if n == 0 || n > domain.MaxSubjects {
		return fmt.Errorf("store: sheet must have 1-%d subjects, got %d", domain.MaxSubjects, n)
	}
	table, err := tableFor(sheet.Key)
	if err != nil {
		return err
	}

	if _, err := r.q.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	if _, err := r.q.ExecContext(ctx, createResultTableSQL(table, n)); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	cols := append([]string{"roll_number", "student_name"}, subjectColumns(n)...)
	insert := fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES (?%s)`,
		table, strings.Join(cols, ", "), strings.Repeat(", ?", len(cols)-1))

	for _, st := range sheet.Students {
		args := make([]any, 0, len(cols))
		args = append(args, st.RollNumber, st.StudentName)
		for i := range n {
			m := 0
			if i < len(st.Marks) {
				m = st.Marks[i]
			}
			args = append(args, m)
		}
		if _, err := r.q.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("insert roll %s: %w", st.RollNumber, mapConstraint(err))
		}
	}

	subjects, err := json.Marshal(sheet.Subjects)
	if err != nil {
		return err
	}
	uploadedAt := sheet.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO result_sheets (department, batch, semester, table_name, subjects, students,
			source_file, fingerprint, uploaded_by, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (department, batch, semester) DO UPDATE SET
			subjects = excluded.subjects,
			students = excluded.students,
			source_file = excluded.source_file,
			fingerprint = excluded.fingerprint,
			uploaded_by = excluded.uploaded_by,
			uploaded_at = excluded.uploaded_at`,
		sheet.Key.Department, sheet.Key.Batch.String(), sheet.Key.Semester, table, string(subjects),
		len(sheet.Students), sheet.SourceFile, sheet.Fingerprint, sheet.UploadedBy, formatTime(uploadedAt),
	)
	return err
}

func (r *resultsRepo) GetSheet(ctx context.Context, key domain.SheetKey) (domain.ResultSheet, error) {
	if r.db == nil {
		return r.readSheet(ctx, key)
	}

	// The catalog row fixes the column count, so a concurrent re-upload
	// must not land between the two reads.
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.ResultSheet{}, err
	}
	defer func() { _ = tx.Rollback() }()
	return (&resultsRepo{q: tx}).readSheet(ctx, key)
}

func (r *resultsRepo) readSheet(ctx context.Context, key domain.SheetKey) (domain.ResultSheet, error) {
	var row sheetRow
	err := sqlx.GetContext(ctx, r.q, &row, `
		SELECT `+sheetColumns+` FROM result_sheets
		WHERE department = ? AND batch = ? AND semester = ?`,
		key.Department, key.Batch.String(), key.Semester)
	if err != nil {
		return domain.ResultSheet{}, mapNotFound(err)
	}
	info, err := mapSheetInfo(row)
	if err != nil {
		return domain.ResultSheet{}, err
	}
	table, err := tableFor(info.Key)
	if err != nil {
		return domain.ResultSheet{}, err
	}

	n := len(info.Subjects)
	query := fmt.Sprintf(`SELECT roll_number, student_name, %s FROM "%s" ORDER BY id`,
		strings.Join(subjectColumns(n), ", "), table)

	rows, err := r.q.QueryxContext(ctx, query)
	if err != nil {
		return domain.ResultSheet{}, err
	}
	defer rows.Close()

	sheet := domain.ResultSheet{
		Key:        info.Key,
		Subjects:   info.Subjects,
		SourceFile: info.SourceFile,
		UploadedBy: info.UploadedBy,
		UploadedAt: info.UploadedAt,
	}
	for rows.Next() {
		st := domain.StudentMarks{Marks: make([]int, n)}
		dest := make([]any, 0, n+2)
		dest = append(dest, &st.RollNumber, &st.StudentName)
		for i := range st.Marks {
			dest = append(dest, &st.Marks[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return domain.ResultSheet{}, err
		}
		sheet.Students = append(sheet.Students, st)
	}
	return sheet, rows.Err()
}

func (r *resultsRepo) ListSheets(ctx context.Context, f store.SheetFilter) ([]domain.SheetInfo, error) {
	var conds []string
	var args []any
	if f.Department != "" {
		conds = append(conds, "department = ?")
		args = append(args, f.Department)
	}
	if f.Batch != "" {
		conds = append(conds, "batch = ?")
		args = append(args, f.Batch)
	}

	var rows []sheetRow
	query := `SELECT ` + sheetColumns + ` FROM result_sheets` + where(conds) +
		` ORDER BY department, batch, semester`
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]domain.SheetInfo, 0, len(rows))
	for _, row := range rows {
		info, err := mapSheetInfo(row)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}
