package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinMark = 0
	MaxMark = 10

	// MaxSubjects bounds the number of sub_NN columns in a result table.
	MaxSubjects = 60

	MinSemester = 1
	MaxSemester = 8
)

var (
	ErrInvalidBatch    = errors.New("batch must look like 2021-2025")
	ErrInvalidSemester = errors.New("semester must be 1-8 or Sem1-Sem8")
)

// Batch is an intake cohort, e.g. 2021-2025.
type Batch struct {
	From int
	To   int
}

func ParseBatch(s string) (Batch, error) {
	s = strings.TrimSpace(s)
	a, b, ok := strings.Cut(s, "-")
	if !ok || len(a) != 4 || len(b) != 4 {
		return Batch{}, ErrInvalidBatch
	}
	from, err1 := strconv.Atoi(a)
	to, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil || from < 1900 || to <= from || to-from > 6 {
		return Batch{}, ErrInvalidBatch
	}
	return Batch{From: from, To: to}, nil
}

func (b Batch) String() string { return fmt.Sprintf("%d-%d", b.From, b.To) }

// ParseSemester accepts "3", "Sem3", "sem 3" or "SEM-3".
func ParseSemester(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "sem")
	s = strings.TrimLeft(s, " -_")
	n, err := strconv.Atoi(s)
	if err != nil || n < MinSemester || n > MaxSemester {
		return 0, ErrInvalidSemester
	}
	return n, nil
}

// SheetKey identifies one uploaded result sheet.
type SheetKey struct {
	Department string
	Batch      Batch
	Semester   int
}

func NewSheetKey(department, batch, semester string) (SheetKey, error) {
	dept, err := NormalizeDepartment(department)
	if err != nil {
		return SheetKey{}, err
	}
	b, err := ParseBatch(batch)
	if err != nil {
		return SheetKey{}, err
	}
	sem, err := ParseSemester(semester)
	if err != nil {
		return SheetKey{}, err
	}
	return SheetKey{Department: dept, Batch: b, Semester: sem}, nil
}

// TableName is the SQL table holding the sheet's rows. Every part has been
// validated, so the result is a safe identifier.
func (k SheetKey) TableName() string {
	return fmt.Sprintf("student_results_%s_%d_%d_s%d",
		strings.ToLower(k.Department), k.Batch.From, k.Batch.To, k.Semester)
}

func (k SheetKey) String() string {
	return fmt.Sprintf("%s %s sem %d", k.Department, k.Batch, k.Semester)
}

// SubjectColumn is the positional column for subject i (0-based).
func SubjectColumn(i int) string {
	return fmt.Sprintf("sub_%02d", i+1)
}

type StudentMarks struct {
	RollNumber  string
	StudentName string
	Marks       []int // aligned with ResultSheet.Subjects
}

type ResultSheet struct {
	Key         SheetKey
	Subjects    []string
	Students    []StudentMarks
	SourceFile  string
	Fingerprint string
	UploadedBy  string
	UploadedAt  time.Time
}

// SheetInfo is the catalog entry of a stored sheet without its rows.
type SheetInfo struct {
	Key        SheetKey
	TableName  string
	Subjects   []string
	Students   int
	SourceFile string
	UploadedBy string
	UploadedAt time.Time
}
