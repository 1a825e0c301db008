// Package sheet reads uploaded result spreadsheets.
//
// The first row is a header: roll number, student name, then one column per
// subject. Every following row is a student. Marks are whole grade points
// between domain.MinMark and domain.MaxMark; an empty cell counts as zero.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/xuri/excelize/v2"
)

var (
	ErrEmpty       = errors.New("sheet is empty or has an invalid format")
	ErrLegacyXLS   = errors.New("legacy .xls files are not supported, save the sheet as .xlsx or .csv")
	ErrUnsupported = errors.New("unsupported file type, upload .xlsx or .csv")

	ErrTooManySubjects = errors.New("sheet has too many subject columns")
)

// CellError points at the offending cell using spreadsheet coordinates.
type CellError struct {
	Row    int    // 1-based, as shown by spreadsheet programs
	Column string // A, B, ...
	Header string
	Value  string
	Reason string
}

func (e *CellError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("row %d, column %s (%s): %s", e.Row, e.Column, e.Header, e.Reason)
	}
	return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.Reason)
}

// Parsed is the content of a sheet, ready to be keyed and stored.
type Parsed struct {
	Subjects []string
	Students []domain.StudentMarks
}

// Format picks the reader from the file extension.
func Format(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return "xlsx", nil
	case ".csv":
		return "csv", nil
	case ".xls":
		return "", ErrLegacyXLS
	default:
		return "", ErrUnsupported
	}
}

// Parse reads data as the format implied by filename.
func Parse(filename string, data []byte) (Parsed, error) {
	format, err := Format(filename)
	if err != nil {
		return Parsed{}, err
	}

	var rows [][]string
	switch format {
	case "xlsx":
		rows, err = readXLSX(data)
	case "csv":
		rows, err = readCSV(data)
	}
	if err != nil {
		return Parsed{}, err
	}
	return FromRows(rows)
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrEmpty
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// FromRows validates raw rows. It is exported for callers that already hold
// a grid, such as the CLI importer.
func FromRows(rows [][]string) (Parsed, error) {
	h := firstNonBlank(rows)
	if h < 0 {
		return Parsed{}, ErrEmpty
	}
	header := rows[h]

	subjects, err := parseHeader(header, h+1)
	if err != nil {
		return Parsed{}, err
	}

	out := Parsed{Subjects: subjects}
	seen := make(map[string]int)
	for i := h + 1; i < len(rows); i++ {
		row := rows[i]
		rowNum := i + 1

		roll := strings.TrimSpace(cell(row, 0))
		if roll == "" {
			continue
		}
		if first, dup := seen[roll]; dup {
			return Parsed{}, &CellError{
				Row: rowNum, Column: "A", Header: strings.TrimSpace(header[0]), Value: roll,
				Reason: fmt.Sprintf("roll number %s already appears in row %d", roll, first),
			}
		}
		seen[roll] = rowNum

		st := domain.StudentMarks{
			RollNumber:  roll,
			StudentName: strings.TrimSpace(cell(row, 1)),
			Marks:       make([]int, len(subjects)),
		}
		for j := range subjects {
			col := j + 2
			m, err := parseMark(cell(row, col))
			if err != nil {
				return Parsed{}, &CellError{
					Row: rowNum, Column: columnName(col), Header: subjects[j],
					Value: cell(row, col), Reason: err.Error(),
				}
			}
			st.Marks[j] = m
		}
		out.Students = append(out.Students, st)
	}

	if len(out.Students) == 0 {
		return Parsed{}, ErrEmpty
	}
	return out, nil
}

func parseHeader(header []string, rowNum int) ([]string, error) {
	// Trailing empty header cells are formatting leftovers.
	end := len(header)
	for end > 0 && strings.TrimSpace(header[end-1]) == "" {
		end--
	}
	if end < 3 {
		return nil, ErrEmpty
	}

	subjects := make([]string, 0, end-2)
	seen := make(map[string]bool)
	for col := 2; col < end; col++ {
		name := strings.Join(strings.Fields(header[col]), " ")
		if name == "" {
			return nil, &CellError{Row: rowNum, Column: columnName(col), Reason: "subject name is empty"}
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, &CellError{Row: rowNum, Column: columnName(col), Header: name, Reason: "subject appears twice"}
		}
		seen[key] = true
		subjects = append(subjects, name)
	}
	if len(subjects) > domain.MaxSubjects {
		return nil, fmt.Errorf("%w: found %d, at most %d are allowed", ErrTooManySubjects, len(subjects), domain.MaxSubjects)
	}
	return subjects, nil
}

func parseMark(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Spreadsheets like to render whole numbers as 9.0.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("%q is not a whole number", s)
		}
		n = int(f)
	}
	if n < domain.MinMark || n > domain.MaxMark {
		return 0, fmt.Errorf("mark %d is outside %d-%d", n, domain.MinMark, domain.MaxMark)
	}
	return n, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func firstNonBlank(rows [][]string) int {
	for i, r := range rows {
		for _, c := range r {
			if strings.TrimSpace(c) != "" {
				return i
			}
		}
	}
	return -1
}

func columnName(i int) string {
	name, err := excelize.ColumnNumberToName(i + 1)
	if err != nil {
		return strconv.Itoa(i + 1)
	}
	return name
}
