package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidAcademicYear = errors.New("academic year must look like 2023-2024")

// AcademicYear runs from June 1 of StartYear to May 31 of the next year.
type AcademicYear struct {
	StartYear int
}

func ParseAcademicYear(s string) (AcademicYear, error) {
	var from, to int
	if n, err := fmt.Sscanf(s, "%4d-%4d", &from, &to); err != nil || n != 2 {
		return AcademicYear{}, ErrInvalidAcademicYear
	}
	if len(s) != 9 || to != from+1 || from < 1900 {
		return AcademicYear{}, ErrInvalidAcademicYear
	}
	return AcademicYear{StartYear: from}, nil
}

// AcademicYearOf returns the academic year a date falls in.
func AcademicYearOf(t time.Time) AcademicYear {
	if t.Month() >= time.June {
		return AcademicYear{StartYear: t.Year()}
	}
	return AcademicYear{StartYear: t.Year() - 1}
}

func (y AcademicYear) String() string {
	return fmt.Sprintf("%d-%d", y.StartYear, y.StartYear+1)
}

// First is June 1 of the start year.
func (y AcademicYear) First() time.Time {
	return time.Date(y.StartYear, time.June, 1, 0, 0, 0, 0, time.UTC)
}

// Last is May 31 of the following year.
func (y AcademicYear) Last() time.Time {
	return time.Date(y.StartYear+1, time.May, 31, 0, 0, 0, 0, time.UTC)
}

func (y AcademicYear) Contains(t time.Time) bool {
	d := CivilDate(t)
	return !d.Before(y.First()) && !d.After(y.Last())
}
