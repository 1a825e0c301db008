package domain

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidDepartment = errors.New("invalid department code")

// Department codes end up in result table names, so the charset is strict.
var departmentCodeRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,11}$`)

type Department struct {
	Code string
	Name string
}

// NormalizeDepartment upper-cases and validates a department code.
func NormalizeDepartment(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !departmentCodeRe.MatchString(code) {
		return "", ErrInvalidDepartment
	}
	return code, nil
}
