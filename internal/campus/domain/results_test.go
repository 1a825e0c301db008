package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	b, err := ParseBatch("2021-2025")
	require.NoError(t, err)
	require.Equal(t, Batch{From: 2021, To: 2025}, b)
	require.Equal(t, "2021-2025", b.String())

	for _, bad := range []string{"", "2021", "2025-2021", "21-25", "2021-2035", "abcd-efgh", "2021-2025; DROP"} {
		_, err := ParseBatch(bad)
		require.ErrorIs(t, err, ErrInvalidBatch, bad)
	}
}

func TestParseSemester(t *testing.T) {
	for in, want := range map[string]int{"3": 3, "Sem3": 3, "sem 8": 8, "SEM-1": 1, " 5 ": 5} {
		got, err := ParseSemester(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "0", "9", "Sem", "third"} {
		_, err := ParseSemester(bad)
		require.ErrorIs(t, err, ErrInvalidSemester, bad)
	}
}

func TestSheetKeyTableName(t *testing.T) {
	k, err := NewSheetKey("cse", "2021-2025", "Sem3")
	require.NoError(t, err)
	require.Equal(t, "CSE", k.Department)
	require.Equal(t, "student_results_cse_2021_2025_s3", k.TableName())

	_, err = NewSheetKey("cs e", "2021-2025", "3")
	require.ErrorIs(t, err, ErrInvalidDepartment)
}

func TestSubjectColumn(t *testing.T) {
	require.Equal(t, "sub_01", SubjectColumn(0))
	require.Equal(t, "sub_12", SubjectColumn(11))
}

func TestNormalizeDepartment(t *testing.T) {
	code, err := NormalizeDepartment(" mech ")
	require.NoError(t, err)
	require.Equal(t, "MECH", code)

	for _, bad := range []string{"", "C", "1CSE", "CSE;--", "ABCDEFGHIJKLMN"} {
		_, err := NormalizeDepartment(bad)
		require.ErrorIs(t, err, ErrInvalidDepartment, bad)
	}
}

func TestRoleScopes(t *testing.T) {
	r, ok := ParseRole("Faculty")
	require.True(t, ok)
	require.Equal(t, RoleFaculty, r)

	require.Contains(t, RoleStudent.Scopes(), ScopeEventsRead)
	require.NotContains(t, RoleStudent.Scopes(), ScopeEventsWrite)
	require.Contains(t, RoleFaculty.Scopes(), ScopeEventsWrite)
	require.NotContains(t, RoleFaculty.Scopes(), ScopeResultsWrite)
	require.Contains(t, RoleAdmin.Scopes(), ScopeResultsWrite)
	require.Contains(t, RoleAdmin.Scopes(), ScopeAnnualWrite)

	_, ok = ParseRole("dean")
	require.False(t, ok)
}

func TestPrincipalCanManageDepartment(t *testing.T) {
	college := Principal{Role: RoleAdmin, AdminLevel: AdminLevelCollege}
	deptAdmin := Principal{Role: RoleAdmin, AdminLevel: AdminLevelDepartment, Department: "CSE"}

	require.True(t, college.CanManageDepartment("ECE"))
	require.True(t, deptAdmin.CanManageDepartment("CSE"))
	require.False(t, deptAdmin.CanManageDepartment("ECE"))
	require.False(t, Principal{}.CanManageDepartment(""))
}
