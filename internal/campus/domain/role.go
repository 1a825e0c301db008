package domain

import "strings"

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Scopes carried in access tokens.
const (
	ScopeEventsRead        = "events:read"
	ScopeEventsWrite       = "events:write"
	ScopeAchievementsRead  = "achievements:read"
	ScopeAchievementsWrite = "achievements:write"
	ScopeResultsRead       = "results:read"
	ScopeResultsWrite      = "results:write"
	ScopeReportsRead       = "reports:read"
	ScopeReportsWrite      = "reports:write"
	ScopeAnnualWrite       = "annual:write"
	ScopeUsersRead         = "users:read"
)

var (
	studentScopes = []string{
		ScopeEventsRead,
		ScopeAchievementsRead,
		ScopeResultsRead,
		ScopeReportsRead,
	}
	facultyScopes = append(append([]string{}, studentScopes...),
		ScopeEventsWrite,
		ScopeAchievementsWrite,
		ScopeReportsWrite,
	)
	adminScopes = append(append([]string{}, facultyScopes...),
		ScopeResultsWrite,
		ScopeAnnualWrite,
		ScopeUsersRead,
	)
)

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return r, true
	}
	return "", false
}

// Scopes returns the scopes granted to the role. The slice is a copy.
func (r Role) Scopes() []string {
	var src []string
	switch r {
	case RoleStudent:
		src = studentScopes
	case RoleFaculty:
		src = facultyScopes
	case RoleAdmin:
		src = adminScopes
	}
	return append([]string(nil), src...)
}

type AdminLevel string

const (
	AdminLevelDepartment AdminLevel = "department"
	AdminLevelCollege    AdminLevel = "college"
)

func ParseAdminLevel(s string) (AdminLevel, bool) {
	switch l := AdminLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case AdminLevelDepartment, AdminLevelCollege:
		return l, true
	}
	return "", false
}
