package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string // lowercased, unique
	PasswordHash string // argon2id PHC
	Role         Role
	Department   string // empty for college-level admins
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the role-specific record of a user. Only the fields that
// belong to the user's role are set.
type Profile struct {
	// student
	StudentID   string
	YearOfStudy int

	// faculty
	FacultyID string
	Position  string

	// admin
	AdminID    string
	AdminLevel AdminLevel
}

// Principal is the authenticated caller as seen by services.
type Principal struct {
	UserID     string
	Role       Role
	Department string
	AdminLevel AdminLevel
}

// CanManageDepartment reports whether the caller may change data owned by
// dept. College-level admins may change anything; everyone else is limited
// to their own department.
func (p Principal) CanManageDepartment(dept string) bool {
	if p.Role == RoleAdmin && p.AdminLevel == AdminLevelCollege {
		return true
	}
	return p.Department != "" && p.Department == dept
}

// CanCreateAdmins reports whether the caller may open admin accounts.
func (p Principal) CanCreateAdmins() bool {
	return p.Role == RoleAdmin && p.AdminLevel == AdminLevelCollege
}
