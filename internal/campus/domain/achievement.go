package domain

import "time"

type Achievement struct {
	ID          string
	Name        string // person or team credited
	UserID      string // optional link to a registered user
	Title       string
	Description string
	Date        time.Time // civil date
	Category    string
	Department  string
	DocumentURL string
	Type        string // e.g. "student", "faculty"
	CreatedAt   time.Time
}
