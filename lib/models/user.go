package models

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string `gorm:"unique"`
	Password    string
	IsAdmin     bool
	LastLoginAt sql.NullTime

	Reminders []Reminder
	Reviews   []Review
}

// Session is a bearer token issued at login. Admin routes require a session
// belonging to an admin user.
type Session struct {
	gorm.Model
	Token  string `gorm:"unique"`
	UserID uint
	Expiry time.Time

	User User
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.Expiry)
}
