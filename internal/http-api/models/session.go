package models

import "time"

// Session is one continuous reading interval, opened by login and closed
// by an explicit end action. PagesRead is a snapshot overwritten on each
// update, not an accumulator.
type Session struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string     `gorm:"not null;index" json:"user_id"`
	SessionStart time.Time  `json:"session_start"`
	SessionEnd   *time.Time `json:"session_end,omitempty"`
	PagesRead    *int       `json:"pages_read"`
}

func (Session) TableName() string {
	return "sessions"
}
