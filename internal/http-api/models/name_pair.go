package models

import "time"

// NamePair is a substituted character-name combination a reader applied to
// a book. At most one row exists per (user, female, male) triple; repeat
// use bumps UsageCount and refreshes CreatedAt.
type NamePair struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"not null;index" json:"user_id"`
	FemaleName string    `gorm:"not null" json:"female_name"`
	MaleName   string    `gorm:"not null" json:"male_name"`
	CreatedAt  time.Time `json:"created_at"`
	UsageCount int       `gorm:"default:1" json:"usage_count"`
}

func (NamePair) TableName() string {
	return "name_pairs"
}
