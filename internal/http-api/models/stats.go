package models

import "time"

// SessionStats aggregates a single user's reading sessions. Sessions with
// a NULL pages_read count as zero pages.
type SessionStats struct {
	TotalSessions      int64   `json:"total_sessions"`
	TotalPagesRead     int64   `json:"total_pages_read"`
	AvgPagesPerSession float64 `json:"avg_pages_per_session"`
}

// AdminTotals are the global counters shown on the admin panel.
type AdminTotals struct {
	TotalUsers            int64 `json:"total_users"`
	TotalSessions         int64 `json:"total_sessions"`
	TotalPagesRead        int64 `json:"total_pages_read"`
	TotalNameCombinations int64 `json:"total_name_combinations"`
}

// UserRollup is one row of the admin panel's per-user breakdown.
type UserRollup struct {
	UserID         string    `json:"user_id"`
	LibraryID      string    `json:"library_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccess     time.Time `json:"last_access"`
	AccessCount    int       `json:"access_count"`
	TotalPagesRead int64     `json:"total_pages_read"`
	TotalSessions  int64     `json:"total_sessions"`
}
