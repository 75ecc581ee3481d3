package dto

import (
	"time"

	"ebooklib/internal/http-api/models"
	"ebooklib/internal/http-api/service"
)

type UserInfo struct {
	LibraryID   string    `json:"library_id"`
	CreatedAt   time.Time `json:"created_at"`
	LastAccess  time.Time `json:"last_access"`
	AccessCount int       `json:"access_count"`
}

type NameUsed struct {
	FemaleName string    `json:"female_name"`
	MaleName   string    `json:"male_name"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserStatsResponse struct {
	Success      bool                `json:"success"`
	User         UserInfo            `json:"user"`
	NamesUsed    []NameUsed          `json:"names_used"`
	SessionStats models.SessionStats `json:"session_stats"`
}

type AdminStatsResponse struct {
	Success bool                `json:"success"`
	Stats   models.AdminTotals  `json:"stats"`
	Users   []models.UserRollup `json:"users"`
}

func FromUserStats(stats *service.UserStats) UserStatsResponse {
	names := make([]NameUsed, 0, len(stats.NamesUsed))
	for _, pair := range stats.NamesUsed {
		names = append(names, NameUsed{
			FemaleName: pair.FemaleName,
			MaleName:   pair.MaleName,
			UsageCount: pair.UsageCount,
			CreatedAt:  pair.CreatedAt,
		})
	}
	return UserStatsResponse{
		Success: true,
		User: UserInfo{
			LibraryID:   stats.User.LibraryID,
			CreatedAt:   stats.User.CreatedAt,
			LastAccess:  stats.User.LastAccess,
			AccessCount: stats.User.AccessCount,
		},
		NamesUsed:    names,
		SessionStats: stats.SessionStats,
	}
}

func FromAdminStats(stats *service.AdminStats) AdminStatsResponse {
	return AdminStatsResponse{
		Success: true,
		Stats:   stats.Totals,
		Users:   stats.Users,
	}
}
