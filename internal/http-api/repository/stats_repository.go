package repository

import (
	"context"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/models"
)

type statsRepository struct {
	db *gorm.DB
}

type StatsRepository interface {
	Totals(ctx context.Context) (*models.AdminTotals, error)
	UserRollups(ctx context.Context) ([]models.UserRollup, error)
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Totals(ctx context.Context) (*models.AdminTotals, error) {
	var totals models.AdminTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT (SELECT COUNT(*) FROM users) AS total_users,
		       (SELECT COUNT(*) FROM sessions) AS total_sessions,
		       (SELECT COALESCE(SUM(pages_read), 0) FROM sessions) AS total_pages_read,
		       (SELECT COUNT(*) FROM name_pairs) AS total_name_combinations`).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *statsRepository) UserRollups(ctx context.Context) ([]models.UserRollup, error) {
	var rollups []models.UserRollup
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id AS user_id, u.library_id, u.created_at, u.last_access, u.access_count,
		       COALESCE(SUM(s.pages_read), 0) AS total_pages_read,
		       COUNT(s.id) AS total_sessions
		FROM users u
		LEFT JOIN sessions s ON u.id = s.user_id
		GROUP BY u.id
		ORDER BY u.created_at DESC`).
		Scan(&rollups).Error
	if err != nil {
		return nil, err
	}
	return rollups, nil
}
