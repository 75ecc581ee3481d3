package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/models"
)

type sessionRepository struct {
	db *gorm.DB
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	UpdatePages(ctx context.Context, sessionID int64, pagesRead int) error
	End(ctx context.Context, sessionID int64) error
	StatsForUser(ctx context.Context, userID string) (*models.SessionStats, error)
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// UpdatePages overwrites the page snapshot. An unknown session id updates
// zero rows and is not an error.
func (r *sessionRepository) UpdatePages(ctx context.Context, sessionID int64, pagesRead int) error {
	return r.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", sessionID).
		UpdateColumn("pages_read", pagesRead).Error
}

func (r *sessionRepository) End(ctx context.Context, sessionID int64) error {
	return r.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", sessionID).
		UpdateColumn("session_end", time.Now()).Error
}

func (r *sessionRepository) StatsForUser(ctx context.Context, userID string) (*models.SessionStats, error) {
	var stats models.SessionStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total_sessions,
		       COALESCE(SUM(pages_read), 0) AS total_pages_read,
		       COALESCE(AVG(COALESCE(pages_read, 0)), 0) AS avg_pages_per_session
		FROM sessions
		WHERE user_id = ?`, userID).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
