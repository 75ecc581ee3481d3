package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/cache"
	"ebooklib/internal/http-api/models"
	"ebooklib/internal/http-api/repository"
)

const adminStatsCacheKey = "ebooklib:admin_stats"

// UserStats is everything the reader's profile page shows.
type UserStats struct {
	User         *models.User        `json:"user"`
	NamesUsed    []models.NamePair   `json:"names_used"`
	SessionStats models.SessionStats `json:"session_stats"`
}

// AdminStats is the admin panel payload: global totals plus a per-user
// rollup ordered by signup date, newest first.
type AdminStats struct {
	Totals models.AdminTotals  `json:"stats"`
	Users  []models.UserRollup `json:"users"`
}

type StatsService interface {
	UserStats(ctx context.Context, userID string) (*UserStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}

type statsService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	pairs    repository.NamePairRepository
	stats    repository.StatsRepository
	cache    *cache.StatsCache
}

func NewStatsService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	pairs repository.NamePairRepository,
	stats repository.StatsRepository,
	statsCache *cache.StatsCache,
) StatsService {
	return &statsService{
		users:    users,
		sessions: sessions,
		pairs:    pairs,
		stats:    stats,
		cache:    statsCache,
	}
}

func (s *statsService) UserStats(ctx context.Context, userID string) (*UserStats, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	pairs, err := s.pairs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing name pairs: %w", err)
	}

	sessionStats, err := s.sessions.StatsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregating sessions: %w", err)
	}
	sessionStats.AvgPagesPerSession = round2(sessionStats.AvgPagesPerSession)

	return &UserStats{
		User:         user,
		NamesUsed:    pairs,
		SessionStats: *sessionStats,
	}, nil
}

// AdminStats serves from the redis cache when one is configured; a miss or
// a disabled cache falls through to the database.
func (s *statsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	var cached AdminStats
	if s.cache.Get(ctx, adminStatsCacheKey, &cached) {
		return &cached, nil
	}

	totals, err := s.stats.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregating totals: %w", err)
	}
	rollups, err := s.stats.UserRollups(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregating users: %w", err)
	}

	result := &AdminStats{Totals: *totals, Users: rollups}
	s.cache.Set(ctx, adminStatsCacheKey, result)
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
