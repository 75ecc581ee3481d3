package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/models"
)

type namePairRepository struct {
	db *gorm.DB
}

type NamePairRepository interface {
	Upsert(ctx context.Context, userID, femaleName, maleName string) error
	ListByUser(ctx context.Context, userID string) ([]models.NamePair, error)
}

func NewNamePairRepository(db *gorm.DB) NamePairRepository {
	return &namePairRepository{db: db}
}

// Upsert records one use of a name pair: a first use inserts the row, a
// repeat bumps usage_count and refreshes created_at. The lookup and the
// write share a transaction so two simultaneous saves of the same triple
// cannot both insert.
func (r *namePairRepository) Upsert(ctx context.Context, userID, femaleName, maleName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.NamePair
		err := tx.Where("user_id = ? AND female_name = ? AND male_name = ?",
			userID, femaleName, maleName).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			pair := &models.NamePair{
				UserID:     userID,
				FemaleName: femaleName,
				MaleName:   maleName,
				CreatedAt:  time.Now(),
				UsageCount: 1,
			}
			return tx.Create(pair).Error
		} else if err != nil {
			return err
		}

		return tx.Model(&existing).UpdateColumns(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"created_at":  time.Now(),
		}).Error
	})
}

func (r *namePairRepository) ListByUser(ctx context.Context, userID string) ([]models.NamePair, error) {
	var pairs []models.NamePair
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
