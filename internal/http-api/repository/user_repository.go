package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/models"
)

type userRepository struct {
	db *gorm.DB
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByLibraryID(ctx context.Context, libraryID string) (*models.User, error)
	RecordAccess(ctx context.Context, id string) error
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByLibraryID(ctx context.Context, libraryID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("library_id = ?", libraryID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RecordAccess bumps the access counter and stamps the last access time.
// The increment runs in SQL so concurrent logins never lose a count.
func (r *userRepository) RecordAccess(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"access_count": gorm.Expr("access_count + 1"),
			"last_access":  time.Now(),
		}).Error
}
