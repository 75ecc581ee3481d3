package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ebooklib/internal/http-api/models"
)

func TestUserRepository_CreateAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{LibraryID: "LIB-AAAA-1111", LastAccess: time.Now()}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "LIB-AAAA-1111", found.LibraryID)
	assert.Equal(t, 0, found.AccessCount)
}

func TestUserRepository_FindByLibraryID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByLibraryID(context.Background(), "LIB-ZZZZ-9999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_RecordAccess(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "LIB-BBBB-2222")

	require.NoError(t, repo.RecordAccess(ctx, user.ID))
	require.NoError(t, repo.RecordAccess(ctx, user.ID))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.AccessCount)
	assert.WithinDuration(t, time.Now(), found.LastAccess, time.Minute)
}

func TestUserRepository_DuplicateLibraryIDRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "LIB-CCCC-3333")
	err := repo.Create(ctx, &models.User{LibraryID: "LIB-CCCC-3333", LastAccess: time.Now()})
	assert.Error(t, err, "library_id carries a unique index")
}
