package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebooklib/internal/http-api/models"
)

func newSession(t *testing.T, repo SessionRepository, userID string, pages *int) *models.Session {
	t.Helper()
	session := &models.Session{UserID: userID, SessionStart: time.Now(), PagesRead: pages}
	require.NoError(t, repo.Create(context.Background(), session))
	return session
}

func intPtr(v int) *int { return &v }

func TestSessionRepository_UpdatePagesOverwrites(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "LIB-SESS-0001")
	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := newSession(t, repo, user.ID, intPtr(0))

	require.NoError(t, repo.UpdatePages(ctx, session.ID, 12))
	require.NoError(t, repo.UpdatePages(ctx, session.ID, 7))

	var pages int
	require.NoError(t, db.Raw("SELECT pages_read FROM sessions WHERE id = ?", session.ID).Scan(&pages).Error)
	assert.Equal(t, 7, pages, "pages_read is a snapshot, not an accumulator")
}

func TestSessionRepository_UnknownIDIsSilentNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.UpdatePages(ctx, 424242, 10))
	assert.NoError(t, repo.End(ctx, 424242))
}

func TestSessionRepository_EndStampsTime(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "LIB-SESS-0002")
	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := newSession(t, repo, user.ID, intPtr(0))
	require.NoError(t, repo.End(ctx, session.ID))

	var ended sql.NullTime
	require.NoError(t, db.Raw("SELECT session_end FROM sessions WHERE id = ?", session.ID).Scan(&ended).Error)
	require.True(t, ended.Valid)
	assert.WithinDuration(t, time.Now(), ended.Time, time.Minute)
}

func TestSessionRepository_StatsForUser_NullPagesCountAsZero(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "LIB-SESS-0003")
	repo := NewSessionRepository(db)
	ctx := context.Background()

	newSession(t, repo, user.ID, intPtr(10))
	newSession(t, repo, user.ID, intPtr(0))
	newSession(t, repo, user.ID, nil)

	stats, err := repo.StatsForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalSessions)
	assert.EqualValues(t, 10, stats.TotalPagesRead)
	assert.InDelta(t, 10.0/3.0, stats.AvgPagesPerSession, 0.01)
}

func TestSessionRepository_StatsForUser_NoSessions(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "LIB-SESS-0004")

	stats, err := NewSessionRepository(db).StatsForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalSessions)
	assert.EqualValues(t, 0, stats.TotalPagesRead)
	assert.EqualValues(t, 0, stats.AvgPagesPerSession)
}
