package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/models"
	"ebooklib/internal/http-api/repository"
)

var (
	ErrLibraryCardNotFound = errors.New("invalid library ID")
	ErrUserNotFound        = errors.New("invalid user ID")
)

const libraryIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// LoginResult carries everything the client needs to resume reading: the
// resolved user (with the already-incremented access count) and the fresh
// session.
type LoginResult struct {
	User      *models.User
	SessionID int64
}

type LibraryService interface {
	CreateUser(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, libraryID string) (*LoginResult, error)
}

type libraryService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewLibraryService(users repository.UserRepository, sessions repository.SessionRepository) LibraryService {
	return &libraryService{users: users, sessions: sessions}
}

// CreateUser mints a new anonymous identity with a shareable library code.
// Collisions on the code are statistically negligible (36^8 values) and
// not re-checked; the unique index would surface one as a storage error.
func (s *libraryService) CreateUser(ctx context.Context) (*models.User, error) {
	user := &models.User{
		LibraryID:  generateLibraryID(),
		LastAccess: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Login resolves a library code, records the access and opens a new
// reading session. An unknown code creates nothing.
func (s *libraryService) Login(ctx context.Context, libraryID string) (*LoginResult, error) {
	user, err := s.users.FindByLibraryID(ctx, libraryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLibraryCardNotFound
	} else if err != nil {
		return nil, fmt.Errorf("looking up library ID: %w", err)
	}

	if err := s.users.RecordAccess(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("recording access: %w", err)
	}
	user.AccessCount++
	user.LastAccess = time.Now()

	pages := 0
	session := &models.Session{
		UserID:       user.ID,
		SessionStart: time.Now(),
		PagesRead:    &pages,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	return &LoginResult{User: user, SessionID: session.ID}, nil
}

// generateLibraryID builds a human-shareable code like LIB-7K2M-09QX.
func generateLibraryID() string {
	part := func() string {
		b := make([]byte, 4)
		for i := range b {
			b[i] = libraryIDAlphabet[rand.Intn(len(libraryIDAlphabet))]
		}
		return string(b)
	}
	return fmt.Sprintf("LIB-%s-%s", part(), part())
}
