package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"ebooklib/internal/http-api/repository"
)

var (
	ErrNamesRequired    = errors.New("user ID and both names required")
	ErrNameTooLong      = errors.New("names must be 50 characters or less")
	ErrNameInvalidChars = errors.New("names can only contain letters, numbers, and spaces")
)

const maxNameLength = 50

var validNameRe = regexp.MustCompile(`^[\p{L}\p{N} ]+$`)

type NamesService interface {
	SavePair(ctx context.Context, userID, femaleName, maleName string) error
}

type namesService struct {
	users repository.UserRepository
	pairs repository.NamePairRepository
}

func NewNamesService(users repository.UserRepository, pairs repository.NamePairRepository) NamesService {
	return &namesService{users: users, pairs: pairs}
}

// SavePair validates and records one use of a name pair for a user. A
// repeat of the exact same pair bumps its usage count instead of adding a
// row.
func (s *namesService) SavePair(ctx context.Context, userID, femaleName, maleName string) error {
	femaleName = strings.TrimSpace(femaleName)
	maleName = strings.TrimSpace(maleName)

	if userID == "" || femaleName == "" || maleName == "" {
		return ErrNamesRequired
	}
	if utf8.RuneCountInString(femaleName) > maxNameLength || utf8.RuneCountInString(maleName) > maxNameLength {
		return ErrNameTooLong
	}
	if !validNameRe.MatchString(femaleName) || !validNameRe.MatchString(maleName) {
		return ErrNameInvalidChars
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	if err := s.pairs.Upsert(ctx, userID, femaleName, maleName); err != nil {
		return fmt.Errorf("saving name pair: %w", err)
	}
	return nil
}
