package service

import (
	"context"
	"fmt"

	"ebooklib/internal/http-api/repository"
)

type SessionService interface {
	UpdatePages(ctx context.Context, sessionID int64, pagesRead int) error
	End(ctx context.Context, sessionID int64) error
}

type sessionService struct {
	sessions repository.SessionRepository
}

func NewSessionService(sessions repository.SessionRepository) SessionService {
	return &sessionService{sessions: sessions}
}

// UpdatePages overwrites the session's page snapshot. Clients fire this on
// every page turn, so an unknown session id deliberately stays a silent
// zero-row update rather than an error.
func (s *sessionService) UpdatePages(ctx context.Context, sessionID int64, pagesRead int) error {
	if err := s.sessions.UpdatePages(ctx, sessionID, pagesRead); err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

// End stamps the session's end time. Same leniency as UpdatePages for
// unknown ids.
func (s *sessionService) End(ctx context.Context, sessionID int64) error {
	if err := s.sessions.End(ctx, sessionID); err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	return nil
}
