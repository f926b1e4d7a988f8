package roster

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/roster"
)

const cacheTTL = time.Hour

// RosterService serves employee names from the reference spreadsheet, cached
// for an hour. Any roster problem degrades to an empty list: the entry form
// then falls back to free-text names instead of failing.
type RosterService struct {
	repo roster.Repository

	mu        sync.Mutex
	names     []string
	fetchedAt time.Time
}

func NewRosterService(repo roster.Repository) *RosterService {
	return &RosterService{repo: repo}
}

func (s *RosterService) Names(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < cacheTTL {
		return s.names
	}

	names, err := s.repo.Names(ctx)
	if err != nil {
		if errors.Is(err, roster.ErrRosterNotFound) {
			slog.Warn("roster file not found, name selection disabled")
		} else {
			slog.Error("failed to read roster file", "error", err)
		}
		names = []string{}
	}

	s.names = names
	s.fetchedAt = time.Now()
	return s.names
}
