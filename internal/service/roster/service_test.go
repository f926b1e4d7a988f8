package roster

import (
	"context"
	"testing"

	"github.com/hrtools-br/ausencias-backend-go/internal/domain/roster"
	"github.com/stretchr/testify/assert"
)

type stubRepo struct {
	names []string
	err   error
	calls int
}

func (s *stubRepo) Names(ctx context.Context) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.names, nil
}

func TestNamesCached(t *testing.T) {
	repo := &stubRepo{names: []string{"Ana Lima", "Maria Silva"}}
	svc := NewRosterService(repo)
	ctx := context.Background()

	first := svc.Names(ctx)
	second := svc.Names(ctx)

	assert.Equal(t, []string{"Ana Lima", "Maria Silva"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls, "second call within the TTL must hit the cache")
}

func TestNamesMissingRosterDegradesToEmpty(t *testing.T) {
	repo := &stubRepo{err: roster.ErrRosterNotFound}
	svc := NewRosterService(repo)

	names := svc.Names(context.Background())

	assert.Empty(t, names)
	// The degraded result is cached too; a broken roster is not re-read per
	// request.
	svc.Names(context.Background())
	assert.Equal(t, 1, repo.calls)
}
