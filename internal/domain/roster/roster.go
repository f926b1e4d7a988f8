// Package roster exposes the read-only reference list of employee names used
// to populate selection inputs. The registry never writes roster data.
package roster

import (
	"context"
	"errors"
)

var ErrRosterNotFound = errors.New("roster file not found")

// Repository reads the roster source.
type Repository interface {
	// Names returns the sorted, de-duplicated employee names.
	Names(ctx context.Context) ([]string, error)
}

// Service serves roster names with caching. A missing or malformed roster
// degrades to an empty list so callers fall back to free-text name entry.
type Service interface {
	Names(ctx context.Context) []string
}
