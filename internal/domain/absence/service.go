package absence

import (
	"context"
	"time"
)

// Service owns the authoritative in-memory record sequence and persists it on
// every mutation.
type Service interface {
	// Add creates a record, deriving the reason from the category rules, and
	// returns it together with the computed return date.
	Add(ctx context.Context, req CreateRecordRequest) (Record, time.Time, error)

	// Update rewrites the record with the given ID. The category is
	// immutable; for Atestado records a changed CID triggers a fresh
	// description lookup, otherwise the stored reason is kept.
	Update(ctx context.Context, id string, req UpdateRecordRequest) (Record, time.Time, error)

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error

	// List returns a snapshot ordered by start date descending, undated
	// records last.
	List(ctx context.Context) []Record

	// ListByEmployee returns the List ordering grouped per employee.
	ListByEmployee(ctx context.Context) []EmployeeGroup
}
