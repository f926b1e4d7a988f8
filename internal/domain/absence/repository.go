package absence

import "context"

// Repository is the durable store for the full record sequence. The store is
// rewritten whole on every mutation; there is no row-level addressing at this
// layer.
type Repository interface {
	// Load reads the durable store. A missing or unreadable file yields an
	// empty sequence, never an error that should halt startup.
	Load(ctx context.Context) ([]Record, error)

	// Save overwrites the durable store with the given sequence.
	Save(ctx context.Context, records []Record) error
}

// DescriptionLookup resolves a CID diagnosis code to a short plain-language
// description. Implementations never fail: on lookup trouble they return a
// descriptive text so record creation is not blocked.
type DescriptionLookup interface {
	Lookup(ctx context.Context, code string) string
}
