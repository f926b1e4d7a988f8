package absence

import "errors"

// Absence domain errors
var (
	ErrRecordNotFound  = errors.New("absence record not found")
	ErrInvalidCategory = errors.New("invalid absence category")
)
