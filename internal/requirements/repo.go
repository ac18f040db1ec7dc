package requirements

import "context"

// Repo defines persistence operations for requirements. The store is
// insert-only from this system's perspective.
type Repo interface {
	Create(ctx context.Context, rec Requirement) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Requirement, error)
}
