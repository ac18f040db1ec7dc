package requirements

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Requirement // userID -> requirements
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Requirement)}
}

// Create appends a requirement for its owning user.
func (r *MemoryRepo) Create(ctx context.Context, rec Requirement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.Status == "" {
		rec.Status = StatusPending
	}
	r.data[rec.UserID] = append(r.data[rec.UserID], rec)
	return nil
}

// ListByUser returns a user's requirements newest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Requirement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	stored := r.data[userID]
	r.mu.RUnlock()

	if len(stored) == 0 || offset >= len(stored) {
		return []Requirement{}, nil
	}

	recs := make([]Requirement, len(stored))
	copy(recs, stored)
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})

	end := len(recs)
	if offset+limit < end {
		end = offset + limit
	}
	return recs[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
