package screening

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores screening reports in memory and is safe for concurrent
// use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Result
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Result)}
}

// Create stores the result.
func (r *MemoryRepo) Create(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[result.ID] = result
	return nil
}

// GetByID returns a result by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.byID[id]
	if !ok {
		return Result{}, ErrNotFound
	}
	return result, nil
}

// List returns results newest first with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	results := make([]Result, 0, len(r.byID))
	for _, res := range r.byID {
		results = append(results, res)
	}
	r.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID < results[j].ID
	})

	if offset >= len(results) {
		return []Result{}, nil
	}
	end := len(results)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return results[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
