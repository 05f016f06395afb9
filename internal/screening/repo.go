package screening

import "context"

// Repo defines persistence operations for screening reports.
type Repo interface {
	Create(ctx context.Context, result Result) error
	GetByID(ctx context.Context, id string) (Result, error)
	List(ctx context.Context, limit, offset int) ([]Result, error)
}
