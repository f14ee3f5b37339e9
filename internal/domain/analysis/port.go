package analysis

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, r *Result) error
	List(ctx context.Context) ([]*Result, error)
	ListByType(ctx context.Context, t ResultType) ([]*Result, error)
}
