package memory

import (
	"context"

	domain "github.com/aryanpyx/finsight/internal/domain/analysis"
)

type AnalysisRepository struct {
	store *Store
}

func NewAnalysisRepository(store *Store) *AnalysisRepository {
	return &AnalysisRepository{store: store}
}

func (r *AnalysisRepository) Save(ctx context.Context, res *domain.Result) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[res.ID]; !ok {
		s.resultOrder = append(s.resultOrder, res.ID)
	}
	cp := *res
	s.results[res.ID] = &cp
	return nil
}

func (r *AnalysisRepository) List(ctx context.Context) ([]*domain.Result, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Result, 0, len(s.resultOrder))
	for _, id := range s.resultOrder {
		cp := *s.results[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *AnalysisRepository) ListByType(ctx context.Context, t domain.ResultType) ([]*domain.Result, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Result
	for _, id := range s.resultOrder {
		if res := s.results[id]; res.Type == t {
			cp := *res
			out = append(out, &cp)
		}
	}
	return out, nil
}
