package memory

import (
	"context"

	domain "github.com/aryanpyx/finsight/internal/domain/proposal"
)

type ProposalRepository struct {
	store *Store
}

func NewProposalRepository(store *Store) *ProposalRepository {
	return &ProposalRepository{store: store}
}

func (r *ProposalRepository) Save(ctx context.Context, p *domain.Proposal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.proposals[p.ID]; !ok {
		s.proposalOrder = append(s.proposalOrder, p.ID)
	}
	cp := *p
	s.proposals[p.ID] = &cp
	return nil
}

func (r *ProposalRepository) List(ctx context.Context) ([]*domain.Proposal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Proposal, 0, len(s.proposalOrder))
	for _, id := range s.proposalOrder {
		cp := *s.proposals[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Latest scans all proposals and returns the one with maximum
// CreatedAt, or nil when the collection is empty.
func (r *ProposalRepository) Latest(ctx context.Context) (*domain.Proposal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *domain.Proposal
	for _, id := range s.proposalOrder {
		p := s.proposals[id]
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}
