package proposal

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, p *Proposal) error
	List(ctx context.Context) ([]*Proposal, error)

	// Latest returns the proposal with maximum CreatedAt,
	// or nil when no proposal exists.
	Latest(ctx context.Context) (*Proposal, error)
}
