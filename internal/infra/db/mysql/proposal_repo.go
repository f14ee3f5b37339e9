package mysql

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/aryanpyx/finsight/internal/domain/proposal"
)

type ProposalRepository struct {
	db *sql.DB
}

func NewProposalRepository(db *sql.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Save(ctx context.Context, p *domain.Proposal) error {
	const q = `
INSERT INTO proposals
(id, title, content, total_impact, one_time_recovery, annual_savings, created_at)
VALUES (?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE id=id;
`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Title, p.Content,
		nullString(p.TotalImpact), nullString(p.OneTimeRecovery), nullString(p.AnnualSavings),
		p.CreatedAt,
	)
	return err
}

func (r *ProposalRepository) List(ctx context.Context) ([]*domain.Proposal, error) {
	const q = `
SELECT id, title, content, total_impact, one_time_recovery, annual_savings, created_at
FROM proposals
ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Latest returns the newest proposal or nil when the table is empty.
func (r *ProposalRepository) Latest(ctx context.Context) (*domain.Proposal, error) {
	const q = `
SELECT id, title, content, total_impact, one_time_recovery, annual_savings, created_at
FROM proposals
ORDER BY created_at DESC, id DESC LIMIT 1;
`
	p, err := scanProposal(r.db.QueryRowContext(ctx, q))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func scanProposal(row rowScanner) (*domain.Proposal, error) {
	var p domain.Proposal
	var totalImpact, oneTime, annual sql.NullString
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &totalImpact, &oneTime, &annual, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.TotalImpact = fromNull(totalImpact)
	p.OneTimeRecovery = fromNull(oneTime)
	p.AnnualSavings = fromNull(annual)
	return &p, nil
}
