package proposal

import "time"

// ID tipe untuk Proposal
type ProposalID string

// Aggregate Root: Proposal
// Immutable; regenerations accumulate and "latest" = max CreatedAt.
// Invariant: TotalImpact = OneTimeRecovery + AnnualSavings when both present.
type Proposal struct {
	ID              ProposalID `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	TotalImpact     string     `json:"totalImpact,omitempty"`
	OneTimeRecovery string     `json:"oneTimeRecovery,omitempty"`
	AnnualSavings   string     `json:"annualSavings,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
