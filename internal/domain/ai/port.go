package ai

import (
	"context"

	"github.com/aryanpyx/finsight/internal/domain/analysis"
)

// ProposalRequest carries the reconstructed analysis summaries and an
// optional client name to the proposal generator.
type ProposalRequest struct {
	Contract   analysis.ContractAnalysis
	License    analysis.LicenseAnalysis
	ClientName string
}

// Client is the external text-completion service, consumed as a pure
// text-in/JSON-out function. No retry policy is applied by this system.
type Client interface {
	AnalyzeContract(ctx context.Context, contractText, workLogs string) (*analysis.ContractAnalysis, error)
	AnalyzeLicenses(ctx context.Context, licenseData string) (*analysis.LicenseAnalysis, error)
	GenerateProposal(ctx context.Context, req ProposalRequest) (string, error)
}
