package proposal

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/aryanpyx/finsight/internal/application"
	"github.com/aryanpyx/finsight/internal/domain/ai"
	"github.com/aryanpyx/finsight/internal/domain/analysis"
	domain "github.com/aryanpyx/finsight/internal/domain/proposal"
)

// Service implements use-cases untuk Proposal Orchestrator
type Service struct {
	Results   analysis.Repository
	Proposals domain.Repository
	AI        ai.Client
	Clock     application.Clock
}

//
// ==== USE CASES ====
//

// Generate reconstructs the analysis summaries from stored results,
// invokes the external proposal generator, computes the aggregate
// dollar figures, and persists a proposal record.
//
// Reconstruction keys on each result's Bucket tag. Results accumulate
// across runs, so the latest row per bucket wins (rows are read in
// insertion order and later rows overwrite earlier ones).
func (s *Service) Generate(ctx context.Context, clientName string) (*domain.Proposal, error) {
	revenueLeaks, err := s.Results.ListByType(ctx, analysis.TypeRevenueLeak)
	if err != nil {
		return nil, err
	}
	costWaste, err := s.Results.ListByType(ctx, analysis.TypeCostWaste)
	if err != nil {
		return nil, err
	}

	var contract analysis.ContractAnalysis
	var license analysis.LicenseAnalysis

	for _, r := range revenueLeaks {
		amount := parseAmount(r.Amount)
		switch r.Bucket {
		case analysis.BucketUnbilledWork:
			var b analysis.UnbilledWorkBucket
			decodeDetails(r.Details, &b)
			contract.UnbilledWork = analysis.UnbilledWorkBucket{Total: amount, Items: b.Items}
		case analysis.BucketSLABreaches:
			var b analysis.SLABreachBucket
			decodeDetails(r.Details, &b)
			contract.SLABreaches = analysis.SLABreachBucket{Total: amount, Violations: b.Violations}
		case analysis.BucketMispricedServices:
			var b analysis.MispricedServicesBucket
			decodeDetails(r.Details, &b)
			contract.MispricedServices = analysis.MispricedServicesBucket{Total: amount, Services: b.Services}
		}
	}

	for _, r := range costWaste {
		amount := parseAmount(r.Amount)
		switch r.Bucket {
		case analysis.BucketUnusedLicenses:
			var b analysis.UnusedLicensesBucket
			decodeDetails(r.Details, &b)
			license.UnusedLicenses = analysis.UnusedLicensesBucket{Total: amount, Licenses: b.Licenses}
		case analysis.BucketDuplicateSubscriptions:
			var b analysis.DuplicateSubscriptionsBucket
			decodeDetails(r.Details, &b)
			license.DuplicateSubscriptions = analysis.DuplicateSubscriptionsBucket{Total: amount, Duplicates: b.Duplicates}
		case analysis.BucketOverprovisioned:
			var b analysis.OverprovisionedBucket
			decodeDetails(r.Details, &b)
			license.Overprovisioned = analysis.OverprovisionedBucket{Total: amount, Services: b.Services}
		}
	}

	content, err := s.AI.GenerateProposal(ctx, ai.ProposalRequest{
		Contract:   contract,
		License:    license,
		ClientName: clientName,
	})
	if err != nil {
		return nil, fmt.Errorf("proposal generation: %w", err)
	}

	oneTimeRecovery := contract.UnbilledWork.Total + contract.SLABreaches.Total + contract.MispricedServices.Total
	monthlySavings := license.UnusedLicenses.Total + license.DuplicateSubscriptions.Total + license.Overprovisioned.Total
	annualSavings := monthlySavings * 12

	title := "Financial Optimization Proposal"
	if clientName != "" {
		title = fmt.Sprintf("%s - %s", title, clientName)
	}

	p := &domain.Proposal{
		ID:              domain.ProposalID(uuid.New().String()),
		Title:           title,
		Content:         content,
		TotalImpact:     formatAmount(oneTimeRecovery + annualSavings),
		OneTimeRecovery: formatAmount(oneTimeRecovery),
		AnnualSavings:   formatAmount(annualSavings),
		CreatedAt:       s.Clock.Now(),
	}
	if err := s.Proposals.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Latest returns the most recently created proposal, or nil when none exists.
func (s *Service) Latest(ctx context.Context) (*domain.Proposal, error) {
	return s.Proposals.Latest(ctx)
}

// List returns all proposals in insertion order.
func (s *Service) List(ctx context.Context) ([]*domain.Proposal, error) {
	return s.Proposals.List(ctx)
}

func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decodeDetails tolerates malformed payloads; AI-generated JSON is not
// validated beyond structural parsing, so a bad details blob just
// yields an empty item list.
func decodeDetails(raw json.RawMessage, out any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, out)
}
