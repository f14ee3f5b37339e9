package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/aryanpyx/finsight/internal/application"
	"github.com/aryanpyx/finsight/internal/domain/ai"
	domain "github.com/aryanpyx/finsight/internal/domain/analysis"
	"github.com/aryanpyx/finsight/internal/domain/files"
)

// Service implements use-cases untuk Analysis Orchestrator
type Service struct {
	Files   files.Repository
	Results domain.Repository
	AI      ai.Client
	Clock   application.Clock
}

//
// ==== USE CASES ====
//

// Run gathers uploaded text by category, invokes the external analyzer
// for contracts (when both contract and worklog text exist) and for
// licenses (when license text exists), and persists one result per
// finding bucket whose total is strictly greater than zero.
//
// Results from earlier runs are never removed; repeated runs
// accumulate. An analyzer error aborts the request, but rows already
// written by an earlier step in the same run stay written.
func (s *Service) Run(ctx context.Context) ([]*domain.Result, error) {
	contractText, err := s.gather(ctx, files.TypeContract)
	if err != nil {
		return nil, err
	}
	workLogText, err := s.gather(ctx, files.TypeWorklog)
	if err != nil {
		return nil, err
	}
	licenseText, err := s.gather(ctx, files.TypeLicense)
	if err != nil {
		return nil, err
	}

	runID := domain.RunID(uuid.New().String())
	results := make([]*domain.Result, 0, 6)

	if contractText != "" && workLogText != "" {
		ca, err := s.AI.AnalyzeContract(ctx, contractText, workLogText)
		if err != nil {
			return nil, fmt.Errorf("contract analysis: %w", err)
		}

		if ca.UnbilledWork.Total > 0 {
			r, err := s.store(ctx, runID, domain.BucketUnbilledWork, domain.TypeRevenueLeak,
				"Unbilled Work", ca.UnbilledWork.Total,
				fmt.Sprintf("%d items of unbilled work detected", len(ca.UnbilledWork.Items)),
				ca.UnbilledWork, domain.SeverityCritical)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		if ca.SLABreaches.Total > 0 {
			r, err := s.store(ctx, runID, domain.BucketSLABreaches, domain.TypeRevenueLeak,
				"SLA Breaches", ca.SLABreaches.Total,
				fmt.Sprintf("%d SLA violations requiring credits", len(ca.SLABreaches.Violations)),
				ca.SLABreaches, domain.SeverityMedium)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		if ca.MispricedServices.Total > 0 {
			r, err := s.store(ctx, runID, domain.BucketMispricedServices, domain.TypeRevenueLeak,
				"Mispriced Services", ca.MispricedServices.Total,
				"Services priced below market rate",
				ca.MispricedServices, domain.SeverityOpportunity)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}

	if licenseText != "" {
		la, err := s.AI.AnalyzeLicenses(ctx, licenseText)
		if err != nil {
			return nil, fmt.Errorf("license analysis: %w", err)
		}

		if la.UnusedLicenses.Total > 0 {
			r, err := s.store(ctx, runID, domain.BucketUnusedLicenses, domain.TypeCostWaste,
				"Unused Licenses", la.UnusedLicenses.Total,
				fmt.Sprintf("%d inactive licenses found", len(la.UnusedLicenses.Licenses)),
				la.UnusedLicenses, domain.SeverityCritical)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		if la.DuplicateSubscriptions.Total > 0 {
			r, err := s.store(ctx, runID, domain.BucketDuplicateSubscriptions, domain.TypeCostWaste,
				"Duplicate Subscriptions", la.DuplicateSubscriptions.Total,
				fmt.Sprintf("%d duplicate tools found", len(la.DuplicateSubscriptions.Duplicates)),
				la.DuplicateSubscriptions, domain.SeverityMedium)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		if la.Overprovisioned.Total > 0 {
			r, err := s.store(ctx, runID, domain.BucketOverprovisioned, domain.TypeCostWaste,
				"Overprovisioned Services", la.Overprovisioned.Total,
				fmt.Sprintf("%d services with excessive capacity", len(la.Overprovisioned.Services)),
				la.Overprovisioned, domain.SeverityMedium)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}

	return results, nil
}

// List returns all stored analysis results in insertion order.
func (s *Service) List(ctx context.Context) ([]*domain.Result, error) {
	return s.Results.List(ctx)
}

// gather concatenates the content of all files of one category with
// blank-line separators.
func (s *Service) gather(ctx context.Context, t files.FileType) (string, error) {
	list, err := s.Files.ListByType(ctx, t)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(list))
	for _, f := range list {
		parts = append(parts, f.Content)
	}
	return strings.Join(parts, "\n\n"), nil
}

// store synthesizes and persists one result for a finding bucket.
func (s *Service) store(ctx context.Context, runID domain.RunID, bucket domain.Bucket, t domain.ResultType, title string, total float64, description string, details any, severity domain.Severity) (*domain.Result, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode %s details: %w", bucket, err)
	}
	r := &domain.Result{
		ID:          domain.ResultID(uuid.New().String()),
		RunID:       runID,
		Bucket:      bucket,
		Type:        t,
		Title:       title,
		Amount:      strconv.FormatFloat(total, 'f', -1, 64),
		Description: description,
		Details:     raw,
		Severity:    severity,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Results.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
