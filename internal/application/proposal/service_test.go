package proposal

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanpyx/finsight/internal/domain/ai"
	"github.com/aryanpyx/finsight/internal/domain/analysis"
	"github.com/aryanpyx/finsight/internal/infra/db/memory"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type fakeGenerator struct {
	content string
	err     error
	called  bool
	req     ai.ProposalRequest
}

func (f *fakeGenerator) AnalyzeContract(ctx context.Context, contractText, workLogs string) (*analysis.ContractAnalysis, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeGenerator) AnalyzeLicenses(ctx context.Context, licenseData string) (*analysis.LicenseAnalysis, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeGenerator) GenerateProposal(ctx context.Context, req ai.ProposalRequest) (string, error) {
	f.called = true
	f.req = req
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func newTestService(gen *fakeGenerator) (*Service, *memory.AnalysisRepository, *memory.ProposalRepository, *fixedClock) {
	store := memory.NewStore()
	resultRepo := memory.NewAnalysisRepository(store)
	proposalRepo := memory.NewProposalRepository(store)
	clock := &fixedClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	svc := &Service{Results: resultRepo, Proposals: proposalRepo, AI: gen, Clock: clock}
	return svc, resultRepo, proposalRepo, clock
}

func seedResult(t *testing.T, repo analysis.Repository, id string, bucket analysis.Bucket, rt analysis.ResultType, amount string, details any) {
	t.Helper()
	raw, err := json.Marshal(details)
	require.NoError(t, err)
	err = repo.Save(context.Background(), &analysis.Result{
		ID:      analysis.ResultID(id),
		RunID:   "run-1",
		Bucket:  bucket,
		Type:    rt,
		Amount:  amount,
		Details: raw,
	})
	require.NoError(t, err)
}

func TestGenerateComputesTotals(t *testing.T) {
	gen := &fakeGenerator{content: "EXECUTIVE SUMMARY ..."}
	svc, resultRepo, _, _ := newTestService(gen)

	seedResult(t, resultRepo, "r1", analysis.BucketUnbilledWork, analysis.TypeRevenueLeak, "500",
		analysis.UnbilledWorkBucket{Total: 500, Items: []analysis.UnbilledItem{{Client: "TechFlow", Amount: 500}}})
	seedResult(t, resultRepo, "r2", analysis.BucketSLABreaches, analysis.TypeRevenueLeak, "300",
		analysis.SLABreachBucket{Total: 300, Violations: []analysis.SLAViolation{{Amount: 300}}})
	seedResult(t, resultRepo, "r3", analysis.BucketUnusedLicenses, analysis.TypeCostWaste, "100",
		analysis.UnusedLicensesBucket{Total: 100, Licenses: []analysis.UnusedLicense{{MonthlyPrice: 100}}})

	p, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Financial Optimization Proposal", p.Title)
	assert.Equal(t, "EXECUTIVE SUMMARY ...", p.Content)
	assert.Equal(t, "800", p.OneTimeRecovery)
	assert.Equal(t, "1200", p.AnnualSavings, "monthly savings times twelve")
	assert.Equal(t, "2000", p.TotalImpact)
	assert.NotEmpty(t, p.ID)

	require.True(t, gen.called)
	assert.Equal(t, float64(500), gen.req.Contract.UnbilledWork.Total)
	assert.Len(t, gen.req.Contract.UnbilledWork.Items, 1)
	assert.Equal(t, float64(300), gen.req.Contract.SLABreaches.Total)
	assert.Equal(t, float64(100), gen.req.License.UnusedLicenses.Total)
	assert.Empty(t, gen.req.License.DuplicateSubscriptions.Duplicates)
}

func TestGenerateClientNameInTitle(t *testing.T) {
	gen := &fakeGenerator{content: "proposal"}
	svc, _, _, _ := newTestService(gen)

	p, err := svc.Generate(context.Background(), "TechFlow Solutions")
	require.NoError(t, err)
	assert.Equal(t, "Financial Optimization Proposal - TechFlow Solutions", p.Title)
	assert.Equal(t, "TechFlow Solutions", gen.req.ClientName)
}

func TestGenerateLatestRowPerBucketWins(t *testing.T) {
	gen := &fakeGenerator{content: "proposal"}
	svc, resultRepo, _, _ := newTestService(gen)

	// two analysis runs reported the same bucket; the newer row
	// (later in insertion order) supersedes the older one
	seedResult(t, resultRepo, "r1", analysis.BucketUnbilledWork, analysis.TypeRevenueLeak, "100",
		analysis.UnbilledWorkBucket{Total: 100})
	seedResult(t, resultRepo, "r2", analysis.BucketUnbilledWork, analysis.TypeRevenueLeak, "500",
		analysis.UnbilledWorkBucket{Total: 500})

	p, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "500", p.OneTimeRecovery)
	assert.Equal(t, float64(500), gen.req.Contract.UnbilledWork.Total)
}

func TestGenerateWithNoResults(t *testing.T) {
	gen := &fakeGenerator{content: "proposal"}
	svc, _, proposalRepo, _ := newTestService(gen)

	p, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, gen.called, "the generator runs even with nothing to report")
	assert.Equal(t, "0", p.OneTimeRecovery)
	assert.Equal(t, "0", p.AnnualSavings)
	assert.Equal(t, "0", p.TotalImpact)

	list, err := proposalRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGenerateMalformedDetailsStillCounts(t *testing.T) {
	gen := &fakeGenerator{content: "proposal"}
	svc, resultRepo, _, _ := newTestService(gen)

	err := resultRepo.Save(context.Background(), &analysis.Result{
		ID:      "r1",
		Bucket:  analysis.BucketUnusedLicenses,
		Type:    analysis.TypeCostWaste,
		Amount:  "100",
		Details: json.RawMessage(`{not json`),
	})
	require.NoError(t, err)

	p, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1200", p.AnnualSavings, "the amount column drives totals, not the details blob")
	assert.Empty(t, gen.req.License.UnusedLicenses.Licenses)
}

func TestGenerateAIFailureSavesNothing(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("model overloaded")}
	svc, _, proposalRepo, _ := newTestService(gen)

	_, err := svc.Generate(context.Background(), "")
	require.Error(t, err)

	list, listErr := proposalRepo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, list)
}

func TestLatestReturnsNewestProposal(t *testing.T) {
	gen := &fakeGenerator{content: "proposal"}
	svc, _, _, clock := newTestService(gen)

	first, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour)
	second, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.NotEqual(t, first.ID, latest.ID)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLatestWithNoProposalsIsNil(t *testing.T) {
	svc, _, _, _ := newTestService(&fakeGenerator{})

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
}
