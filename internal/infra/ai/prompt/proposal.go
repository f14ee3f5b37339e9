package prompt

import (
	"fmt"

	domai "github.com/aryanpyx/finsight/internal/domain/ai"
)

// ProposalSystemPrompt asks for free text, not JSON.
func ProposalSystemPrompt() string {
	return `You are a professional proposal writer specializing in MSP financial optimization. Create a comprehensive, professional proposal based on the analysis data provided. The proposal should include:
1. Executive Summary
2. Revenue Recovery Opportunities (with specific details)
3. Cost Optimization Strategy
4. Implementation Timeline
5. Financial Impact summary
6. Next Steps

Write in a professional business tone suitable for presenting to C-level executives.`
}

// ProposalUserPrompt summarizes the two analyses per bucket total.
func ProposalUserPrompt(req domai.ProposalRequest) string {
	client := req.ClientName
	if client == "" {
		client = "the client"
	}
	return fmt.Sprintf(`Create a proposal for %s based on this analysis:

Contract Analysis:
- Unbilled Work: $%g
- SLA Breaches: $%g
- Mispriced Services: $%g

License Analysis:
- Unused Licenses: $%g/month
- Duplicate Subscriptions: $%g/month
- Overprovisioned: $%g/month

Include specific details from the analysis data in the proposal.`,
		client,
		req.Contract.UnbilledWork.Total,
		req.Contract.SLABreaches.Total,
		req.Contract.MispricedServices.Total,
		req.License.UnusedLicenses.Total,
		req.License.DuplicateSubscriptions.Total,
		req.License.Overprovisioned.Total,
	)
}
