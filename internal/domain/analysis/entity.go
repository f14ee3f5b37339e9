package analysis

import (
	"encoding/json"
	"time"
)

// ID tipe untuk Result
type ResultID string

// RunID tags every result created by one analysis invocation
type RunID string

// ResultType enum
type ResultType string

const (
	TypeRevenueLeak ResultType = "revenue_leak"
	TypeCostWaste   ResultType = "cost_waste"
)

// Severity enum
type Severity string

const (
	SeverityCritical    Severity = "critical"
	SeverityMedium      Severity = "medium"
	SeverityLow         Severity = "low"
	SeverityOpportunity Severity = "opportunity"
)

// Bucket identifies which finding bucket a result came from. Proposal
// reconstruction keys on this tag, never on the display title.
type Bucket string

const (
	BucketUnbilledWork           Bucket = "unbilled_work"
	BucketSLABreaches            Bucket = "sla_breaches"
	BucketMispricedServices      Bucket = "mispriced_services"
	BucketUnusedLicenses         Bucket = "unused_licenses"
	BucketDuplicateSubscriptions Bucket = "duplicate_subscriptions"
	BucketOverprovisioned        Bucket = "overprovisioned"
)

// Aggregate Root: Result
// Immutable once created; repeated analysis runs accumulate rows.
type Result struct {
	ID          ResultID        `json:"id"`
	RunID       RunID           `json:"run_id"`
	Bucket      Bucket          `json:"bucket"`
	Type        ResultType      `json:"type"`
	Title       string          `json:"title"`
	Amount      string          `json:"amount"` // non-negative decimal string
	Description string          `json:"description,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
	Severity    Severity        `json:"severity"`
	CreatedAt   time.Time       `json:"createdAt"`
}
