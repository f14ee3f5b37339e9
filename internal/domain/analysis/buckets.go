package analysis

// Typed bucket payloads returned by the external analyzers. Each
// bucket's item shape is explicit; the Details column of a Result
// holds the JSON encoding of exactly one of these bucket structs,
// discriminated by the result's Bucket tag.

// ContractAnalysis is the contract analyzer response.
type ContractAnalysis struct {
	UnbilledWork      UnbilledWorkBucket      `json:"unbilledWork"`
	SLABreaches       SLABreachBucket         `json:"slaBreaches"`
	MispricedServices MispricedServicesBucket `json:"mispricedServices"`
}

type UnbilledWorkBucket struct {
	Total float64        `json:"total"`
	Items []UnbilledItem `json:"items"`
}

type UnbilledItem struct {
	Client      string  `json:"client"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

type SLABreachBucket struct {
	Total      float64        `json:"total"`
	Violations []SLAViolation `json:"violations"`
}

type SLAViolation struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type MispricedServicesBucket struct {
	Total    float64            `json:"total"`
	Services []MispricedService `json:"services"`
}

type MispricedService struct {
	Service      string  `json:"service"`
	CurrentPrice float64 `json:"currentPrice"`
	MarketPrice  float64 `json:"marketPrice"`
	Difference   float64 `json:"difference"`
}

// LicenseAnalysis is the license analyzer response.
type LicenseAnalysis struct {
	UnusedLicenses         UnusedLicensesBucket         `json:"unusedLicenses"`
	DuplicateSubscriptions DuplicateSubscriptionsBucket `json:"duplicateSubscriptions"`
	Overprovisioned        OverprovisionedBucket        `json:"overprovisioned"`
}

type UnusedLicensesBucket struct {
	Total    float64         `json:"total"`
	Licenses []UnusedLicense `json:"licenses"`
}

type UnusedLicense struct {
	Tool         string  `json:"tool"`
	MonthlyPrice float64 `json:"monthlyPrice"`
	LastUsed     string  `json:"lastUsed"`
	Users        int     `json:"users"`
}

type DuplicateSubscriptionsBucket struct {
	Total      float64                 `json:"total"`
	Duplicates []DuplicateSubscription `json:"duplicates"`
}

type DuplicateSubscription struct {
	Tools         []string `json:"tools"`
	MonthlyPrice  float64  `json:"monthlyPrice"`
	Functionality string   `json:"functionality"`
}

type OverprovisionedBucket struct {
	Total    float64                  `json:"total"`
	Services []OverprovisionedService `json:"services"`
}

type OverprovisionedService struct {
	Service        string  `json:"service"`
	CurrentUsers   int     `json:"currentUsers"`
	ActiveUsers    int     `json:"activeUsers"`
	MonthlySavings float64 `json:"monthlySavings"`
}
