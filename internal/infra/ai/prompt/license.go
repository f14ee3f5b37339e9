package prompt

import "fmt"

// LicenseSystemPrompt provides strict directions and schema for JSON output.
func LicenseSystemPrompt() string {
	return `You are a SaaS license optimization expert. Analyze the provided license data to identify:
1. Unused licenses - licenses with no recent activity
2. Duplicate subscriptions - multiple tools providing same functionality
3. Overprovisioned services - more licenses than active users

Respond with JSON in this exact format:
{
  "unusedLicenses": {
    "total": number,
    "licenses": [{"tool": string, "monthlyPrice": number, "lastUsed": string, "users": number}]
  },
  "duplicateSubscriptions": {
    "total": number,
    "duplicates": [{"tools": [string], "monthlyPrice": number, "functionality": string}]
  },
  "overprovisioned": {
    "total": number,
    "services": [{"service": string, "currentUsers": number, "activeUsers": number, "monthlySavings": number}]
  }
}`
}

func LicenseUserPrompt(licenseData string) string {
	return fmt.Sprintf("License Data: %s", licenseData)
}
