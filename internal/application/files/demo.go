package files

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/aryanpyx/finsight/internal/domain/files"
)

// Canned demo fixtures so the dashboard can be exercised without real
// client data. Demo types use the frontend naming: contract | logs | licenses.
const demoContract = `MSP SERVICE AGREEMENT

Client: TechFlow Solutions
Service Level Agreement:
- Response time: 4 hours for critical issues
- Uptime guarantee: 99.5%
- Monthly service fee: $5,000

Services Include:
- 24/7 monitoring and support
- Server maintenance and updates
- Security monitoring
- Backup management

Hourly rates:
- Standard support: $150/hour
- Emergency support: $200/hour
- Project work: $175/hour`

const demoWorkLogs = `Date,Client,Service,Hours,Rate,Status
2023-12-01,TechFlow Solutions,Emergency Server Recovery,8,200,Completed
2023-12-02,TechFlow Solutions,Network Troubleshooting,3,150,Completed
2023-12-03,DataFlow Inc,Security Incident Response,12,200,Completed
2023-12-05,CloudFirst Ltd,Database Migration,6,175,Completed
2023-12-07,TechFlow Solutions,After Hours Maintenance,4,200,Completed`

const demoLicenses = `Tool,Users Licensed,Users Active,Monthly Cost,Last Login
Microsoft 365,50,45,$750,2023-12-15
Slack Premium,30,28,$180,2023-12-15
Zoom Pro,25,15,$375,2023-11-20
Adobe Creative Cloud,20,8,$1200,2023-10-15
Atlassian Suite,15,12,$225,2023-12-14
Salesforce,10,10,$1500,2023-12-15
Dropbox Business,35,20,$525,2023-12-10`

// LoadDemo stores one canned file record for the given demo type.
// The frontend demo names map onto the backend file categories:
// logs -> worklog, licenses -> license.
func (s *Service) LoadDemo(ctx context.Context, demoType string) (*domain.UploadedFile, error) {
	var content, filename string
	var t domain.FileType

	switch demoType {
	case "contract":
		content, filename, t = demoContract, "sample_contract.txt", domain.TypeContract
	case "logs":
		content, filename, t = demoWorkLogs, "work_logs_q4.csv", domain.TypeWorklog
	case "licenses":
		content, filename, t = demoLicenses, "license_audit.csv", domain.TypeLicense
	default:
		return nil, domain.ErrUnknownDemoType
	}

	f := &domain.UploadedFile{
		ID:           domain.FileID(uuid.New().String()),
		Filename:     fmt.Sprintf("demo_%s", filename),
		OriginalName: filename,
		Type:         t,
		Size:         int64(len(content)),
		UploadedAt:   s.Clock.Now(),
		Content:      content,
		Processed:    true,
	}
	if err := s.Files.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
