package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/naijacomply/backend/domain"
)

// PartialError reports a default-task batch that failed part-way through.
// Creation is sequential with no rollback: the first Created tasks remain
// persisted and the caller decides whether to retry or reconcile.
type PartialError struct {
	Created int
	Err     error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("default task generation failed after %d created: %v", e.Created, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// DefaultTasks builds the initial compliance obligations for a business.
// Every business gets the common set; only limited liability companies
// additionally face VAT, PAYE and pension obligations — other legal
// structures are exempt, not forgotten.
//
// Ids are left empty; the repository assigns them at persistence time.
func DefaultTasks(userID, businessProfileID string, businessType domain.BusinessType, now time.Time) []domain.ComplianceTask {
	endOfYear := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
	// Month arithmetic rolls December into January of the next year.
	tenthOfNextMonth := time.Date(now.Year(), now.Month()+1, 10, 0, 0, 0, 0, now.Location())

	tasks := []domain.ComplianceTask{
		{
			UserID:            userID,
			BusinessProfileID: businessProfileID,
			Title:             "CAC Annual Returns",
			Description:       "File annual returns with Corporate Affairs Commission",
			Category:          domain.CategoryCAC,
			Status:            domain.StatusPending,
			DueDate:           endOfYear,
			Priority:          domain.PriorityHigh,
			PortalURL:         "https://post.cac.gov.ng/",
			AuthorityName:     "CAC Portal",
		},
		{
			UserID:            userID,
			BusinessProfileID: businessProfileID,
			Title:             "TIN Registration",
			Description:       "Register for Tax Identification Number",
			Category:          domain.CategoryTax,
			Status:            domain.StatusPending,
			DueDate:           now.Add(30 * 24 * time.Hour),
			Priority:          domain.PriorityHigh,
			PortalURL:         "https://tin.jtb.gov.ng/",
			AuthorityName:     "JTB Portal",
		},
	}

	if businessType != domain.BusinessTypeLimitedCompany {
		return tasks
	}

	return append(tasks,
		domain.ComplianceTask{
			UserID:            userID,
			BusinessProfileID: businessProfileID,
			Title:             "VAT Registration",
			Description:       "Register for Value Added Tax if turnover exceeds N25 million",
			Category:          domain.CategoryVAT,
			Status:            domain.StatusPending,
			DueDate:           now.Add(60 * 24 * time.Hour),
			Priority:          domain.PriorityMedium,
			PortalURL:         "https://taxpromax.firs.gov.ng/",
			AuthorityName:     "FIRS TaxPro Max",
		},
		domain.ComplianceTask{
			UserID:            userID,
			BusinessProfileID: businessProfileID,
			Title:             "PAYE Remittance",
			Description:       "Monthly Pay As You Earn tax remittance",
			Category:          domain.CategoryPAYE,
			Status:            domain.StatusPending,
			DueDate:           tenthOfNextMonth,
			Priority:          domain.PriorityHigh,
			PortalURL:         "https://lirs.gov.ng/",
			AuthorityName:     "LIRS Portal (Lagos)",
		},
		domain.ComplianceTask{
			UserID:            userID,
			BusinessProfileID: businessProfileID,
			Title:             "Pension Remittance",
			Description:       "Monthly pension contributions to PFA",
			Category:          domain.CategoryPension,
			Status:            domain.StatusPending,
			DueDate:           tenthOfNextMonth,
			Priority:          domain.PriorityHigh,
			PortalURL:         "https://www.pencom.gov.ng/",
			AuthorityName:     "PenCom",
		},
	)
}

// GenerateDefaults persists the default task set one task at a time, in
// order. On failure the already-created tasks stay persisted and the
// returned PartialError carries the count.
func (uc *UseCase) GenerateDefaults(ctx context.Context, userID, businessProfileID string, businessType domain.BusinessType) ([]domain.ComplianceTask, error) {
	if userID == "" || businessProfileID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if !domain.ValidBusinessType(businessType) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown business type")
	}

	defaults := DefaultTasks(userID, businessProfileID, businessType, uc.now())

	created := make([]domain.ComplianceTask, 0, len(defaults))
	for i := range defaults {
		task, err := uc.tasks.Create(ctx, &defaults[i])
		if err != nil {
			return created, &PartialError{Created: len(created), Err: err}
		}
		created = append(created, *task)
	}
	return created, nil
}
