package domain

import "time"

// BusinessType is the legal structure of a registered business. It drives
// which default compliance obligations the generator emits.
type BusinessType string

const (
	BusinessTypeLimitedCompany       BusinessType = "Limited Liability Company"
	BusinessTypeBusinessName         BusinessType = "Business Name"
	BusinessTypePartnership          BusinessType = "Partnership"
	BusinessTypeNGO                  BusinessType = "NGO"
	BusinessTypeIncorporatedTrustees BusinessType = "Incorporated Trustees"
)

// VATStatus tracks the business's VAT registration state with FIRS.
type VATStatus string

const (
	VATRegistered    VATStatus = "Registered"
	VATNotRegistered VATStatus = "Not Registered"
	VATPending       VATStatus = "Pending"
)

// BusinessProfile describes the registered business a user manages
// compliance for.
type BusinessProfile struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	BusinessName string       `json:"business_name"`
	BusinessType BusinessType `json:"business_type"`
	Industry     string       `json:"industry,omitempty"`
	CACRegNo     string       `json:"cac_reg_no"`
	State        string       `json:"state,omitempty"`
	TaxOffice    string       `json:"tax_office,omitempty"`
	TIN          string       `json:"tin,omitempty"`
	VATStatus    VATStatus    `json:"vat_status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ValidBusinessType reports whether bt is one of the known legal structures.
func ValidBusinessType(bt BusinessType) bool {
	switch bt {
	case BusinessTypeLimitedCompany, BusinessTypeBusinessName, BusinessTypePartnership,
		BusinessTypeNGO, BusinessTypeIncorporatedTrustees:
		return true
	}
	return false
}

// Validate checks the fields required before a profile may be stored.
func (p *BusinessProfile) Validate() error {
	if p == nil {
		return ErrInvalidPayload
	}
	if p.BusinessName == "" {
		return NewError(ErrCodeInvalid, "business name is required")
	}
	if p.CACRegNo == "" {
		return NewError(ErrCodeInvalid, "CAC registration number is required")
	}
	if !ValidBusinessType(p.BusinessType) {
		return NewError(ErrCodeInvalid, "unknown business type")
	}
	return nil
}
