package domain

import "time"

// Document categories are free-form on the wire but these cover the UI set.
const (
	DocCategoryCAC          = "CAC Documents"
	DocCategoryTax          = "Tax Documents"
	DocCategoryLicenses     = "Licenses"
	DocCategoryCertificates = "Certificates"
	DocCategoryOther        = "Other"
)

// Document holds metadata for an uploaded file. The binary lives in the
// blob store under StoragePath; expiry flags are derived at read time and
// never persisted.
type Document struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	BusinessProfileID string     `json:"business_profile_id"`
	FileName          string     `json:"file_name"`
	FileType          string     `json:"file_type"`
	FileSize          int64      `json:"file_size"`
	StoragePath       string     `json:"storage_path"`
	DownloadURL       string     `json:"download_url"`
	Category          string     `json:"category"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	UploadedAt        time.Time  `json:"uploaded_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (d *Document) HasExpiry() bool {
	return d != nil && d.ExpiryDate != nil && !d.ExpiryDate.IsZero()
}
