package transport

// TaskRequest is the wire shape for creating or updating a compliance task.
type TaskRequest struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	DueDate       string `json:"due_date"`
	Priority      string `json:"priority"`
	PortalURL     string `json:"portal_url"`
	AuthorityName string `json:"authority_name"`
}

// TaskStatusRequest carries a stored-status transition.
type TaskStatusRequest struct {
	Status string `json:"status"`
}

// GenerateTasksRequest triggers default-task generation for a business.
type GenerateTasksRequest struct {
	BusinessProfileID string `json:"business_profile_id"`
	BusinessType      string `json:"business_type"`
}

// DocumentUploadRequest is the wire shape for uploading a document. The
// binary travels base64-encoded in Data.
type DocumentUploadRequest struct {
	BusinessProfileID string `json:"business_profile_id"`
	FileName          string `json:"file_name"`
	FileType          string `json:"file_type"`
	Category          string `json:"category"`
	ExpiryDate        string `json:"expiry_date"`
	Data              string `json:"data"`
}

// DocumentUpdateRequest mutates document metadata.
type DocumentUpdateRequest struct {
	Category   string `json:"category"`
	ExpiryDate string `json:"expiry_date"`
}

// BusinessProfileRequest is the wire shape for the business profile.
type BusinessProfileRequest struct {
	ID           string `json:"id"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	Industry     string `json:"industry"`
	CACRegNo     string `json:"cac_reg_no"`
	State        string `json:"state"`
	TaxOffice    string `json:"tax_office"`
	TIN          string `json:"tin"`
	VATStatus    string `json:"vat_status"`
}

// ProfileUpdateRequest mutates the user record.
type ProfileUpdateRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// BroadcastRequest sends an admin alert to a set of users.
type BroadcastRequest struct {
	UserIDs []string `json:"user_ids"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
}

type AuthLoginRequest struct {
	UserID string `json:"user_id"`
	TTL    int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
