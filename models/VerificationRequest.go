package models

type VerificationRequest struct {
	UserID string `json:"user_id" bson:"user_id" validate:"required"`
	Type   string `json:"type" bson:"type" validate:"required,oneof=id property_ownership"`
	Status string `json:"status" bson:"status" validate:"omitempty,oneof=pending approved rejected"`
	// Links to uploaded documents, at least one.
	DocumentURLs []string `json:"document_urls" bson:"document_urls" validate:"required,min=1,dive,url"`
}

func (v *VerificationRequest) ApplyDefaults() {
	if v.Status == "" {
		v.Status = "pending"
	}
}
