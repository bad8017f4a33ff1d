package models

type SavedSearch struct {
	TenantID string `json:"tenant_id" bson:"tenant_id" validate:"required"`
	Name     string `json:"name" bson:"name" validate:"required"`
	// Arbitrary search criteria, no fixed shape.
	Query         map[string]interface{} `json:"query" bson:"query" validate:"required"`
	AlertsEnabled *bool                  `json:"alerts_enabled" bson:"alerts_enabled"`
}

func (s *SavedSearch) ApplyDefaults() {
	if s.AlertsEnabled == nil {
		s.AlertsEnabled = boolPtr(true)
	}
}
