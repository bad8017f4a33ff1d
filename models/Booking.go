package models

// Booking dates are stored as opaque ISO strings; there is deliberately no
// ordering check between start_date and end_date.
type Booking struct {
	ListingID        string  `json:"listing_id" bson:"listing_id" validate:"required"`
	TenantID         string  `json:"tenant_id" bson:"tenant_id" validate:"required"`
	StartDate        string  `json:"start_date" bson:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string  `json:"end_date" bson:"end_date" validate:"required,datetime=2006-01-02"`
	Status           string  `json:"status" bson:"status" validate:"omitempty,oneof=requested accepted declined cancelled completed"`
	Instant          *bool   `json:"instant" bson:"instant"`
	PaymentReference *string `json:"payment_reference" bson:"payment_reference"`
}

func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = "requested"
	}
	if b.Instant == nil {
		b.Instant = boolPtr(false)
	}
}
