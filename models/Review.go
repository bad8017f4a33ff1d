package models

type Review struct {
	BookingID  string  `json:"booking_id" bson:"booking_id" validate:"required"`
	ReviewerID string  `json:"reviewer_id" bson:"reviewer_id" validate:"required"`
	RevieweeID string  `json:"reviewee_id" bson:"reviewee_id" validate:"required"`
	Rating     *int    `json:"rating" bson:"rating" validate:"required,gte=1,lte=5"`
	Comment    *string `json:"comment" bson:"comment"`
}

func (r *Review) ApplyDefaults() {}
