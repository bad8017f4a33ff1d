package models

type Message struct {
	ListingID  string `json:"listing_id" bson:"listing_id" validate:"required"`
	SenderID   string `json:"sender_id" bson:"sender_id" validate:"required"`
	ReceiverID string `json:"receiver_id" bson:"receiver_id" validate:"required"`
	Content    string `json:"content" bson:"content" validate:"required"`
	Read       *bool  `json:"read" bson:"read"`
}

func (m *Message) ApplyDefaults() {
	if m.Read == nil {
		m.Read = boolPtr(false)
	}
}
