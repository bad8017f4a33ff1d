package models

type Location struct {
	Lat     *float64 `json:"lat" bson:"lat" validate:"required,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" bson:"lng" validate:"required,gte=-180,lte=180"`
	Address *string  `json:"address" bson:"address"`
	City    *string  `json:"city" bson:"city"`
	State   *string  `json:"state" bson:"state"`
	Country *string  `json:"country" bson:"country"`
}

type Listing struct {
	LandlordID   string   `json:"landlord_id" bson:"landlord_id" validate:"required"`
	Title        string   `json:"title" bson:"title" validate:"required"`
	Description  string   `json:"description" bson:"description" validate:"required"`
	Photos       []string `json:"photos" bson:"photos" validate:"omitempty,dive,url"`
	VideoURL     *string  `json:"video_url" bson:"video_url" validate:"omitempty,url"`
	RoomType     string   `json:"room_type" bson:"room_type" validate:"required,oneof=private_room shared_room entire_flat"`
	Amenities    []string `json:"amenities" bson:"amenities"`
	HouseRules   []string `json:"house_rules" bson:"house_rules"`
	Price        *float64 `json:"price" bson:"price" validate:"required,gte=0"` // base price in local currency
	PriceUnit    string   `json:"price_unit" bson:"price_unit" validate:"required,oneof=night week month"`
	Location     Location `json:"location" bson:"location"`
	AvailableNow *bool    `json:"available_now" bson:"available_now"`
	// Specific dates available, ISO format.
	AvailabilityDates []string `json:"availability_dates" bson:"availability_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

func (l *Listing) ApplyDefaults() {
	if l.Photos == nil {
		l.Photos = []string{}
	}
	if l.Amenities == nil {
		l.Amenities = []string{}
	}
	if l.HouseRules == nil {
		l.HouseRules = []string{}
	}
	if l.AvailabilityDates == nil {
		l.AvailabilityDates = []string{}
	}
	if l.AvailableNow == nil {
		l.AvailableNow = boolPtr(false)
	}
}
