package models

// Collection names are the lowercase model names. The table is explicit so
// nothing depends on runtime type introspection.
const (
	UserCollection                = "user"
	ListingCollection             = "listing"
	BookingCollection             = "booking"
	MessageCollection             = "message"
	ReviewCollection              = "review"
	SavedSearchCollection         = "savedsearch"
	VerificationRequestCollection = "verificationrequest"
)

// Collections maps each model name to its collection, built once.
var Collections = map[string]string{
	"User":                UserCollection,
	"Listing":             ListingCollection,
	"Booking":             BookingCollection,
	"Message":             MessageCollection,
	"Review":              ReviewCollection,
	"SavedSearch":         SavedSearchCollection,
	"VerificationRequest": VerificationRequestCollection,
}

func boolPtr(b bool) *bool {
	return &b
}
