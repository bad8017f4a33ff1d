package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// RequestBooking handles POST /bookings.
func RequestBooking(ctx iris.Context) {
	var booking models.Booking
	if err := ctx.ReadJSON(&booking); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	booking.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.BookingCollection, booking)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, booking)
}

// BookingFilter builds the list filter. Booking documents carry no
// landlord_id field, so that condition matches nothing; it is kept as-is
// until the product decides whether a join to the listing was meant.
func BookingFilter(tenantID, landlordID string) bson.M {
	filter := bson.M{}
	if tenantID != "" {
		filter["tenant_id"] = tenantID
	}
	if landlordID != "" {
		filter["landlord_id"] = landlordID
	}
	return filter
}

// ListBookings handles GET /bookings?tenant_id=&landlord_id=.
func ListBookings(ctx iris.Context) {
	filter := BookingFilter(ctx.URLParam("tenant_id"), ctx.URLParam("landlord_id"))

	docs, err := storage.GetDocuments(ctx.Request().Context(), models.BookingCollection, filter, 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
