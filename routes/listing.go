package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// CreateListing handles POST /listings.
func CreateListing(ctx iris.Context) {
	var listing models.Listing
	if err := ctx.ReadJSON(&listing); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	listing.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.ListingCollection, listing)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, listing)
}

// ListingFilter builds the search filter: inclusive price range, exact
// room_type and available_now. Geographic parameters are not part of the
// filter, see SearchListings.
func ListingFilter(priceMin, priceMax *float64, roomType string, availableNow *bool) bson.M {
	filter := bson.M{}
	if priceMin != nil || priceMax != nil {
		price := bson.M{}
		if priceMin != nil {
			price["$gte"] = *priceMin
		}
		if priceMax != nil {
			price["$lte"] = *priceMax
		}
		filter["price"] = price
	}
	if roomType != "" {
		filter["room_type"] = roomType
	}
	if availableNow != nil {
		filter["available_now"] = *availableNow
	}
	return filter
}

// SearchListings handles
// GET /listings?lat=&lng=&radius_km=&price_min=&price_max=&room_type=&available_now=.
//
// lat, lng and radius_km are accepted but never applied: there is no geo
// index, so no geospatial predicate is built and results are filtered by
// price, room type and availability only.
func SearchListings(ctx iris.Context) {
	var priceMin, priceMax *float64
	if ctx.URLParamExists("price_min") {
		if v, err := ctx.URLParamFloat64("price_min"); err == nil {
			priceMin = &v
		}
	}
	if ctx.URLParamExists("price_max") {
		if v, err := ctx.URLParamFloat64("price_max"); err == nil {
			priceMax = &v
		}
	}

	var availableNow *bool
	if ctx.URLParamExists("available_now") {
		if v, err := ctx.URLParamBool("available_now"); err == nil {
			availableNow = &v
		}
	}

	filter := ListingFilter(priceMin, priceMax, ctx.URLParam("room_type"), availableNow)

	docs, err := storage.GetDocuments(ctx.Request().Context(), models.ListingCollection, filter, 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
