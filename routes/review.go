package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// CreateReview handles POST /reviews.
func CreateReview(ctx iris.Context) {
	var review models.Review
	if err := ctx.ReadJSON(&review); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	review.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.ReviewCollection, review)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, review)
}

// ReviewFilter builds the list filter: optional exact reviewee match.
func ReviewFilter(revieweeID string) bson.M {
	filter := bson.M{}
	if revieweeID != "" {
		filter["reviewee_id"] = revieweeID
	}
	return filter
}

// ListReviews handles GET /reviews?reviewee_id=.
func ListReviews(ctx iris.Context) {
	docs, err := storage.GetDocuments(ctx.Request().Context(), models.ReviewCollection, ReviewFilter(ctx.URLParam("reviewee_id")), 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
