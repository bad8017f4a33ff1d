package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// SendMessage handles POST /messages.
func SendMessage(ctx iris.Context) {
	var message models.Message
	if err := ctx.ReadJSON(&message); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	message.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.MessageCollection, message)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, message)
}

// MessageFilter builds the list filter: optional exact listing match, and
// user_id matches messages where the user is either the sender or the
// receiver.
func MessageFilter(listingID, userID string) bson.M {
	filter := bson.M{}
	if listingID != "" {
		filter["listing_id"] = listingID
	}
	if userID != "" {
		filter["$or"] = []bson.M{
			{"sender_id": userID},
			{"receiver_id": userID},
		}
	}
	return filter
}

// GetMessages handles GET /messages?listing_id=&user_id=.
func GetMessages(ctx iris.Context) {
	filter := MessageFilter(ctx.URLParam("listing_id"), ctx.URLParam("user_id"))

	docs, err := storage.GetDocuments(ctx.Request().Context(), models.MessageCollection, filter, 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
