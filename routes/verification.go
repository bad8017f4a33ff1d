package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// CreateVerificationRequest handles POST /verification.
func CreateVerificationRequest(ctx iris.Context) {
	var req models.VerificationRequest
	if err := ctx.ReadJSON(&req); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	req.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.VerificationRequestCollection, req)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, req)
}

// VerificationFilter builds the list filter: optional exact user and status
// matches.
func VerificationFilter(userID, status string) bson.M {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

// ListVerificationRequests handles GET /verification?user_id=&status=.
func ListVerificationRequests(ctx iris.Context) {
	filter := VerificationFilter(ctx.URLParam("user_id"), ctx.URLParam("status"))

	docs, err := storage.GetDocuments(ctx.Request().Context(), models.VerificationRequestCollection, filter, 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
