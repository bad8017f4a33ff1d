package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// CreateUser handles POST /users.
func CreateUser(ctx iris.Context) {
	var user models.User
	if err := ctx.ReadJSON(&user); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	user.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.UserCollection, user)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, user)
}

// UserFilter builds the list filter: optional exact role match.
func UserFilter(role string) bson.M {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	return filter
}

// ListUsers handles GET /users?role=.
func ListUsers(ctx iris.Context) {
	docs, err := storage.GetDocuments(ctx.Request().Context(), models.UserCollection, UserFilter(ctx.URLParam("role")), 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
