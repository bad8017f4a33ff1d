package routes

import (
	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"

	"rent-it-server/models"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

// CreateSavedSearch handles POST /saved-searches.
func CreateSavedSearch(ctx iris.Context) {
	var search models.SavedSearch
	if err := ctx.ReadJSON(&search); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	search.ApplyDefaults()

	id, err := storage.CreateDocument(ctx.Request().Context(), models.SavedSearchCollection, search)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	utils.CreatedJSON(ctx, id, search)
}

// SavedSearchFilter builds the list filter: exact tenant match. tenant_id is
// the one mandatory list parameter in the API.
func SavedSearchFilter(tenantID string) bson.M {
	return bson.M{"tenant_id": tenantID}
}

// ListSavedSearches handles GET /saved-searches?tenant_id= (required).
func ListSavedSearches(ctx iris.Context) {
	tenantID := ctx.URLParam("tenant_id")
	if tenantID == "" {
		utils.CreateError(iris.StatusUnprocessableEntity, "Validation error", "tenant_id query parameter is required", ctx)
		return
	}

	docs, err := storage.GetDocuments(ctx.Request().Context(), models.SavedSearchCollection, SavedSearchFilter(tenantID), 0)
	if err != nil {
		handleStoreError(err, ctx)
		return
	}

	ctx.JSON(utils.PublicDocuments(docs))
}
