package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"rent-it-server/storage"
	"rent-it-server/utils"
)

// handleStoreError maps adapter failures onto HTTP errors. An unconfigured
// store is a 503 precondition failure, everything else a generic 500.
func handleStoreError(err error, ctx iris.Context) {
	if errors.Is(err, storage.ErrUnavailable) {
		utils.CreateUnavailableError(ctx)
		return
	}
	utils.CreateInternalServerError(ctx)
}
