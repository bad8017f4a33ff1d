package routes

import (
	"github.com/kataras/iris/v12"

	"rent-it-server/storage"
)

// Root is the liveness signal.
func Root(ctx iris.Context) {
	ctx.JSON(iris.Map{"name": "Rent It API", "status": "ok"})
}

// Schema is a placeholder probed by the external schema viewer.
func Schema(ctx iris.Context) {
	ctx.JSON(iris.Map{"status": "ok"})
}

// TestDatabase describes store and cache connectivity. Informational only,
// nothing in the request path depends on it.
func TestDatabase(ctx iris.Context) {
	cfg := storage.CurrentConfig()

	response := iris.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     "unknown",
		"connection_status": "Not Connected",
		"cache":             "not available",
		"collections":       []string{},
	}
	if cfg.URL != "" {
		response["database_url"] = "set"
	}
	if cfg.Database != "" {
		response["database_name"] = cfg.Database
	}
	if storage.CacheAvailable(ctx.Request().Context()) {
		response["cache"] = "connected"
	}

	if !storage.Available() {
		ctx.JSON(response)
		return
	}

	response["database"] = "available"
	response["connection_status"] = "Connected"

	names, err := storage.CollectionNames(ctx.Request().Context(), 10)
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
	} else {
		response["database"] = "connected and working"
		response["collections"] = names
	}

	ctx.JSON(response)
}
