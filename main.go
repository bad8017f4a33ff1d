package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"rent-it-server/routes"
	"rent-it-server/storage"
	"rent-it-server/utils"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	if err := utils.InitLogger(); err != nil {
		panic(err)
	}

	// Initialize services. Missing store configuration disables persistence
	// instead of crashing; operations fail lazily with a 503.
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	app.Get("/", routes.Root)
	app.Get("/schema", routes.Schema)
	app.Get("/test", routes.TestDatabase)

	users := app.Party("/users")
	{
		users.Post("/", routes.CreateUser)
		users.Get("/", routes.ListUsers)
	}

	listings := app.Party("/listings")
	{
		listings.Post("/", routes.CreateListing)
		listings.Get("/", routes.SearchListings)
	}

	bookings := app.Party("/bookings")
	{
		bookings.Post("/", routes.RequestBooking)
		bookings.Get("/", routes.ListBookings)
	}

	messages := app.Party("/messages")
	{
		messages.Post("/", routes.SendMessage)
		messages.Get("/", routes.GetMessages)
	}

	reviews := app.Party("/reviews")
	{
		reviews.Post("/", routes.CreateReview)
		reviews.Get("/", routes.ListReviews)
	}

	savedSearches := app.Party("/saved-searches")
	{
		savedSearches.Post("/", routes.CreateSavedSearch)
		savedSearches.Get("/", routes.ListSavedSearches)
	}

	verification := app.Party("/verification")
	{
		verification.Post("/", routes.CreateVerificationRequest)
		verification.Get("/", routes.ListVerificationRequests)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	utils.Log().Info("rent-it-server listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		utils.Log().Fatal("server error", zap.Error(err))
	}
}
