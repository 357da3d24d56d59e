package main

import (
	"log"

	"github.com/sanjanathakeri/courseappone/config"
	controllers "github.com/sanjanathakeri/courseappone/controllers/course"
	"github.com/sanjanathakeri/courseappone/database"
	"github.com/sanjanathakeri/courseappone/payment"
	"github.com/sanjanathakeri/courseappone/routers/courseRoutes"
	"github.com/sanjanathakeri/courseappone/storage"
	"github.com/sanjanathakeri/courseappone/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire external service clients into the handlers
	controllers.PaymentGateway = payment.NewStripeClient(
		config.AppConfig.StripeApiURL,
		config.AppConfig.StripeSecretKey,
	)
	controllers.ImageStore = storage.NewCloudinaryClient(
		config.AppConfig.CloudinaryApiURL,
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryApiKey,
		config.AppConfig.CloudinaryApiSecret,
	)

	utils.InitializePurchaseScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
