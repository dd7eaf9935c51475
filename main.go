package main

import (
	"log"
	"yafrican/config"
	"yafrican/database"
	adminRoutes "yafrican/routers/adminRoutes"
	authRoutes "yafrican/routers/authRoutes"
	cartRoutes "yafrican/routers/cartRoutes"
	orderRoutes "yafrican/routers/orderRoutes"
	productRoutes "yafrican/routers/productRoutes"
	supportRoutes "yafrican/routers/supportRoutes"
	"yafrican/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Periodic sweep of expired OTP records
	services.InitializeOTPScheduler(services.NewOTPService(database.Database.Db))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve locally stored uploads (payment proofs when Cloudinary is off)
	app.Static("/uploads", "./public/uploads")

	authRoutes.SetupAuthRoutes(app)
	productRoutes.SetupProductRoutes(app)
	orderRoutes.SetupOrderRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	supportRoutes.SetupSupportRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
