package main

import (
	"log"
	"os"

	"github.com/sonikrishna9/Tenda-admin/db"
	"github.com/sonikrishna9/Tenda-admin/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env in development; production sets variables directly
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system environment variables")
	}

	// Initialize database
	db.InitDatabase()

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(routes.UploadsDir); os.IsNotExist(err) {
		os.MkdirAll(routes.UploadsDir, 0755)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 200 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Serve static files
	app.Static("/uploads", routes.UploadsDir)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
