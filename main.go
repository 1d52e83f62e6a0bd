package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/danielbonkowsky/sharayunet/config"
	"github.com/danielbonkowsky/sharayunet/migrations"
	"github.com/danielbonkowsky/sharayunet/routes"
	"github.com/danielbonkowsky/sharayunet/storage"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// Initialize database and apply migrations before serving
	db := config.InitDB(cfg.DatabasePath)
	if err := migrations.Run(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	media := storage.NewR2Store(&cfg.R2)

	// Create a new Gin router
	r := gin.Default()

	// Initialize routes
	routes.SetupRoutes(r, db, media, cfg)

	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
