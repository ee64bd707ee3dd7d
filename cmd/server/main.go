package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "converter-service/docs" // swagger docs
	"converter-service/internal/handlers"
	"converter-service/internal/mapping"
)

// @title Real Intent to Pipedrive Converter API
// @version 1.0
// @description Converts Real Intent CSV exports into Pipedrive-importable CSV files: required columns are validated, renamed, and reordered; everything else is dropped for manual re-creation as Pipedrive custom fields.
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	// Load .env file if present; fall back to the process environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	columnMapping := mapping.Default()
	if path := getEnv("MAPPING_FILE", ""); path != "" {
		loaded, err := mapping.LoadFile(path)
		if err != nil {
			log.Fatalf("Failed to load mapping file %s: %v", path, err)
		}
		columnMapping = loaded
		log.Printf("Loaded column mapping override from %s (%d columns)", path, len(columnMapping))
	}

	// --- HTTP Server Setup ---
	router := gin.Default()

	api := handlers.NewAPI(columnMapping)
	api.RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start the server
	port := getEnv("CONVERTER_SERVICE_PORT", "8080")
	log.Printf("Starting Converter Service on port :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start Converter Service: %v", err)
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
