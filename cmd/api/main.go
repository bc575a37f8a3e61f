package main

import (
	"log"
	"os"

	"github.com/01moynul/review-seller-golang/internal/blob"
	"github.com/01moynul/review-seller-golang/internal/database"
	"github.com/01moynul/review-seller-golang/internal/handlers"
	"github.com/01moynul/review-seller-golang/internal/routes"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Could not prepare the database schema: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "5000"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	store, err := blob.NewDiskStore(uploadDir, baseURL)
	if err != nil {
		log.Fatalf("Could not prepare the upload directory: %v", err)
	}

	h := &handlers.Handlers{DB: db, Blob: store}
	router := routes.SetupRouter(h, uploadDir)

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
