package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting document store migration...")

	// NewGormStore runs AutoMigrate for the documents table.
	if _, err := docstore.NewGormStore(db, docstore.NewChangeBus()); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Indexes AutoMigrate does not cover: jsonb containment lookups and the
	// per-collection chronological scans behind every quote listing.
	indexSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE INDEX IF NOT EXISTS idx_documents_data_gin ON documents USING gin (data jsonb_path_ops);`,
		`CREATE INDEX IF NOT EXISTS idx_documents_collection_created_at ON documents (collection, created_at);`,
	}

	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute index SQL: %v. Continuing...", err)
		}
	}

	log.Println("Success: Database migration completed.")
}
