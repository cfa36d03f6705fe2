package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/implementation"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/database"
)

// Seeds a handful of quotes for local development. Run after migrate.
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

	store, err := docstore.NewGormStore(db, docstore.NewChangeBus())
	if err != nil {
		log.Fatalf("Error: Failed to initialize document store: %v", err)
	}

	repo := implementation.NewQuoteRepository(store, logger.NewNopLogger())
	ctx := context.Background()

	seeds := []dto.CreateQuoteRequest{
		{
			Content: "La radio reste le média le plus proche des populations rurales",
			Author:  dto.AuthorPayload{Name: "Awa Diop", Role: "presenter"},
			Context: dto.ContextPayload{
				ShowPlanId:   "1",
				EmissionName: "La Matinale",
			},
			Metadata: dto.MetadataPayload{Category: "société", Tags: []string{"médias"}},
		},
		{
			Content:     "Le budget communal sera voté avant la fin du mois",
			ContentType: "statement",
			Author:      dto.AuthorPayload{Name: "Maire de la commune", Role: "guest"},
			Context: dto.ContextPayload{
				ShowPlanId:   "1",
				EmissionName: "La Matinale",
			},
			Metadata: dto.MetadataPayload{Category: "politique", Importance: "high"},
		},
		{
			Content: "Nos jeunes talents méritent une scène nationale",
			Author:  dto.AuthorPayload{Name: "Invitée culture", Role: "guest"},
			Context: dto.ContextPayload{
				ShowPlanId:   "2",
				EmissionName: "Couleurs Locales",
			},
			Metadata: dto.MetadataPayload{Category: "culture", Tags: []string{"musique", "jeunesse"}},
		},
	}

	for _, seed := range seeds {
		req := seed
		id, err := repo.Create(ctx, &req, "seed", "Seeder")
		if err != nil {
			log.Fatalf("Error: Failed to seed quote: %v", err)
		}
		log.Printf("Seeded quote %s", id)
	}

	log.Println("Success: Seeding completed.")
}
