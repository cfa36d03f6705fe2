package main

import (
	"context"
	"log"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/bootstrap"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/config"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/server"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/tracer"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 1.5 Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Initialize Database (optional; the container falls back to the
	// in-memory store when no connection string is set)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
