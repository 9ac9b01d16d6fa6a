package main

import (
	"fmt"
	"log"

	"github.com/ziebelle/move37/internal/config"
	"github.com/ziebelle/move37/internal/extract/gemini"
	"github.com/ziebelle/move37/internal/handler"
	"github.com/ziebelle/move37/internal/repository/postgres"
	"github.com/ziebelle/move37/internal/router"
	"github.com/ziebelle/move37/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	manualRepo := postgres.NewManualRepo(db)

	// Initialize the extraction client (also serves question answering)
	llm := gemini.NewClient(&cfg.Extractor)

	// Initialize services
	ingestSvc := service.NewIngestService(manualRepo, llm, cfg.Extractor.MaxRetries)
	manualSvc := service.NewManualService(manualRepo)
	qaSvc := service.NewQAService(manualRepo, llm, cfg.Export.CorpusMaxBytes)

	// Initialize handlers
	manualH := handler.NewManualHandler(manualSvc, ingestSvc)
	qaH := handler.NewQAHandler(qaSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(manualH, qaH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
