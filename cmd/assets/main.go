package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/schollz/progressbar/v3"

	"github.com/ziebelle/move37/internal/config"
	"github.com/ziebelle/move37/internal/export"
	imagenoop "github.com/ziebelle/move37/internal/image/noop"
	"github.com/ziebelle/move37/internal/image/vertex"
	"github.com/ziebelle/move37/internal/port"
	"github.com/ziebelle/move37/internal/repository/postgres"
	"github.com/ziebelle/move37/internal/service"
	"github.com/ziebelle/move37/internal/speech/google"
	speechnoop "github.com/ziebelle/move37/internal/speech/noop"
)

func main() {
	manualID := flag.Int64("manual", 0, "generate assets for one manual id (0 = all manuals)")
	flag.Parse()

	if err := run(*manualID); err != nil {
		log.Fatal(err)
	}
}

func run(manualID int64) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	manualRepo := postgres.NewManualRepo(db)
	speech := newSpeechProvider(cfg)
	images := newImageProvider(cfg)

	worker := service.NewAssetWorker(manualRepo, speech, images, service.AssetWorkerConfig{
		AudioDir:    cfg.Assets.AudioDir,
		ImageDir:    cfg.Assets.ImageDir,
		Concurrency: cfg.Assets.Concurrency,
	})

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("generating assets"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	stats, err := worker.Run(context.Background(), manualID, func(export.AssetEntry) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	log.Printf("asset run complete: %d generated, %d skipped, %d failed",
		stats.Generated, stats.Skipped, stats.Failed)
	if stats.Failed > 0 {
		return fmt.Errorf("%d assets failed", stats.Failed)
	}
	return nil
}

func newSpeechProvider(cfg *config.Config) port.SpeechSynthesizer {
	switch cfg.Speech.Provider {
	case "google":
		return google.NewSynthesizer(&cfg.Speech)
	default:
		log.Printf("using noop speech provider (provider=%q)", cfg.Speech.Provider)
		return speechnoop.NewSynthesizer()
	}
}

func newImageProvider(cfg *config.Config) port.ImageGenerator {
	switch cfg.Image.Provider {
	case "vertex":
		return vertex.NewGenerator(&cfg.Image)
	default:
		log.Printf("using noop image provider (provider=%q)", cfg.Image.Provider)
		return imagenoop.NewGenerator()
	}
}
