package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ziebelle/move37/internal/config"
	"github.com/ziebelle/move37/internal/export"
	"github.com/ziebelle/move37/internal/repository/postgres"
)

func main() {
	corpus := flag.Bool("corpus", false, "write the JSON knowledge corpus file")
	text := flag.Bool("text", false, "write per-manual structured text files")
	flag.Parse()

	if !*corpus && !*text {
		fmt.Println("Usage: export [-corpus] [-text]")
		os.Exit(1)
	}

	if err := run(*corpus, *text); err != nil {
		log.Fatal(err)
	}
}

func run(corpus, text bool) error {
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

	details, err := manualRepo.ListDetails(context.Background())
	if err != nil {
		return fmt.Errorf("loading manuals: %w", err)
	}
	log.Printf("loaded %d manuals", len(details))

	if corpus {
		if err := export.WriteCorpusFile(details, cfg.Export.CorpusMaxBytes, cfg.Export.CorpusFile); err != nil {
			return fmt.Errorf("writing corpus: %w", err)
		}
		log.Printf("wrote knowledge corpus to %s", cfg.Export.CorpusFile)
	}

	if text {
		written, errs := export.ExportTextFiles(details, cfg.Export.TextDir)
		for _, e := range errs {
			log.Printf("text export error: %v", e)
		}
		log.Printf("wrote %d text files to %s", written, cfg.Export.TextDir)
		if len(errs) > 0 {
			return fmt.Errorf("%d text files failed", len(errs))
		}
	}

	return nil
}
