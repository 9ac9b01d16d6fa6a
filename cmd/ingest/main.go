package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziebelle/move37/internal/config"
	"github.com/ziebelle/move37/internal/extract"
	"github.com/ziebelle/move37/internal/extract/gemini"
	"github.com/ziebelle/move37/internal/repository/postgres"
	"github.com/ziebelle/move37/internal/service"
)

func main() {
	input := flag.String("input", "", "single manual file to ingest (.json is loaded directly, anything else goes through extraction)")
	dir := flag.String("dir", "", "directory of manual files to ingest")
	limit := flag.Int("limit", 0, "maximum number of files to ingest from -dir (0 = all)")
	flag.Parse()

	if *input == "" && *dir == "" {
		fmt.Println("Usage: ingest -input FILE | -dir DIR [-limit N]")
		os.Exit(1)
	}

	if err := run(*input, *dir, *limit); err != nil {
		log.Fatal(err)
	}
}

func run(input, dir string, limit int) error {
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
	llm := gemini.NewClient(&cfg.Extractor)
	ingestSvc := service.NewIngestService(manualRepo, llm, cfg.Extractor.MaxRetries)

	ctx := context.Background()

	if input != "" {
		id, created, err := ingestOne(ctx, ingestSvc, input)
		if err != nil {
			return err
		}
		logIngested(input, id, created)
		return nil
	}

	paths, err := collectFiles(dir, limit)
	if err != nil {
		return err
	}

	var succeeded, failed int
	for _, path := range paths {
		id, created, err := ingestOne(ctx, ingestSvc, path)
		if err != nil {
			log.Printf("failed to ingest %s: %v", path, err)
			failed++
			continue
		}
		logIngested(path, id, created)
		succeeded++
	}
	log.Printf("done: %d ingested, %d failed", succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// ingestOne loads a pre-extracted JSON manual directly, or runs any other
// file through the extraction pipeline.
func ingestOne(ctx context.Context, svc service.IngestService, path string) (int64, bool, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, false, fmt.Errorf("reading %s: %w", path, err)
		}
		var raw extract.RawManual
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, false, fmt.Errorf("decoding %s: %w", path, err)
		}
		if raw.SourcePDFPath == "" {
			raw.SourcePDFPath = path
		}
		return svc.Ingest(ctx, &raw)
	}
	return svc.IngestFile(ctx, path)
}

func logIngested(path string, id int64, created bool) {
	if created {
		log.Printf("ingested %s as manual %d", path, id)
		return
	}
	log.Printf("manual %d already present for %s", id, path)
}

func collectFiles(dir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	return paths, nil
}
