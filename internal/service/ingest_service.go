package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/ziebelle/move37/internal/domain"
	"github.com/ziebelle/move37/internal/extract"
	"github.com/ziebelle/move37/internal/port"
)

const defaultManualTitle = "Untitled Manual"

// IngestService turns extracted manual documents into persisted rows.
type IngestService interface {
	// Ingest validates and persists one extracted manual. Re-ingesting a
	// source path that already exists is a no-op returning the existing
	// manual ID with created false.
	Ingest(ctx context.Context, raw *extract.RawManual) (id int64, created bool, err error)

	// IngestFile runs the full pipeline for one source file: read,
	// extract, ingest.
	IngestFile(ctx context.Context, path string) (id int64, created bool, err error)
}

type ingestService struct {
	repo       port.ManualRepository
	extractor  port.Extractor
	maxRetries int
}

// NewIngestService creates a new IngestService implementation.
func NewIngestService(repo port.ManualRepository, extractor port.Extractor, maxRetries int) IngestService {
	if maxRetries <= 0 {
		maxRetries = 2
	}
	return &ingestService{repo: repo, extractor: extractor, maxRetries: maxRetries}
}

func (s *ingestService) Ingest(ctx context.Context, raw *extract.RawManual) (int64, bool, error) {
	sourcePath := strings.TrimSpace(raw.SourcePDFPath)
	if sourcePath == "" {
		return 0, false, domain.ErrMissingSourcePath
	}

	// Idempotent short-circuit.
	id, err := s.repo.GetIDBySourcePath(ctx, sourcePath)
	if err == nil {
		log.Printf("ingest: manual %q already exists (ID %d), skipping", sourcePath, id)
		return id, false, nil
	}
	if !errors.Is(err, domain.ErrManualNotFound) {
		return 0, false, fmt.Errorf("ingest: checking source path: %w", err)
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = defaultManualTitle
	}
	manual := &domain.Manual{
		Title:           title,
		SourcePath:      sourcePath,
		Language:        strings.TrimSpace(raw.Language),
		Features:        domain.EncodeStringList(domain.DecodeStringList(raw.Features)),
		SpecialFeatures: domain.EncodeStringList(domain.DecodeStringList(raw.SpecialFeatures)),
	}

	sections := s.normalizeSections(sourcePath, raw.Tabs)

	err = s.repo.Create(ctx, manual, sections)
	if err == nil {
		log.Printf("ingest: stored manual %q (ID %d) with %d sections", sourcePath, manual.ID, len(sections))
		return manual.ID, true, nil
	}
	if !errors.Is(err, domain.ErrDuplicateSourcePath) {
		return 0, false, fmt.Errorf("ingest: storing manual %q: %w", sourcePath, err)
	}

	// Lost the race against a concurrent first ingestion of the same
	// source path. The unique constraint rejected us; retry the
	// idempotent lookup until the winner's row is visible.
	var winnerID int64
	lookup := func() error {
		winnerID, err = s.repo.GetIDBySourcePath(ctx, sourcePath)
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	if err := backoff.Retry(lookup, policy); err != nil {
		return 0, false, fmt.Errorf("ingest: resolving concurrent insert for %q: %w", sourcePath, err)
	}
	log.Printf("ingest: manual %q inserted concurrently (ID %d)", sourcePath, winnerID)
	return winnerID, false, nil
}

// normalizeSections validates each declared tab and parses its content
// into the tagged union. Invalid tabs are skipped with a log line and
// never abort the manual.
func (s *ingestService) normalizeSections(sourcePath string, tabs []extract.RawTab) []port.IngestSection {
	var sections []port.IngestSection
	for i := range tabs {
		tab := &tabs[i]
		if err := tab.Validate(); err != nil {
			log.Printf("ingest: %s: skipping section: %v", sourcePath, err)
			continue
		}
		content, err := tab.NormalizeContent()
		if err != nil {
			log.Printf("ingest: %s: skipping section: %v", sourcePath, err)
			continue
		}
		sections = append(sections, port.IngestSection{
			Key:      tab.ID,
			Title:    tab.Title,
			Position: i,
			Content:  content,
		})
	}
	return sections
}

func (s *ingestService) IngestFile(ctx context.Context, path string) (int64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false, fmt.Errorf("ingest: reading %s: %w", path, err)
	}

	input := port.ExtractInput{
		SourcePath:  path,
		ContentType: contentTypeForPath(path),
		Data:        data,
	}

	var raw *extract.RawManual
	operation := func() error {
		raw, err = s.extractor.Extract(ctx, input)
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.maxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return 0, false, fmt.Errorf("ingest: extracting %s: %w", path, err)
	}

	return s.Ingest(ctx, raw)
}

func contentTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	default:
		return "text/plain"
	}
}
