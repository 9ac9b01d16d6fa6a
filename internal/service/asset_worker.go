package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/ziebelle/move37/internal/domain"
	"github.com/ziebelle/move37/internal/export"
	"github.com/ziebelle/move37/internal/port"
)

// AssetWorkerConfig holds asset generation settings.
type AssetWorkerConfig struct {
	AudioDir    string
	ImageDir    string
	Concurrency int
}

// AssetStats summarizes one asset generation run.
type AssetStats struct {
	Generated int
	Skipped   int
	Failed    int
}

// AssetWorker walks the asset manifest and produces one audio file per
// entry and one image per step entry. Output filenames are the entry's
// stable stem, and an entry whose output file already exists is skipped,
// so runs are idempotent and resumable after a crash: previously written
// files stay in place and only the missing ones are attempted again.
type AssetWorker struct {
	repo   port.ManualRepository
	speech port.SpeechSynthesizer
	images port.ImageGenerator
	cfg    AssetWorkerConfig

	mu    sync.Mutex
	stats AssetStats
}

// NewAssetWorker creates a new AssetWorker.
func NewAssetWorker(repo port.ManualRepository, speech port.SpeechSynthesizer, images port.ImageGenerator, cfg AssetWorkerConfig) *AssetWorker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &AssetWorker{repo: repo, speech: speech, images: images, cfg: cfg}
}

// Run generates assets for one manual, or for every manual when manualID
// is 0. Per-entry failures are logged and counted but never stop the
// run; failed entries simply stay absent and are retried on the next
// run. onItem, when non-nil, is called once per manifest entry after it
// has been handled (from worker goroutines).
func (w *AssetWorker) Run(ctx context.Context, manualID int64, onItem func(export.AssetEntry)) (AssetStats, error) {
	entries, err := w.collectEntries(ctx, manualID)
	if err != nil {
		return AssetStats{}, err
	}

	for _, dir := range []string{w.cfg.AudioDir, w.cfg.ImageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return AssetStats{}, fmt.Errorf("assetWorker: creating %s: %w", dir, err)
		}
	}

	w.mu.Lock()
	w.stats = AssetStats{}
	w.mu.Unlock()

	sem := make(chan struct{}, w.cfg.Concurrency)
	var wg sync.WaitGroup

	log.Printf("assetWorker: processing %d manifest entries (concurrency=%d)", len(entries), w.cfg.Concurrency)

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		entry := entry

		sem <- struct{}{} // acquire
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }() // release

			w.processEntry(ctx, entry)
			if onItem != nil {
				onItem(entry)
			}
		}()
	}
	wg.Wait()

	w.mu.Lock()
	stats := w.stats
	w.mu.Unlock()

	log.Printf("assetWorker: done (generated=%d skipped=%d failed=%d)", stats.Generated, stats.Skipped, stats.Failed)
	return stats, ctx.Err()
}

func (w *AssetWorker) collectEntries(ctx context.Context, manualID int64) ([]export.AssetEntry, error) {
	if manualID > 0 {
		detail, err := w.repo.GetByID(ctx, manualID)
		if err != nil {
			return nil, fmt.Errorf("assetWorker: loading manual %d: %w", manualID, err)
		}
		return export.BuildManifest([]domain.ManualDetail{*detail}), nil
	}
	details, err := w.repo.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("assetWorker: loading manuals: %w", err)
	}
	return export.BuildManifest(details), nil
}

func (w *AssetWorker) processEntry(ctx context.Context, entry export.AssetEntry) {
	audioPath := filepath.Join(w.cfg.AudioDir, entry.Stem+".wav")
	w.produce(audioPath, entry, func() ([]byte, error) {
		return w.speech.Synthesize(ctx, entry.SpeechText)
	})

	// Images are only generated for step entries, as illustrations of
	// the action described by the step.
	if entry.IsStep {
		imagePath := filepath.Join(w.cfg.ImageDir, entry.Stem+".png")
		w.produce(imagePath, entry, func() ([]byte, error) {
			return w.images.Generate(ctx, entry.Text)
		})
	}
}

// produce writes one asset file unless it already exists.
func (w *AssetWorker) produce(path string, entry export.AssetEntry, generate func() ([]byte, error)) {
	if _, err := os.Stat(path); err == nil {
		w.count(func(s *AssetStats) { s.Skipped++ })
		return
	}

	data, err := generate()
	if err != nil {
		log.Printf("assetWorker: %s (%s): %v", entry.Stem, entry.SectionKey, err)
		w.count(func(s *AssetStats) { s.Failed++ })
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("assetWorker: writing %s: %v", path, err)
		w.count(func(s *AssetStats) { s.Failed++ })
		return
	}
	w.count(func(s *AssetStats) { s.Generated++ })
}

func (w *AssetWorker) count(update func(*AssetStats)) {
	w.mu.Lock()
	update(&w.stats)
	w.mu.Unlock()
}
