package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziebelle/move37/internal/domain"
)

// BuildCorpus serializes every manual detail into a single JSON document,
// ordered by manual ID, for use as a bulk context blob. When the
// serialized form exceeds maxBytes the result is a plain prefix cut at
// that budget; the tail may terminate mid-structure and consumers must
// tolerate that. maxBytes <= 0 means no limit.
func BuildCorpus(details []domain.ManualDetail, maxBytes int) (string, error) {
	if details == nil {
		details = []domain.ManualDetail{}
	}
	data, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("export.BuildCorpus: %w", err)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		data = data[:maxBytes]
	}
	return string(data), nil
}

// WriteCorpusFile builds the corpus and writes it to path, creating
// parent directories as needed.
func WriteCorpusFile(details []domain.ManualDetail, maxBytes int, path string) error {
	corpus, err := BuildCorpus(details, maxBytes)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export.WriteCorpusFile: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(corpus), 0o644); err != nil {
		return fmt.Errorf("export.WriteCorpusFile: %w", err)
	}
	return nil
}
