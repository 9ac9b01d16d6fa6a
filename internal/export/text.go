package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziebelle/move37/internal/domain"
)

// RenderManualText renders one manual as a heading-per-section plain text
// document: title heading, optional feature blocks, then each section as
// a heading followed by its content (bullets for lists, an optional
// warning line plus a 1-based numbered list plus an optional note line
// for steps, the raw body for text).
func RenderManualText(detail *domain.ManualDetail) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("# %s\n", detail.Title))

	if len(detail.Features) > 0 {
		lines = append(lines, "## Features\n")
		for _, item := range detail.Features {
			lines = append(lines, fmt.Sprintf("- %s", item))
		}
		lines = append(lines, "")
	}

	if len(detail.SpecialFeatures) > 0 {
		lines = append(lines, "## Special Features\n")
		for _, item := range detail.SpecialFeatures {
			lines = append(lines, fmt.Sprintf("- %s", item))
		}
		lines = append(lines, "")
	}

	for _, sec := range detail.Sections {
		lines = append(lines, fmt.Sprintf("## %s\n", sec.Title))

		switch body := sec.Content.(type) {
		case domain.ListBody:
			for _, item := range body {
				lines = append(lines, fmt.Sprintf("- %s", item.Text))
			}
		case domain.StepsBody:
			if body.Warning != "" {
				lines = append(lines, fmt.Sprintf("**Warning:** %s\n", body.Warning))
			}
			for i, step := range body.Steps {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, step.Text))
			}
			if body.Note != "" {
				lines = append(lines, fmt.Sprintf("\n*Note:* %s", body.Note))
			}
		case domain.TextBody:
			lines = append(lines, string(body))
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// TextFileName is the per-manual export filename.
func TextFileName(manualID int64) string {
	return fmt.Sprintf("manual_%d_structured.txt", manualID)
}

// ExportTextFiles renders every manual and writes one text file per
// manual into outDir. Per-manual write failures are collected; the export
// continues with the next manual.
func ExportTextFiles(details []domain.ManualDetail, outDir string) (written int, errs []error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, []error{fmt.Errorf("export.ExportTextFiles: %w", err)}
	}
	for i := range details {
		path := filepath.Join(outDir, TextFileName(details[i].ID))
		text := RenderManualText(&details[i])
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			errs = append(errs, fmt.Errorf("export.ExportTextFiles %s: %w", path, err))
			continue
		}
		written++
	}
	return written, errs
}
