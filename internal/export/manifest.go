package export

import (
	"fmt"

	"github.com/ziebelle/move37/internal/domain"
)

// AssetEntry is one synthesizable content unit in the asset manifest.
// Stem is the stable filename stem ({manual id}_{derived id}) under which
// generation pipelines store output; a pre-existing file at the stem
// means the asset was already produced.
type AssetEntry struct {
	ManualID   int64
	SectionKey string
	DerivedID  string
	Stem       string
	Text       string
	SpeechText string
	IsStep     bool
}

// BuildManifest flattens every list item, step, and text body across all
// manuals into asset entries. Step speech text is prefixed "Step N." with
// the 1-based position in the reconstructed sequence. The manifest is a
// pure function of the stored content, so repeated calls and process
// restarts yield identical entries.
func BuildManifest(details []domain.ManualDetail) []AssetEntry {
	var entries []AssetEntry

	add := func(manualID int64, key, derivedID, text, speechText string, isStep bool) {
		entries = append(entries, AssetEntry{
			ManualID:   manualID,
			SectionKey: key,
			DerivedID:  derivedID,
			Stem:       domain.AssetStem(manualID, derivedID),
			Text:       text,
			SpeechText: speechText,
			IsStep:     isStep,
		})
	}

	for i := range details {
		detail := &details[i]
		for _, sec := range detail.Sections {
			switch body := sec.Content.(type) {
			case domain.ListBody:
				for _, item := range body {
					add(detail.ID, sec.Key, item.ID, item.Text, item.Text, false)
				}
			case domain.StepsBody:
				for n, step := range body.Steps {
					add(detail.ID, sec.Key, step.ID, step.Text, fmt.Sprintf("Step %d. %s", n+1, step.Text), true)
				}
			case domain.TextBody:
				if body != "" {
					add(detail.ID, sec.Key, domain.TextID(sec.Key), string(body), string(body), false)
				}
			}
		}
	}
	return entries
}
