package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ziebelle/move37/internal/domain"
)

// RawManual is the loosely-typed document produced by the extraction
// service. Field shapes are not guaranteed; normalization happens here,
// at a single choke point, before anything is persisted.
type RawManual struct {
	Title           string          `json:"title"`
	Features        json.RawMessage `json:"features"`
	SpecialFeatures json.RawMessage `json:"specialFeatures"`
	SourcePDFPath   string          `json:"sourcePdfPath"`
	Language        string          `json:"language"`
	Tabs            []RawTab        `json:"tabs"`
}

// RawTab is one declared section of a RawManual. Content is kept raw
// because its shape depends on Type and may be malformed.
type RawTab struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

// rawEntry accepts both entry encodings the extraction service has
// produced over time: a bare string, or an object {id, text}. The id from
// the payload is ignored; identifiers are derived from position at read
// time.
type rawEntry struct {
	Text string
	OK   bool
}

func decodeEntry(raw json.RawMessage) rawEntry {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return rawEntry{Text: s, OK: true}
	}
	var obj struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Text != nil {
		return rawEntry{Text: *obj.Text, OK: true}
	}
	return rawEntry{}
}

// Validate checks the fields a tab must carry before its content is even
// looked at. A failing tab is skipped by the ingestor, not fatal.
func (t *RawTab) Validate() error {
	if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Type) == "" {
		return fmt.Errorf("tab %q: missing id, title, or type", t.ID)
	}
	if !domain.ValidContentKinds[domain.ContentKind(t.Type)] {
		return fmt.Errorf("tab %q: %w: %q", t.ID, domain.ErrInvalidContentKind, t.Type)
	}
	return nil
}

// NormalizeContent parses a tab's raw content into the matching tagged
// union variant. Invalid entries inside a list or step sequence are
// dropped, keeping their original array position as the order of the
// surviving entries (gaps stay gaps). A content value whose overall shape
// does not match the declared type is an error and the tab is skipped.
func (t *RawTab) NormalizeContent() (domain.SectionContent, error) {
	switch domain.ContentKind(t.Type) {
	case domain.ContentKindList:
		var items []json.RawMessage
		if err := json.Unmarshal(t.Content, &items); err != nil {
			return nil, fmt.Errorf("tab %q: %w: list content is not an array", t.ID, domain.ErrInvalidContentShape)
		}
		var entries []domain.ListEntry
		for i, raw := range items {
			e := decodeEntry(raw)
			if !e.OK || e.Text == "" {
				continue
			}
			entries = append(entries, domain.ListEntry{Order: i, Text: e.Text})
		}
		return domain.ListContent{Entries: entries}, nil

	case domain.ContentKindSteps:
		var body struct {
			Warning string            `json:"warning"`
			Note    string            `json:"note"`
			Steps   []json.RawMessage `json:"steps"`
		}
		if err := json.Unmarshal(t.Content, &body); err != nil {
			return nil, fmt.Errorf("tab %q: %w: steps content is not an object", t.ID, domain.ErrInvalidContentShape)
		}
		var steps []domain.ListEntry
		for i, raw := range body.Steps {
			e := decodeEntry(raw)
			if !e.OK || e.Text == "" {
				continue
			}
			steps = append(steps, domain.ListEntry{Order: i, Text: e.Text})
		}
		return domain.StepsContent{Steps: steps, Warning: body.Warning, Note: body.Note}, nil

	case domain.ContentKindText:
		var body string
		if err := json.Unmarshal(t.Content, &body); err != nil {
			return nil, fmt.Errorf("tab %q: %w: text content is not a string", t.ID, domain.ErrInvalidContentShape)
		}
		return domain.TextContent{Body: body}, nil

	default:
		return nil, fmt.Errorf("tab %q: %w: %q", t.ID, domain.ErrInvalidContentKind, t.Type)
	}
}
