package domain

import "time"

// Manual represents one ingested source document. Features and
// SpecialFeatures are stored as JSON array strings; readers decode them
// leniently (any decode failure yields an empty list, never an error).
type Manual struct {
	ID              int64     `db:"manual_id" json:"manual_id"`
	Title           string    `db:"title" json:"title"`
	SourcePath      string    `db:"source_path" json:"source_path"`
	Language        string    `db:"language" json:"language"`
	Features        string    `db:"features" json:"-"`
	SpecialFeatures string    `db:"special_features" json:"-"`
	SchemaVersion   int       `db:"schema_version" json:"schema_version"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Section is a named, ordered, typed sub-part of a manual ("tab").
// (ManualID, Position) is unique; Kind is immutable after creation and
// gates which content table may reference the section.
type Section struct {
	ID       int64       `db:"tab_id" json:"tab_id"`
	ManualID int64       `db:"manual_id" json:"manual_id"`
	Key      string      `db:"tab_key" json:"id"`
	Title    string      `db:"title" json:"title"`
	Position int         `db:"tab_order" json:"tab_order"`
	Kind     ContentKind `db:"content_type" json:"type"`
}

// ListItem is one row of a list section's content.
type ListItem struct {
	ID        int64  `db:"item_id"`
	SectionID int64  `db:"tab_id"`
	Position  int    `db:"item_order"`
	Text      string `db:"text"`
}

// Step is one row of a steps section's content. Warning is populated only
// on the row at position 0 and Note only on the last row; both belong to
// the section as a whole, not to the individual step. Readers must
// reconstruct section-level warning/note from the first and last rows
// only.
type Step struct {
	ID        int64   `db:"step_id"`
	SectionID int64   `db:"tab_id"`
	Position  int     `db:"step_order"`
	Text      string  `db:"text"`
	Warning   *string `db:"warning"`
	Note      *string `db:"note"`
}

// TextBlock is the single body of a text section.
type TextBlock struct {
	ID        int64  `db:"text_content_id"`
	SectionID int64  `db:"tab_id"`
	Text      string `db:"text"`
}

// ManualSummary is the listing projection of a manual.
type ManualSummary struct {
	ID         int64  `db:"manual_id" json:"manual_id"`
	Title      string `db:"title" json:"title"`
	SourcePath string `db:"source_path" json:"source_path"`
}

// ManualDetail is the fully reconstructed form of a manual: decoded
// metadata plus ordered sections with their typed content. It is the same
// shape the ingestor originally accepted for everything that was stored.
type ManualDetail struct {
	ID              int64         `json:"manual_id"`
	Title           string        `json:"title"`
	SourcePath      string        `json:"source_path"`
	Language        string        `json:"language"`
	Features        []string      `json:"features"`
	SpecialFeatures []string      `json:"special_features"`
	SchemaVersion   int           `json:"schema_version"`
	CreatedAt       time.Time     `json:"created_at"`
	Sections        []SectionView `json:"tabs"`
}

// SectionView is a section with its reconstructed content body.
type SectionView struct {
	Key     string      `json:"id"`
	Title   string      `json:"title"`
	Kind    ContentKind `json:"type"`
	Content SectionBody `json:"content"`
}
