package domain

// ContentKind determines which content variant a section ("tab") holds.
type ContentKind string

const (
	ContentKindList  ContentKind = "list"
	ContentKindSteps ContentKind = "steps"
	ContentKindText  ContentKind = "text"
)

// ValidContentKinds is the set of content kinds accepted at ingestion.
var ValidContentKinds = map[ContentKind]bool{
	ContentKindList:  true,
	ContentKindSteps: true,
	ContentKindText:  true,
}

// SchemaVersion is stamped on every manual created by this pipeline.
const SchemaVersion = 1
