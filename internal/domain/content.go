package domain

import "fmt"

// ListEntry is one normalized list item or step at ingestion time. Order
// is the item's position in the original input array, so skipped invalid
// entries leave gaps in the numbering.
type ListEntry struct {
	Order int
	Text  string
}

// SectionContent is the tagged union of normalized section bodies
// produced at the ingestion boundary. Exactly one variant exists per
// ContentKind; storage and export code dispatch on the variant, never on
// raw input shape.
type SectionContent interface {
	Kind() ContentKind
}

// ListContent is the normalized body of a list section.
type ListContent struct {
	Entries []ListEntry
}

// Kind returns ContentKindList.
func (ListContent) Kind() ContentKind { return ContentKindList }

// StepsContent is the normalized body of a steps section. Warning and
// Note apply to the section as a whole.
type StepsContent struct {
	Steps   []ListEntry
	Warning string
	Note    string
}

// Kind returns ContentKindSteps.
func (StepsContent) Kind() ContentKind { return ContentKindSteps }

// TextContent is the normalized body of a text section.
type TextContent struct {
	Body string
}

// Kind returns ContentKindText.
func (TextContent) Kind() ContentKind { return ContentKindText }

// ContentItem is a reconstructed list item or step with its derived
// identifier, as served by the API and the exporters.
type ContentItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SectionBody is the read-side union of section content shapes. The
// concrete types control their own JSON form: a list marshals as a bare
// array, steps as an object, text as a bare string.
type SectionBody interface {
	BodyKind() ContentKind
}

// ListBody marshals as a JSON array of {id, text} items.
type ListBody []ContentItem

// BodyKind returns ContentKindList.
func (ListBody) BodyKind() ContentKind { return ContentKindList }

// StepsBody marshals as {steps, warning?, note?}. Warning and Note are
// present only when non-empty.
type StepsBody struct {
	Steps   []ContentItem `json:"steps"`
	Warning string        `json:"warning,omitempty"`
	Note    string        `json:"note,omitempty"`
}

// BodyKind returns ContentKindSteps.
func (StepsBody) BodyKind() ContentKind { return ContentKindSteps }

// TextBody marshals as a bare JSON string.
type TextBody string

// BodyKind returns ContentKindText.
func (TextBody) BodyKind() ContentKind { return ContentKindText }

// ItemID derives the external identifier of a list item from its section
// key and order. Identifiers are never stored; they are recomputed on
// every read so every export path agrees on them.
func ItemID(sectionKey string, order int) string {
	return fmt.Sprintf("%s_item_%02d", sectionKey, order)
}

// StepID derives the external identifier of a step from its section key
// and order.
func StepID(sectionKey string, order int) string {
	return fmt.Sprintf("%s_step_%02d", sectionKey, order)
}

// TextID derives the external identifier of a text section body.
func TextID(sectionKey string) string {
	return sectionKey + "_main"
}

// AssetStem is the filename stem (without extension) under which external
// asset pipelines store generated audio and images for a content item.
// A pre-existing file at this stem means the asset was already produced.
func AssetStem(manualID int64, derivedID string) string {
	return fmt.Sprintf("%d_%s", manualID, derivedID)
}
