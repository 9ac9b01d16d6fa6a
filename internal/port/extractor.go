package port

import (
	"context"

	"github.com/ziebelle/move37/internal/extract"
)

// ExtractInput carries the source document handed to the extraction service.
type ExtractInput struct {
	SourcePath  string
	ContentType string
	Data        []byte
}

// Extractor abstracts the LLM service that turns an unstructured manual
// into the loosely-typed RawManual document.
type Extractor interface {
	Extract(ctx context.Context, input ExtractInput) (*extract.RawManual, error)
}

// Answerer abstracts the LLM service that answers a question grounded on
// the serialized knowledge corpus.
type Answerer interface {
	Answer(ctx context.Context, question, knowledge string) (string, error)
}
