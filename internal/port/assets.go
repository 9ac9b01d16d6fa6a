package port

import "context"

// SpeechSynthesizer abstracts the text-to-speech service.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ImageGenerator abstracts the image generation service.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
