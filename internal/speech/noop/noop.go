package noop

import (
	"context"
	"log"
)

// Synthesizer is a no-op speech provider that logs instead of calling an API.
// Used in development and tests where no TTS credentials are configured.
type Synthesizer struct{}

// NewSynthesizer creates a no-op synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize logs the text and returns a minimal WAV header so downstream
// file writes still produce a valid (silent) file.
func (s *Synthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	log.Printf("[NOOP SPEECH] would synthesize %d chars", len(text))
	return emptyWAV(), nil
}

// emptyWAV returns a valid zero-sample LINEAR16 WAV file.
func emptyWAV() []byte {
	return []byte{
		'R', 'I', 'F', 'F', 36, 0, 0, 0, 'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ', 16, 0, 0, 0, 1, 0, 1, 0,
		0x80, 0xBB, 0, 0, 0, 0x77, 1, 0, 2, 0, 16, 0,
		'd', 'a', 't', 'a', 0, 0, 0, 0,
	}
}
