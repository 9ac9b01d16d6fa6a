package noop

import (
	"context"
	"log"
)

// Generator is a no-op image provider that logs instead of calling an API.
type Generator struct{}

// NewGenerator creates a no-op generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate logs the prompt and returns a 1x1 transparent PNG.
func (g *Generator) Generate(_ context.Context, prompt string) ([]byte, error) {
	log.Printf("[NOOP IMAGE] would generate image for: %.80s", prompt)
	return placeholderPNG(), nil
}

// placeholderPNG returns a 1x1 transparent PNG.
func placeholderPNG() []byte {
	return []byte{
		0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R',
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
		0x00, 0x00, 0x00, 0x0D, 'I', 'D', 'A', 'T',
		0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00, 0x05, 0x00, 0x01,
		0x0D, 0x0A, 0x2D, 0xB4,
		0x00, 0x00, 0x00, 0x00, 'I', 'E', 'N', 'D',
		0xAE, 0x42, 0x60, 0x82,
	}
}
