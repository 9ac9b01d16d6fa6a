package service

import (
	"context"
	"fmt"
	"log"

	"github.com/ziebelle/move37/internal/export"
	"github.com/ziebelle/move37/internal/port"
)

// QAService answers questions grounded on the knowledge corpus.
type QAService interface {
	Answer(ctx context.Context, question string) (string, error)
}

type qaService struct {
	repo           port.ManualRepository
	answerer       port.Answerer
	corpusMaxBytes int
}

// NewQAService creates a new QAService implementation. corpusMaxBytes
// bounds the serialized corpus handed to the model; the corpus is
// prefix-truncated when it exceeds the budget.
func NewQAService(repo port.ManualRepository, answerer port.Answerer, corpusMaxBytes int) QAService {
	return &qaService{repo: repo, answerer: answerer, corpusMaxBytes: corpusMaxBytes}
}

func (s *qaService) Answer(ctx context.Context, question string) (string, error) {
	details, err := s.repo.ListDetails(ctx)
	if err != nil {
		return "", fmt.Errorf("qa: loading manuals: %w", err)
	}

	knowledge, err := export.BuildCorpus(details, s.corpusMaxBytes)
	if err != nil {
		return "", fmt.Errorf("qa: %w", err)
	}
	if s.corpusMaxBytes > 0 && len(knowledge) == s.corpusMaxBytes {
		log.Printf("qa: knowledge corpus truncated to %d bytes", s.corpusMaxBytes)
	}

	answer, err := s.answerer.Answer(ctx, question, knowledge)
	if err != nil {
		return "", fmt.Errorf("qa: answering: %w", err)
	}
	return answer, nil
}
