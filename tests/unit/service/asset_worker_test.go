package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ziebelle/move37/internal/domain"
	"github.com/ziebelle/move37/internal/export"
	"github.com/ziebelle/move37/internal/service"
	"github.com/ziebelle/move37/mocks"
)

func assetDetail() *domain.ManualDetail {
	return &domain.ManualDetail{
		ID:    1,
		Title: "Blender 3000",
		Sections: []domain.SectionView{
			{Key: "parts", Title: "Parts", Kind: domain.ContentKindList, Content: domain.ListBody{
				{ID: "parts_item_00", Text: "bowl"},
			}},
			{Key: "wash", Title: "Washing", Kind: domain.ContentKindSteps, Content: domain.StepsBody{
				Steps: []domain.ContentItem{{ID: "wash_step_00", Text: "rinse the bowl"}},
			}},
			{Key: "about", Title: "About", Kind: domain.ContentKindText, Content: domain.TextBody("General info.")},
		},
	}
}

func newTestWorker(t *testing.T, repo *mocks.MockManualRepo, speech *mocks.MockSpeechSynthesizer, images *mocks.MockImageGenerator) (*service.AssetWorker, string, string) {
	t.Helper()
	audioDir := filepath.Join(t.TempDir(), "audio")
	imageDir := filepath.Join(t.TempDir(), "images")
	worker := service.NewAssetWorker(repo, speech, images, service.AssetWorkerConfig{
		AudioDir:    audioDir,
		ImageDir:    imageDir,
		Concurrency: 2,
	})
	return worker, audioDir, imageDir
}

func TestAssetWorker_Run_GeneratesAllAssets(t *testing.T) {
	repo := new(mocks.MockManualRepo)
	speech := new(mocks.MockSpeechSynthesizer)
	images := new(mocks.MockImageGenerator)
	worker, audioDir, imageDir := newTestWorker(t, repo, speech, images)

	repo.On("GetByID", mock.Anything, int64(1)).Return(assetDetail(), nil)
	speech.On("Synthesize", mock.Anything, "bowl").Return([]byte("wav1"), nil)
	speech.On("Synthesize", mock.Anything, "Step 1. rinse the bowl").Return([]byte("wav2"), nil)
	speech.On("Synthesize", mock.Anything, "General info.").Return([]byte("wav3"), nil)
	images.On("Generate", mock.Anything, "rinse the bowl").Return([]byte("png1"), nil)

	stats, err := worker.Run(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Generated)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)

	for _, name := range []string{"1_parts_item_00.wav", "1_wash_step_00.wav", "1_about_main.wav"} {
		_, err := os.Stat(filepath.Join(audioDir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(imageDir, "1_wash_step_00.png"))
	assert.NoError(t, err)

	// images only get generated for steps
	images.AssertNumberOfCalls(t, "Generate", 1)
}

func TestAssetWorker_Run_SkipsExistingFiles(t *testing.T) {
	repo := new(mocks.MockManualRepo)
	speech := new(mocks.MockSpeechSynthesizer)
	images := new(mocks.MockImageGenerator)
	worker, _, _ := newTestWorker(t, repo, speech, images)

	repo.On("GetByID", mock.Anything, int64(1)).Return(assetDetail(), nil)
	speech.On("Synthesize", mock.Anything, mock.Anything).Return([]byte("wav"), nil)
	images.On("Generate", mock.Anything, mock.Anything).Return([]byte("png"), nil)

	first, err := worker.Run(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Equal(t, 4, first.Generated)

	second, err := worker.Run(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Generated)
	assert.Equal(t, 4, second.Skipped)

	// no provider call happened for the second run
	speech.AssertNumberOfCalls(t, "Synthesize", 3)
	images.AssertNumberOfCalls(t, "Generate", 1)
}

func TestAssetWorker_Run_CountsFailures(t *testing.T) {
	repo := new(mocks.MockManualRepo)
	speech := new(mocks.MockSpeechSynthesizer)
	images := new(mocks.MockImageGenerator)
	worker, audioDir, _ := newTestWorker(t, repo, speech, images)

	repo.On("GetByID", mock.Anything, int64(1)).Return(assetDetail(), nil)
	speech.On("Synthesize", mock.Anything, "bowl").Return(nil, errors.New("tts unavailable"))
	speech.On("Synthesize", mock.Anything, mock.Anything).Return([]byte("wav"), nil)
	images.On("Generate", mock.Anything, mock.Anything).Return([]byte("png"), nil)

	stats, err := worker.Run(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Generated)
	assert.Equal(t, 1, stats.Failed)

	// failed entry left no file behind, so the next run retries it
	_, statErr := os.Stat(filepath.Join(audioDir, "1_parts_item_00.wav"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAssetWorker_Run_AllManuals(t *testing.T) {
	repo := new(mocks.MockManualRepo)
	speech := new(mocks.MockSpeechSynthesizer)
	images := new(mocks.MockImageGenerator)
	worker, _, _ := newTestWorker(t, repo, speech, images)

	repo.On("ListDetails", mock.Anything).Return([]domain.ManualDetail{*assetDetail()}, nil)
	speech.On("Synthesize", mock.Anything, mock.Anything).Return([]byte("wav"), nil)
	images.On("Generate", mock.Anything, mock.Anything).Return([]byte("png"), nil)

	var mu sync.Mutex
	var seen int
	stats, err := worker.Run(context.Background(), 0, func(export.AssetEntry) {
		mu.Lock()
		seen++
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Generated)
	// one callback per manifest entry, not per file
	assert.Equal(t, 3, seen)
	repo.AssertCalled(t, "ListDetails", mock.Anything)
}
