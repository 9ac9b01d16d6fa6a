package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziebelle/move37/internal/domain"
)

func TestBuildCorpus_Empty(t *testing.T) {
	corpus, err := BuildCorpus(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "[]", corpus)
}

func TestBuildCorpus_ValidJSONUnderBudget(t *testing.T) {
	corpus, err := BuildCorpus([]domain.ManualDetail{sampleDetail()}, 1<<20)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(corpus), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Blender 3000", decoded[0]["title"])
}

func TestBuildCorpus_SectionBodyShapes(t *testing.T) {
	corpus, err := BuildCorpus([]domain.ManualDetail{sampleDetail()}, 0)
	require.NoError(t, err)

	// list sections serialize as bare arrays, steps as objects, text as strings
	assert.Contains(t, corpus, `"content":[{"id":"parts_item_00","text":"bowl"}`)
	assert.Contains(t, corpus, `"content":{"steps":[{"id":"wash_step_00","text":"open the lid"}`)
	assert.Contains(t, corpus, `"content":"General usage information."`)
}

func TestBuildCorpus_Truncation(t *testing.T) {
	details := []domain.ManualDetail{sampleDetail()}
	full, err := BuildCorpus(details, 0)
	require.NoError(t, err)

	budget := 40
	require.Greater(t, len(full), budget)

	truncated, err := BuildCorpus(details, budget)
	require.NoError(t, err)
	assert.Len(t, truncated, budget)
	assert.Equal(t, full[:budget], truncated)
}

func TestWriteCorpusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "knowledge.json")
	require.NoError(t, WriteCorpusFile([]domain.ManualDetail{sampleDetail()}, 0, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
