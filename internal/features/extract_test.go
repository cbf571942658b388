package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

func TestExtractDispatchesEveryCategory(t *testing.T) {
	subs := []models.TestSubmission{
		{Category: models.CategoryReading, Payload: &models.ReadingPayload{TextProvided: "a b", TextRead: "a b"}},
		{Category: models.CategoryWriting, Payload: &models.WritingPayload{TextWritten: "Fine."}},
		{Category: models.CategoryMath, Payload: &models.MathPayload{}},
		{Category: models.CategoryMemory, Payload: &models.MemoryPayload{}},
		{Category: models.CategoryAttention, Payload: &models.AttentionPayload{}},
		{Category: models.CategoryPhonological, Payload: &models.PhonologicalPayload{}},
		{Category: models.CategoryVisualProcessing, Payload: &models.VisualPayload{}},
	}

	for _, sub := range subs {
		t.Run(string(sub.Category), func(t *testing.T) {
			fv, err := Extract(sub)
			require.NoError(t, err)
			assert.True(t, fv.Has(models.FeatureScore))
			assert.True(t, fv.Has(models.FeatureErrors))
		})
	}
}

func TestExtractNilPayload(t *testing.T) {
	fv, err := Extract(models.TestSubmission{Category: models.CategoryReading})

	require.NoError(t, err)
	assert.Equal(t, 0.0, fv["words_provided"])
}

func TestExtractMismatchedPayload(t *testing.T) {
	_, err := Extract(models.TestSubmission{
		Category: models.CategoryReading,
		Payload:  &models.MathPayload{},
	})

	assert.Error(t, err)
}

func TestExtractUnknownCategory(t *testing.T) {
	_, err := Extract(models.TestSubmission{Category: "handwriting"})

	assert.Error(t, err)
}

func TestExtractNegativeElapsedTreatedAsZero(t *testing.T) {
	fv, err := Extract(models.TestSubmission{
		Category:       models.CategoryReading,
		Payload:        &models.ReadingPayload{TextProvided: "a b c", TextRead: "a b c"},
		ElapsedSeconds: -10,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, fv["reading_speed"])
}
