package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

func TestExtractMemoryRecall(t *testing.T) {
	fv := ExtractMemory(&models.MemoryPayload{
		ItemsPresented: []string{"apple", "banana", "cherry", "date", "egg", "fig"},
		ItemsRecalled:  []string{"apple", "banana", "fig", "grape"},
	})

	assert.Equal(t, 6.0, fv["items_presented"])
	assert.Equal(t, 4.0, fv["items_recalled"])
	assert.Equal(t, 0.5, fv["recall_rate"])
	assert.Equal(t, 1.0, fv["false_recalls"])
	assert.Equal(t, 50.0, fv.Score())
	// Three missed items plus one false recall.
	assert.Equal(t, 4, fv.Errors())
}

func TestExtractMemoryOrderIndependent(t *testing.T) {
	fv := ExtractMemory(&models.MemoryPayload{
		ItemsPresented: []string{"cat", "dog", "bird"},
		ItemsRecalled:  []string{"bird", "cat", "dog"},
	})

	assert.Equal(t, 1.0, fv["recall_rate"])
	assert.Equal(t, 0.0, fv["false_recalls"])
}

func TestExtractMemoryNormalization(t *testing.T) {
	fv := ExtractMemory(&models.MemoryPayload{
		ItemsPresented: []string{"Cat", "dog"},
		ItemsRecalled:  []string{" cat ", "CAT", "DOG", ""},
	})

	// Duplicates and casing collapse; the empty entry is dropped.
	assert.Equal(t, 2.0, fv["items_recalled"])
	assert.Equal(t, 1.0, fv["recall_rate"])
	assert.Equal(t, 0.0, fv["false_recalls"])
}

func TestExtractMemoryPrimacyRecency(t *testing.T) {
	fv := ExtractMemory(&models.MemoryPayload{
		ItemsPresented: []string{"apple", "banana", "cherry", "date", "egg", "fig"},
		ItemsRecalled:  []string{"apple", "banana", "fig"},
	})

	assert.Equal(t, 1.0, fv["primacy_recall"])
	assert.Equal(t, 0.5, fv["recency_recall"])
	assert.Equal(t, 0.5, fv["primacy_recency_gap"])
}

func TestExtractMemoryShortListSkipsPositionCurve(t *testing.T) {
	fv := ExtractMemory(&models.MemoryPayload{
		ItemsPresented: []string{"cat", "dog"},
		ItemsRecalled:  []string{"cat"},
	})

	assert.Equal(t, 0.0, fv["primacy_recall"])
	assert.Equal(t, 0.0, fv["recency_recall"])
}

func TestExtractMemoryEmpty(t *testing.T) {
	fv := ExtractMemory(nil)

	assert.Equal(t, 0.0, fv["recall_rate"])
	assert.Equal(t, 0.0, fv.Score())
	assert.Equal(t, 0, fv.Errors())
}
