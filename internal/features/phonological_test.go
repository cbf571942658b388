package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestExtractPhonologicalGraded(t *testing.T) {
	fv := ExtractPhonological(&models.PhonologicalPayload{Tasks: []models.PhonologicalTask{
		{TaskType: "rhyming", Response: "hat", Correct: boolPtr(true)},
		{TaskType: "rhyming", Response: "dog", Correct: boolPtr(false)},
		{TaskType: "segmentation", Response: "c-a-t", Correct: boolPtr(true)},
		{TaskType: "blending", Response: "sun", Correct: boolPtr(true)},
	}})

	assert.Equal(t, 1.0, fv["graded"])
	assert.Equal(t, 75.0, fv.Score())
	assert.Equal(t, 1, fv.Errors())
	assert.Equal(t, 50.0, fv["rhyming_accuracy"])
	assert.Equal(t, 100.0, fv["segmentation_accuracy"])
	assert.Equal(t, 100.0, fv["blending_accuracy"])
	assert.False(t, fv.Has("manipulation_accuracy"))
}

func TestExtractPhonologicalUngraded(t *testing.T) {
	// Without a correctness flag on every task the score falls back to
	// attempted completion.
	fv := ExtractPhonological(&models.PhonologicalPayload{Tasks: []models.PhonologicalTask{
		{TaskType: "rhyming", Response: "hat"},
		{TaskType: "segmentation", Response: ""},
		{TaskType: "blending", Response: "sun", Correct: boolPtr(true)},
		{TaskType: "manipulation", Response: "top"},
	}})

	assert.Equal(t, 0.0, fv["graded"])
	assert.Equal(t, 0.75, fv["completion_rate"])
	assert.Equal(t, 75.0, fv.Score())
	assert.Equal(t, 1, fv.Errors())
	assert.False(t, fv.Has("rhyming_accuracy"))
}

func TestExtractPhonologicalEmpty(t *testing.T) {
	fv := ExtractPhonological(nil)

	assert.Equal(t, 0.0, fv["tasks_total"])
	assert.Equal(t, 0.0, fv["graded"])
	assert.Equal(t, 0.0, fv.Score())
}
