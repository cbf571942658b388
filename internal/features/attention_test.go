package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

func TestExtractAttentionSignalDetection(t *testing.T) {
	fv := ExtractAttention(&models.AttentionPayload{
		TotalTrials:       20,
		Hits:              8,
		Misses:            2,
		FalseAlarms:       1,
		CorrectRejections: 9,
	})

	assert.Equal(t, 20.0, fv["total_trials"])
	assert.Equal(t, 0.8, fv["hit_rate"])
	assert.Equal(t, 0.1, fv["false_alarm_rate"])
	assert.Equal(t, 85.0, fv["accuracy"])
	assert.InDelta(t, 2.12, fv["d_prime"], 0.01)
	assert.Equal(t, 3, fv.Errors())
}

func TestExtractAttentionPerfectPerformanceStaysFinite(t *testing.T) {
	fv := ExtractAttention(&models.AttentionPayload{
		Hits:              10,
		CorrectRejections: 10,
	})

	assert.Equal(t, 1.0, fv["hit_rate"])
	assert.Equal(t, 100.0, fv["accuracy"])
	// Rates clamp to [0.01, 0.99] before probit inversion.
	assert.InDelta(t, 4.65, fv["d_prime"], 0.01)
}

func TestExtractAttentionDerivesTotalTrials(t *testing.T) {
	fv := ExtractAttention(&models.AttentionPayload{
		Hits:              5,
		Misses:            5,
		FalseAlarms:       5,
		CorrectRejections: 5,
	})

	assert.Equal(t, 20.0, fv["total_trials"])
	assert.Equal(t, 50.0, fv["accuracy"])
	assert.InDelta(t, 0.0, fv["d_prime"], 0.001)
}

func TestExtractAttentionNegativeCountsClamped(t *testing.T) {
	fv := ExtractAttention(&models.AttentionPayload{
		Hits:   -3,
		Misses: -1,
	})

	assert.Equal(t, 0.0, fv["hit_rate"])
	assert.Equal(t, 0, fv.Errors())
}

func TestExtractAttentionEmpty(t *testing.T) {
	fv := ExtractAttention(nil)

	assert.Equal(t, 0.0, fv["total_trials"])
	assert.Equal(t, 0.0, fv.Score())
}
