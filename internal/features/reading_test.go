package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

const passage = "the quick brown fox jumps over the lazy dog"

func TestExtractReadingPerfect(t *testing.T) {
	fv := ExtractReading(&models.ReadingPayload{
		TextProvided: passage,
		TextRead:     passage,
	}, 30)

	assert.Equal(t, 9.0, fv["words_provided"])
	assert.Equal(t, 9.0, fv["words_read"])
	// 9 reference words in 30 seconds is 18 words per minute.
	assert.Equal(t, 18.0, fv["reading_speed"])
	assert.Equal(t, 0.0, fv["error_rate"])
	assert.Equal(t, 100.0, fv["accuracy"])
	assert.Equal(t, 100.0, fv.Score())
	assert.Equal(t, 0, fv.Errors())
}

func TestExtractReadingWithErrors(t *testing.T) {
	fv := ExtractReading(&models.ReadingPayload{
		TextProvided: passage,
		TextRead:     "the qick brown fox jumps over the lazy bog",
	}, 30)

	assert.Equal(t, 2.0, fv["substitutions"])
	assert.Equal(t, 1.0, fv["reversed_letters"]) // bog for dog
	assert.Equal(t, 22.22, fv["error_rate"])
	assert.Equal(t, 77.78, fv["accuracy"])
	assert.Equal(t, 2, fv.Errors())
}

func TestExtractReadingSpeedAgainstReference(t *testing.T) {
	// Speed is computed against the passage length, not against what
	// the student managed to produce.
	fv := ExtractReading(&models.ReadingPayload{
		TextProvided: passage,
		TextRead:     "the quick brown",
	}, 60)

	assert.Equal(t, 9.0, fv["reading_speed"])
	assert.Equal(t, 6.0, fv["omissions"])
}

func TestExtractReadingZeroElapsed(t *testing.T) {
	fv := ExtractReading(&models.ReadingPayload{
		TextProvided: passage,
		TextRead:     passage,
	}, 0)

	assert.Equal(t, 0.0, fv["reading_speed"])
}

func TestExtractReadingNilPayload(t *testing.T) {
	fv := ExtractReading(nil, 30)

	assert.Equal(t, 0.0, fv["words_provided"])
	assert.Equal(t, 100.0, fv.Score())
	assert.Equal(t, 0, fv.Errors())
}
