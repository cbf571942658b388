package features

import (
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/textcompare"
)

// ExtractReading derives fluency and error-pattern features from a
// read-aloud test. The passage shown to the student is the reference;
// the transcript of what they read is the produced text.
func ExtractReading(p *models.ReadingPayload, elapsedSeconds float64) models.FeatureVector {
	if p == nil {
		p = &models.ReadingPayload{}
	}

	report := textcompare.Compare(p.TextProvided, p.TextRead)
	wordCount := report.ReferenceWords

	// Words per minute against the reference passage length; zero
	// elapsed time reads as zero speed, never infinity.
	var readingSpeed float64
	if elapsedSeconds > 0 {
		readingSpeed = float64(wordCount) / (elapsedSeconds / 60)
	}

	errorRate := report.ErrorRate()
	score := clampScore(100 - errorRate)

	return models.FeatureVector{
		"words_provided":     float64(wordCount),
		"words_read":         float64(report.ProducedWords),
		"reading_speed":      round2(readingSpeed),
		"error_rate":         round2(errorRate),
		"substitutions":      float64(report.Substitutions),
		"omissions":          float64(report.Omissions),
		"insertions":         float64(report.Insertions),
		"reversed_letters":   float64(report.Reversals),
		"letter_confusions":  float64(report.Confusions),
		"accuracy":           round2(score),
		models.FeatureScore:  round2(score),
		models.FeatureErrors: float64(report.Errors()),
	}
}
