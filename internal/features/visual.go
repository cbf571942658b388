package features

import (
	"strings"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// Complex patterns weigh heavier than simple ones: failing them points
// at a deeper visual-processing deficit.
const (
	simpleWeight  = 1.0
	complexWeight = 1.5
)

// ExtractVisual computes per-difficulty accuracy for a visual pattern
// recognition test and an overall score weighted toward complex
// patterns, normalized over the pattern types actually present.
func ExtractVisual(p *models.VisualPayload) models.FeatureVector {
	if p == nil {
		p = &models.VisualPayload{}
	}

	var simpleCorrect, simpleTotal, complexCorrect, complexTotal int
	for _, pattern := range p.Patterns {
		correct := clampNonNegative(pattern.Correct)
		total := clampNonNegative(pattern.Total)
		if correct > total {
			correct = total
		}
		switch strings.ToLower(strings.TrimSpace(pattern.Type)) {
		case "complex":
			complexCorrect += correct
			complexTotal += total
		default:
			simpleCorrect += correct
			simpleTotal += total
		}
	}

	simpleAccuracy := safeDiv(float64(simpleCorrect), float64(simpleTotal)) * 100
	complexAccuracy := safeDiv(float64(complexCorrect), float64(complexTotal)) * 100

	var weightedSum, weightTotal float64
	if simpleTotal > 0 {
		weightedSum += simpleAccuracy * simpleWeight
		weightTotal += simpleWeight
	}
	if complexTotal > 0 {
		weightedSum += complexAccuracy * complexWeight
		weightTotal += complexWeight
	}
	score := safeDiv(weightedSum, weightTotal)

	totalPatterns := simpleTotal + complexTotal
	totalCorrect := simpleCorrect + complexCorrect

	return models.FeatureVector{
		"patterns_total":           float64(totalPatterns),
		"patterns_correct":         float64(totalCorrect),
		"simple_pattern_accuracy":  round2(simpleAccuracy),
		"complex_pattern_accuracy": round2(complexAccuracy),
		models.FeatureScore:        round2(clampScore(score)),
		models.FeatureErrors:       float64(totalPatterns - totalCorrect),
	}
}
