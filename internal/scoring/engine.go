// Package scoring maps extracted feature vectors to risk predictions
// through a transparent, auditable rule engine. The engine is
// deliberately not a learned model: every contribution can be traced to
// one indicator band. A trained classifier can replace it behind the
// same Scorer interface.
package scoring

import (
	"fmt"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// Tier boundaries on the final confidence. Each tier is closed at its
// lower bound: exactly 0.35 is medium, exactly 0.60 is high.
const (
	noneBound   = 0.20
	mediumBound = 0.35
	highBound   = 0.60
)

// Scorer turns a category's feature vector into a prediction. Category
// is the only input that can fail (a routing bug upstream); any feature
// subset, including an empty vector, must score without error.
type Scorer interface {
	Score(category models.TestCategory, features models.FeatureVector) (models.Prediction, error)
}

// categoryLabels fixes which classification each category screens for.
// The auxiliary categories feed the dyslexia label (phonological
// awareness, working memory, and visual processing deficits are its
// established correlates); attention stays unclassified.
var categoryLabels = map[models.TestCategory]models.Classification{
	models.CategoryReading:          models.ClassDyslexia,
	models.CategoryWriting:          models.ClassDysgraphia,
	models.CategoryMath:             models.ClassDyscalculia,
	models.CategoryMemory:           models.ClassDyslexia,
	models.CategoryAttention:        models.ClassNone,
	models.CategoryPhonological:     models.ClassDyslexia,
	models.CategoryVisualProcessing: models.ClassDyslexia,
}

// RuleEngine is the default Scorer: weighted indicator step functions
// summed and clamped into a confidence.
type RuleEngine struct {
	rules *RuleSet
}

// NewRuleEngine builds an engine from the given tables, falling back to
// the built-in defaults when rules is nil.
func NewRuleEngine(rules *RuleSet) *RuleEngine {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &RuleEngine{rules: rules}
}

// Score sums the indicator contributions for the category, clamps the
// total into [0,1], and derives the tier and classification. Features
// the vector does not carry contribute nothing.
func (e *RuleEngine) Score(category models.TestCategory, features models.FeatureVector) (models.Prediction, error) {
	label, ok := categoryLabels[category]
	if !ok {
		return models.Prediction{}, fmt.Errorf("unknown test category %q", category)
	}

	var confidence float64
	for _, indicator := range e.rules.Categories[category] {
		if !features.Has(indicator.Feature) {
			continue
		}
		confidence += indicator.contribution(features[indicator.Feature])
	}

	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	prediction := models.Prediction{
		Classification: label,
		Confidence:     confidence,
		RiskTier:       TierFor(confidence),
	}
	if prediction.RiskTier == models.TierNone {
		prediction.Classification = models.ClassNone
	}
	return prediction, nil
}

// TierFor maps a confidence in [0,1] to its risk tier.
func TierFor(confidence float64) models.RiskTier {
	switch {
	case confidence >= highBound:
		return models.TierHigh
	case confidence >= mediumBound:
		return models.TierMedium
	case confidence >= noneBound:
		return models.TierLow
	default:
		return models.TierNone
	}
}
