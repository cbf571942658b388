package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// singleIndicator builds a rule set with one always-firing indicator of
// the given weight, for exercising boundaries in isolation.
func singleIndicator(category models.TestCategory, weight float64) *RuleSet {
	return &RuleSet{Categories: map[models.TestCategory][]Indicator{
		category: {
			{Feature: "accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 1000, Weight: weight},
			}},
		},
	}}
}

func TestScoreHighRiskReading(t *testing.T) {
	engine := NewRuleEngine(nil)

	prediction, err := engine.Score(models.CategoryReading, models.FeatureVector{
		"accuracy":          60,
		"reading_speed":     70,
		"error_rate":        30,
		"reversed_letters":  4,
		"letter_confusions": 4,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ClassDyslexia, prediction.Classification)
	assert.Equal(t, models.TierHigh, prediction.RiskTier)
	assert.InDelta(t, 1.0, prediction.Confidence, 1e-9)
}

func TestScoreCleanReading(t *testing.T) {
	engine := NewRuleEngine(nil)

	prediction, err := engine.Score(models.CategoryReading, models.FeatureVector{
		"accuracy":          98,
		"reading_speed":     140,
		"error_rate":        2,
		"reversed_letters":  0,
		"letter_confusions": 0,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ClassNone, prediction.Classification)
	assert.Equal(t, models.TierNone, prediction.RiskTier)
	assert.Equal(t, 0.0, prediction.Confidence)
}

func TestScoreOnlyMostSevereBandFires(t *testing.T) {
	engine := NewRuleEngine(nil)

	// accuracy 65 crosses both the <85 and <70 bands; only the more
	// severe one may contribute.
	prediction, err := engine.Score(models.CategoryReading, models.FeatureVector{
		"accuracy": 65,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.30, prediction.Confidence)
}

func TestScoreMissingFeaturesContributeNothing(t *testing.T) {
	engine := NewRuleEngine(nil)

	prediction, err := engine.Score(models.CategoryReading, models.FeatureVector{})

	require.NoError(t, err)
	assert.Equal(t, 0.0, prediction.Confidence)
	assert.Equal(t, models.TierNone, prediction.RiskTier)
}

func TestScoreUnknownFeatureIgnored(t *testing.T) {
	engine := NewRuleEngine(nil)

	prediction, err := engine.Score(models.CategoryReading, models.FeatureVector{
		"made_up_feature": 9999,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, prediction.Confidence)
}

func TestScoreUnknownCategory(t *testing.T) {
	engine := NewRuleEngine(nil)

	_, err := engine.Score("handwriting", models.FeatureVector{})

	assert.Error(t, err)
}

func TestScoreTierBoundaries(t *testing.T) {
	tests := []struct {
		weight float64
		tier   models.RiskTier
		class  models.Classification
	}{
		{0.19, models.TierNone, models.ClassNone},
		{0.20, models.TierLow, models.ClassDyslexia},
		{0.34, models.TierLow, models.ClassDyslexia},
		{0.35, models.TierMedium, models.ClassDyslexia},
		{0.59, models.TierMedium, models.ClassDyslexia},
		{0.60, models.TierHigh, models.ClassDyslexia},
		{0.95, models.TierHigh, models.ClassDyslexia},
	}

	for _, tt := range tests {
		engine := NewRuleEngine(singleIndicator(models.CategoryReading, tt.weight))
		prediction, err := engine.Score(models.CategoryReading, models.FeatureVector{"accuracy": 50})

		require.NoError(t, err)
		assert.Equal(t, tt.tier, prediction.RiskTier, "weight %v", tt.weight)
		assert.Equal(t, tt.class, prediction.Classification, "weight %v", tt.weight)
	}
}

func TestScoreConfidenceClamped(t *testing.T) {
	engine := NewRuleEngine(singleIndicator(models.CategoryMath, 1.7))

	prediction, err := engine.Score(models.CategoryMath, models.FeatureVector{"accuracy": 50})

	require.NoError(t, err)
	assert.Equal(t, 1.0, prediction.Confidence)
	assert.Equal(t, models.ClassDyscalculia, prediction.Classification)
}

func TestCategoryLabels(t *testing.T) {
	engine := NewRuleEngine(nil)

	tests := []struct {
		category models.TestCategory
		class    models.Classification
	}{
		{models.CategoryWriting, models.ClassDysgraphia},
		{models.CategoryMath, models.ClassDyscalculia},
		{models.CategoryMemory, models.ClassDyslexia},
		{models.CategoryPhonological, models.ClassDyslexia},
		{models.CategoryVisualProcessing, models.ClassDyslexia},
		{models.CategoryAttention, models.ClassNone},
	}

	for _, tt := range tests {
		engine = NewRuleEngine(singleIndicator(tt.category, 0.9))
		prediction, err := engine.Score(tt.category, models.FeatureVector{"accuracy": 50})

		require.NoError(t, err)
		assert.Equal(t, tt.class, prediction.Classification, "category %s", tt.category)
	}
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, models.TierNone, TierFor(0))
	assert.Equal(t, models.TierNone, TierFor(0.199))
	assert.Equal(t, models.TierLow, TierFor(0.20))
	assert.Equal(t, models.TierMedium, TierFor(0.35))
	assert.Equal(t, models.TierHigh, TierFor(0.60))
	assert.Equal(t, models.TierHigh, TierFor(1))
}
