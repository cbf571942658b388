package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRuleSet(t *testing.T) {
	path := writeRules(t, `
categories:
  reading:
    - feature: accuracy
      direction: below
      bands:
        - { threshold: 70, weight: 0.30 }
        - { threshold: 85, weight: 0.15 }
`)

	rules, err := LoadRuleSet(path)

	require.NoError(t, err)
	indicators := rules.Categories[models.CategoryReading]
	require.Len(t, indicators, 1)
	assert.Equal(t, "accuracy", indicators[0].Feature)
	assert.Equal(t, DirectionBelow, indicators[0].Direction)
	require.Len(t, indicators[0].Bands, 2)
	assert.Equal(t, 70.0, indicators[0].Bands[0].Threshold)
}

func TestLoadRuleSetRejectsUnknownCategory(t *testing.T) {
	path := writeRules(t, `
categories:
  handwriting:
    - feature: accuracy
      direction: below
      bands:
        - { threshold: 50, weight: 0.3 }
`)

	_, err := LoadRuleSet(path)

	assert.Error(t, err)
}

func TestLoadRuleSetMissingFile(t *testing.T) {
	_, err := LoadRuleSet(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadRuleSetBadYAML(t *testing.T) {
	path := writeRules(t, "categories: [not: a: map")

	_, err := LoadRuleSet(path)

	assert.Error(t, err)
}

func TestDefaultRuleSetCoversEveryCategory(t *testing.T) {
	rules := DefaultRuleSet()

	for _, category := range models.AllCategories {
		assert.NotEmpty(t, rules.Categories[category], "category %s", category)
	}
}

func TestIndicatorContribution(t *testing.T) {
	below := Indicator{Feature: "accuracy", Direction: DirectionBelow, Bands: []Band{
		{Threshold: 70, Weight: 0.30},
		{Threshold: 85, Weight: 0.15},
	}}
	above := Indicator{Feature: "error_rate", Direction: DirectionAbove, Bands: []Band{
		{Threshold: 25, Weight: 0.20},
		{Threshold: 10, Weight: 0.10},
	}}

	tests := []struct {
		name      string
		indicator Indicator
		value     float64
		expected  float64
	}{
		{"below both bands", below, 50, 0.30},
		{"below milder band only", below, 75, 0.15},
		{"at below threshold does not fire", below, 85, 0},
		{"above all bands clear", below, 95, 0},
		{"above both bands", above, 30, 0.20},
		{"above milder band only", above, 15, 0.10},
		{"at above threshold does not fire", above, 10, 0},
		{"below all bands", above, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.indicator.contribution(tt.value))
		})
	}
}
