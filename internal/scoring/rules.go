package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// Indicator directions. An "above" indicator fires when the feature
// exceeds a band threshold, a "below" indicator when it falls under one.
const (
	DirectionAbove = "above"
	DirectionBelow = "below"
)

// Band is one severity step of an indicator. Bands within an indicator
// are mutually exclusive: only the most severe band crossed
// contributes, its weight replacing (not adding to) the milder ones.
type Band struct {
	Threshold float64 `yaml:"threshold"`
	Weight    float64 `yaml:"weight"`
}

// Indicator ties one feature to a weighted step function. Keeping the
// thresholds as data rather than branching code means the tables can be
// reviewed and tested on their own.
type Indicator struct {
	Feature   string `yaml:"feature"`
	Direction string `yaml:"direction"`
	Bands     []Band `yaml:"bands"`
}

// contribution returns the weight of the most severe band the value
// crosses, or 0 when none fire.
func (ind Indicator) contribution(value float64) float64 {
	var weight float64
	switch ind.Direction {
	case DirectionBelow:
		// Most severe = lowest threshold still above the value.
		first := true
		var best float64
		for _, band := range ind.Bands {
			if value < band.Threshold && (first || band.Threshold < best) {
				best = band.Threshold
				weight = band.Weight
				first = false
			}
		}
	default:
		// Most severe = highest threshold the value clears.
		first := true
		var best float64
		for _, band := range ind.Bands {
			if value > band.Threshold && (first || band.Threshold > best) {
				best = band.Threshold
				weight = band.Weight
				first = false
			}
		}
	}
	return weight
}

// RuleSet holds the per-category indicator tables.
type RuleSet struct {
	Categories map[models.TestCategory][]Indicator `yaml:"categories"`
}

// LoadRuleSet reads indicator tables from a yaml file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules yaml: %w", err)
	}

	for category := range rules.Categories {
		if _, err := models.ParseCategory(string(category)); err != nil {
			return nil, fmt.Errorf("rules file: %w", err)
		}
	}

	return &rules, nil
}

// DefaultRuleSet returns the built-in indicator tables. Thresholds for
// reading, writing, and math follow the clinically sourced cutoffs of
// the original screeners; the auxiliary categories extend the same
// shape.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{Categories: map[models.TestCategory][]Indicator{
		models.CategoryReading: {
			{Feature: "accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 70, Weight: 0.30},
				{Threshold: 85, Weight: 0.15},
			}},
			{Feature: "reading_speed", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 80, Weight: 0.25},
				{Threshold: 120, Weight: 0.15},
			}},
			{Feature: "error_rate", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 25, Weight: 0.20},
				{Threshold: 10, Weight: 0.10},
			}},
			{Feature: "reversed_letters", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 3, Weight: 0.15},
				{Threshold: 0, Weight: 0.05},
			}},
			{Feature: "letter_confusions", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 3, Weight: 0.10},
			}},
		},
		models.CategoryWriting: {
			{Feature: "accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 60, Weight: 0.30},
				{Threshold: 75, Weight: 0.15},
			}},
			{Feature: "spelling_errors", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 5, Weight: 0.25},
				{Threshold: 2, Weight: 0.10},
			}},
			{Feature: "grammar_errors", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 4, Weight: 0.15},
				{Threshold: 2, Weight: 0.08},
			}},
			{Feature: "letter_reversals", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 2, Weight: 0.15},
			}},
			{Feature: "inconsistent_spacing", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 0, Weight: 0.10},
			}},
			{Feature: "writing_speed", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 40, Weight: 0.15},
			}},
		},
		models.CategoryMath: {
			{Feature: "accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 60, Weight: 0.35},
				{Threshold: 75, Weight: 0.20},
			}},
			{Feature: "calculation_error_rate", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 40, Weight: 0.25},
				{Threshold: 20, Weight: 0.12},
			}},
			{Feature: "conceptual_error_rate", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 30, Weight: 0.20},
				{Threshold: 15, Weight: 0.10},
			}},
			{Feature: "number_reversals", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 2, Weight: 0.15},
				{Threshold: 0, Weight: 0.08},
			}},
			{Feature: "sign_errors", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 2, Weight: 0.08},
			}},
		},
		models.CategoryMemory: {
			{Feature: "recall_rate", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 0.5, Weight: 0.30},
				{Threshold: 0.7, Weight: 0.15},
			}},
			{Feature: "false_recalls", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 2, Weight: 0.15},
				{Threshold: 0, Weight: 0.05},
			}},
			{Feature: "primacy_recency_gap", Direction: DirectionBelow, Bands: []Band{
				{Threshold: -0.5, Weight: 0.10},
			}},
		},
		models.CategoryAttention: {
			{Feature: "d_prime", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 1.0, Weight: 0.30},
				{Threshold: 2.0, Weight: 0.15},
			}},
			{Feature: "accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 70, Weight: 0.25},
				{Threshold: 85, Weight: 0.10},
			}},
			{Feature: "false_alarm_rate", Direction: DirectionAbove, Bands: []Band{
				{Threshold: 0.3, Weight: 0.20},
				{Threshold: 0.15, Weight: 0.10},
			}},
		},
		models.CategoryPhonological: {
			{Feature: "score", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 50, Weight: 0.35},
				{Threshold: 75, Weight: 0.20},
			}},
			{Feature: "completion_rate", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 0.5, Weight: 0.15},
			}},
			{Feature: "rhyming_accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 50, Weight: 0.10},
			}},
		},
		models.CategoryVisualProcessing: {
			{Feature: "complex_pattern_accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 50, Weight: 0.30},
				{Threshold: 70, Weight: 0.15},
			}},
			{Feature: "simple_pattern_accuracy", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 60, Weight: 0.20},
				{Threshold: 80, Weight: 0.10},
			}},
			{Feature: "score", Direction: DirectionBelow, Bands: []Band{
				{Threshold: 60, Weight: 0.15},
			}},
		},
	}}
}
