package models

import "fmt"

// TestCategory identifies which of the seven screening test types a
// submission belongs to.
type TestCategory string

const (
	CategoryReading          TestCategory = "reading"
	CategoryWriting          TestCategory = "writing"
	CategoryMath             TestCategory = "math"
	CategoryMemory           TestCategory = "memory"
	CategoryAttention        TestCategory = "attention"
	CategoryPhonological     TestCategory = "phonological"
	CategoryVisualProcessing TestCategory = "visual_processing"
)

// AllCategories lists every supported test category.
var AllCategories = []TestCategory{
	CategoryReading,
	CategoryWriting,
	CategoryMath,
	CategoryMemory,
	CategoryAttention,
	CategoryPhonological,
	CategoryVisualProcessing,
}

// ParseCategory validates a raw category string from the calling layer.
func ParseCategory(s string) (TestCategory, error) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown test category %q", s)
}

// Classification is the screening outcome label.
type Classification string

const (
	ClassNone        Classification = "none"
	ClassDyslexia    Classification = "dyslexia"
	ClassDysgraphia  Classification = "dysgraphia"
	ClassDyscalculia Classification = "dyscalculia"
)

// RiskTier is the discrete bucket derived from a confidence score.
type RiskTier string

const (
	TierNone   RiskTier = "none"
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

var tierRank = map[RiskTier]int{
	TierNone:   0,
	TierLow:    1,
	TierMedium: 2,
	TierHigh:   3,
}

// Rank returns the ordering of a tier (none < low < medium < high).
// Unknown tiers rank lowest.
func (t RiskTier) Rank() int {
	return tierRank[t]
}

// MaxTier returns the more severe of two tiers.
func MaxTier(a, b RiskTier) RiskTier {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
