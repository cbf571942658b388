package features

import (
	"strings"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// ExtractMemory derives recall features from a memory test. Items are
// matched as a set after trimming and lowercasing, so recall order does
// not affect the recall rate.
func ExtractMemory(p *models.MemoryPayload) models.FeatureVector {
	if p == nil {
		p = &models.MemoryPayload{}
	}

	presented := normalizeItems(p.ItemsPresented)
	recalled := normalizeItems(p.ItemsRecalled)

	presentedSet := make(map[string]struct{}, len(presented))
	for _, item := range presented {
		presentedSet[item] = struct{}{}
	}

	recalledSet := make(map[string]struct{}, len(recalled))
	falseRecalls := 0
	for _, item := range recalled {
		if _, seen := recalledSet[item]; seen {
			continue
		}
		recalledSet[item] = struct{}{}
		if _, ok := presentedSet[item]; !ok {
			falseRecalls++
		}
	}

	correctRecalls := 0
	for item := range presentedSet {
		if _, ok := recalledSet[item]; ok {
			correctRecalls++
		}
	}

	n := len(presentedSet)
	recallRate := safeDiv(float64(correctRecalls), float64(n))
	score := recallRate * 100
	missed := n - correctRecalls

	// Primacy/recency: recall rate over the first and last thirds of
	// the presentation order. A flat list shorter than three items has
	// no meaningful thirds.
	primacy, recency := 0.0, 0.0
	if len(presented) >= 3 {
		third := len(presented) / 3
		primacy = recallFraction(presented[:third], recalledSet)
		recency = recallFraction(presented[len(presented)-third:], recalledSet)
	}

	return models.FeatureVector{
		"items_presented":     float64(n),
		"items_recalled":      float64(len(recalledSet)),
		"recall_rate":         round2(recallRate),
		"false_recalls":       float64(falseRecalls),
		"primacy_recall":      round2(primacy),
		"recency_recall":      round2(recency),
		"primacy_recency_gap": round2(primacy - recency),
		models.FeatureScore:   round2(score),
		models.FeatureErrors:  float64(missed + falseRecalls),
	}
}

func normalizeItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func recallFraction(items []string, recalled map[string]struct{}) float64 {
	if len(items) == 0 {
		return 0
	}
	hit := 0
	for _, item := range items {
		if _, ok := recalled[item]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(items))
}
