// Package history aggregates a student's screening records into one
// consistent summary. Every read-side consumer (dashboard, analytics,
// progress charts, report export) goes through Summarize so "trend",
// "percentile", and "best category" mean the same thing everywhere.
package history

import (
	"math"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// trendEpsilon is the slope magnitude below which score movement is
// treated as noise. Score points per submission.
const trendEpsilon = 0.5

// Summarize reduces an ordered-by-time record sequence to a
// HistorySummary. Safe on zero, one, or many records; with no peers the
// percentile is left nil rather than fabricated.
func Summarize(records []models.HistoryRecord, peerAverages []float64) models.HistorySummary {
	summary := models.HistorySummary{
		Trend:       models.TrendStable,
		RiskSummary: make(map[models.TestCategory]models.CategoryRiskSummary),
	}

	if len(records) == 0 {
		return summary
	}

	summary.TotalTests = len(records)

	scores := make([]float64, len(records))
	var scoreSum float64
	for i, record := range records {
		scores[i] = record.Score
		scoreSum += record.Score
	}
	summary.AverageScore = round2(scoreSum / float64(len(records)))

	slope := linearSlope(scores)
	summary.ImprovementRate = round2(slope)
	switch {
	case len(records) < 2:
		summary.Trend = models.TrendStable
	case slope > trendEpsilon:
		summary.Trend = models.TrendImproving
	case slope < -trendEpsilon:
		summary.Trend = models.TrendDeclining
	}

	perCategory(records, summary.RiskSummary)
	summary.BestCategory, summary.BestScore = bestCategory(summary.RiskSummary)

	if len(peerAverages) > 0 {
		p := percentile(summary.AverageScore, peerAverages)
		summary.Percentile = &p
	}

	return summary
}

// linearSlope fits a least-squares line over (index, score) and returns
// its slope. Fewer than two points have no slope.
func linearSlope(scores []float64) float64 {
	n := float64(len(scores))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range scores {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func perCategory(records []models.HistoryRecord, out map[models.TestCategory]models.CategoryRiskSummary) {
	type acc struct {
		count         int
		scoreSum      float64
		confidenceSum float64
		maxTier       models.RiskTier
	}
	accs := make(map[models.TestCategory]*acc)

	for _, record := range records {
		a, ok := accs[record.Category]
		if !ok {
			a = &acc{maxTier: models.TierNone}
			accs[record.Category] = a
		}
		a.count++
		a.scoreSum += record.Score
		a.confidenceSum += record.Confidence
		a.maxTier = models.MaxTier(a.maxTier, record.Tier)
	}

	for category, a := range accs {
		out[category] = models.CategoryRiskSummary{
			Count:         a.count,
			AverageScore:  round2(a.scoreSum / float64(a.count)),
			AvgConfidence: round2(a.confidenceSum / float64(a.count)),
			MaxTier:       a.maxTier,
		}
	}
}

// bestCategory picks the category with the highest average score. Ties
// break deterministically by the fixed category order.
func bestCategory(perCat map[models.TestCategory]models.CategoryRiskSummary) (models.TestCategory, float64) {
	var best models.TestCategory
	bestScore := math.Inf(-1)
	for _, category := range models.AllCategories {
		summary, ok := perCat[category]
		if ok && summary.AverageScore > bestScore {
			best = category
			bestScore = summary.AverageScore
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestScore
}

// percentile is the share of peers scoring at or below the average,
// as a 0-100 value.
func percentile(average float64, peerAverages []float64) float64 {
	atOrBelow := 0
	for _, peer := range peerAverages {
		if peer <= average {
			atOrBelow++
		}
	}
	return round2(float64(atOrBelow) / float64(len(peerAverages)) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
