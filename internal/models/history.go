package models

import "time"

// Trend classifies the direction of a student's scores over time.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// HistoryRecord is one (submission, prediction) pair as seen by the
// aggregator: just the numbers needed for trend and risk summaries,
// ordered by Timestamp.
type HistoryRecord struct {
	Category   TestCategory   `json:"category"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Tier       RiskTier       `json:"risk_tier"`
	Label      Classification `json:"classification"`
	Timestamp  time.Time      `json:"timestamp"`
}

// CategoryRiskSummary aggregates the predictions of one category.
type CategoryRiskSummary struct {
	Count         int      `json:"count"`
	AverageScore  float64  `json:"average_score"`
	AvgConfidence float64  `json:"avg_confidence"`
	MaxTier       RiskTier `json:"max_risk"`
}

// HistorySummary is the aggregated view over a student's screening
// history. It is recomputed on demand and never persisted; the
// underlying records stay authoritative.
type HistorySummary struct {
	TotalTests      int                                  `json:"total_tests"`
	AverageScore    float64                              `json:"average_score"`
	Trend           Trend                                `json:"trend"`
	ImprovementRate float64                              `json:"improvement_rate"`
	BestCategory    TestCategory                         `json:"best_category,omitempty"`
	BestScore       float64                              `json:"best_score"`
	RiskSummary     map[TestCategory]CategoryRiskSummary `json:"risk_summary"`
	// Percentile is the fraction (0-100) of peers scoring at or below
	// this student's average; nil when there is no peer population.
	Percentile *float64 `json:"percentile,omitempty"`
}
