package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/database"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// SaveScreeningTx persists a screening result and its prediction in a
// single transaction. The pair is atomic: a stored submission must
// never exist without its derived prediction.
func SaveScreeningTx(ctx context.Context, result *models.ScreeningResult, prediction *models.PredictionRecord) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		prediction.ScreeningResultID = result.ID
		return tx.Create(prediction).Error
	})
}

// StudentHistory loads the (result, prediction) pairs for one student,
// ordered by submission time, shaped for the aggregator.
func StudentHistory(ctx context.Context, studentID int) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	err := database.DB.WithContext(ctx).
		Table("screening_results").
		Select(`screening_results.category,
			screening_results.score,
			prediction_records.confidence,
			prediction_records.risk_tier AS tier,
			prediction_records.classification AS label,
			screening_results.created_at AS timestamp`).
		Joins("JOIN prediction_records ON prediction_records.screening_result_id = screening_results.id").
		Where("screening_results.student_id = ?", studentID).
		Order("screening_results.created_at").
		Scan(&records).Error
	return records, err
}

// PeerAverages returns each other student's average score, the peer
// population used for percentile ranking.
func PeerAverages(ctx context.Context, excludeStudentID int) ([]float64, error) {
	var averages []float64
	err := database.DB.WithContext(ctx).
		Table("screening_results").
		Where("student_id <> ?", excludeStudentID).
		Group("student_id").
		Pluck("AVG(score)", &averages).Error
	return averages, err
}

// TimelinePoint is one submission score on the progress chart.
type TimelinePoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// ScoreTimeline returns the student's scores over time, optionally
// filtered to one category ("" means all).
func ScoreTimeline(ctx context.Context, studentID int, category models.TestCategory) ([]TimelinePoint, error) {
	query := database.DB.WithContext(ctx).
		Table("screening_results").
		Select("created_at AS date, score").
		Where("student_id = ?", studentID).
		Order("created_at")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var points []TimelinePoint
	err := query.Scan(&points).Error
	return points, err
}

// CountScreenings returns the total number of stored screenings.
func CountScreenings(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.ScreeningResult{}).Count(&count).Error
	return count, err
}

// RiskDistribution counts stored predictions per risk tier.
func RiskDistribution(ctx context.Context) (map[models.RiskTier]int64, error) {
	type row struct {
		RiskTier models.RiskTier
		Count    int64
	}
	var rows []row
	err := database.DB.WithContext(ctx).
		Table("prediction_records").
		Select("risk_tier, COUNT(*) AS count").
		Group("risk_tier").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dist := map[models.RiskTier]int64{
		models.TierLow:    0,
		models.TierMedium: 0,
		models.TierHigh:   0,
	}
	for _, r := range rows {
		dist[r.RiskTier] = r.Count
	}
	return dist, nil
}
