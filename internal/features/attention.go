package features

import (
	"math"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// Rates are clamped away from 0 and 1 before probit inversion so d'
// stays finite for perfect or floor performance.
const (
	rateFloor   = 0.01
	rateCeiling = 0.99
)

// ExtractAttention computes standard signal-detection metrics from the
// pre-counted trial outcomes of a sustained-attention task.
func ExtractAttention(p *models.AttentionPayload) models.FeatureVector {
	if p == nil {
		p = &models.AttentionPayload{}
	}

	hits := clampNonNegative(p.Hits)
	misses := clampNonNegative(p.Misses)
	falseAlarms := clampNonNegative(p.FalseAlarms)
	correctRejections := clampNonNegative(p.CorrectRejections)

	totalTrials := clampNonNegative(p.TotalTrials)
	if totalTrials == 0 {
		totalTrials = hits + misses + falseAlarms + correctRejections
	}

	hitRate := safeDiv(float64(hits), float64(hits+misses))
	falseAlarmRate := safeDiv(float64(falseAlarms), float64(falseAlarms+correctRejections))
	accuracy := safeDiv(float64(hits+correctRejections), float64(totalTrials)) * 100

	dPrime := probit(clampRate(hitRate)) - probit(clampRate(falseAlarmRate))

	return models.FeatureVector{
		"total_trials":       float64(totalTrials),
		"hit_rate":           round2(hitRate),
		"false_alarm_rate":   round2(falseAlarmRate),
		"d_prime":            round2(dPrime),
		"accuracy":           round2(accuracy),
		models.FeatureScore:  round2(clampScore(accuracy)),
		models.FeatureErrors: float64(misses + falseAlarms),
	}
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampRate(r float64) float64 {
	if r < rateFloor {
		return rateFloor
	}
	if r > rateCeiling {
		return rateCeiling
	}
	return r
}

// probit is the inverse of the standard normal CDF, via Acklam's
// rational approximation. Accurate to ~1e-9 over (0,1), which is far
// tighter than the clamped rates require.
func probit(p float64) float64 {
	a := [6]float64{
		-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00,
	}
	b := [5]float64{
		-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	c := [6]float64{
		-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00,
	}
	d := [4]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}

	const low, high = 0.02425, 1 - 0.02425

	switch {
	case p < low:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > high:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}
