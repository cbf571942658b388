package features

import (
	"math"
	"strconv"
	"strings"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// mathErrorType is the best-effort four-way classification of a wrong
// answer. The heuristic, in order:
//  1. either answer fails to parse as a number -> conceptual
//  2. equal magnitude, opposite sign            -> sign
//  3. off by exactly a factor of ten, or the digits of the correct
//     answer transposed                         -> place_value
//  4. within the same order of magnitude        -> calculation
//  5. anything else                             -> conceptual
type mathErrorType int

const (
	errCalculation mathErrorType = iota
	errSign
	errPlaceValue
	errConceptual
)

// ExtractMath grades a problem list by string equality and classifies
// the wrong answers into calculation, sign, place-value, and conceptual
// error types.
func ExtractMath(p *models.MathPayload, elapsedSeconds float64) models.FeatureVector {
	if p == nil {
		p = &models.MathPayload{}
	}

	total := len(p.Problems)
	correct := 0
	answered := 0
	calculationErrors := 0
	signErrors := 0
	placeValueErrors := 0
	conceptualErrors := 0
	numberReversals := 0

	var times []float64

	for _, problem := range p.Problems {
		student := strings.TrimSpace(problem.StudentAnswer)
		expected := strings.TrimSpace(problem.CorrectAnswer)

		if student != "" {
			answered++
		}
		if problem.TimeSeconds > 0 {
			times = append(times, problem.TimeSeconds)
		}

		if student == expected && expected != "" {
			correct++
			continue
		}

		if isDigitReversal(student, expected) {
			numberReversals++
		}

		switch classifyMathError(student, expected) {
		case errSign:
			signErrors++
		case errPlaceValue:
			placeValueErrors++
		case errConceptual:
			conceptualErrors++
		default:
			calculationErrors++
		}
	}

	score := safeDiv(float64(correct), float64(total)) * 100
	errors := total - correct

	avgTime := safeDiv(elapsedSeconds, float64(total))
	timeConsistency := 0.0
	if len(times) > 0 {
		m := mean(times)
		if m > 0 {
			timeConsistency = 1 - math.Sqrt(variance(times))/m
			if timeConsistency < 0 {
				timeConsistency = 0
			}
		}
	}

	return models.FeatureVector{
		"total_problems":         float64(total),
		"correct_answers":        float64(correct),
		"completion_rate":        round2(safeDiv(float64(answered), float64(total))),
		"calculation_errors":     float64(calculationErrors),
		"sign_errors":            float64(signErrors),
		"place_value_errors":     float64(placeValueErrors),
		"conceptual_errors":      float64(conceptualErrors),
		"calculation_error_rate": round2(safeDiv(float64(calculationErrors), float64(total)) * 100),
		"conceptual_error_rate":  round2(safeDiv(float64(conceptualErrors), float64(total)) * 100),
		"number_reversals":       float64(numberReversals),
		"avg_time_per_problem":   round2(avgTime),
		"time_consistency":       round2(timeConsistency),
		"accuracy":               round2(score),
		models.FeatureScore:      round2(score),
		models.FeatureErrors:     float64(errors),
	}
}

func classifyMathError(student, expected string) mathErrorType {
	s, errS := strconv.ParseFloat(student, 64)
	e, errE := strconv.ParseFloat(expected, 64)
	if errS != nil || errE != nil {
		return errConceptual
	}

	if e != 0 && s == -e {
		return errSign
	}

	absS, absE := math.Abs(s), math.Abs(e)
	if absS*10 == absE || absE*10 == absS {
		return errPlaceValue
	}
	if isDigitReversal(student, expected) {
		return errPlaceValue
	}

	// Same order of magnitude reads as a slip in arithmetic; a result
	// wildly off scale points at the underlying concept.
	larger := math.Max(absS, absE)
	smaller := math.Min(absS, absE)
	if larger == 0 || (smaller > 0 && larger/smaller <= 10) {
		return errCalculation
	}
	return errConceptual
}

// isDigitReversal reports whether the student's digits are the correct
// answer's digits written in reverse order (e.g. 21 for 12).
func isDigitReversal(student, expected string) bool {
	sd := digitsOf(student)
	ed := digitsOf(expected)
	if len(sd) < 2 || len(sd) != len(ed) || sd == ed {
		return false
	}
	for i := range sd {
		if sd[i] != ed[len(ed)-1-i] {
			return false
		}
	}
	return true
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
