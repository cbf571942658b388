// Package features derives numeric feature vectors from typed test
// submissions. One extractor per test category; every extractor is a
// pure function that degrades to neutral values on partial input
// instead of failing, since incomplete submissions are expected from
// classroom use.
package features

import (
	"fmt"
	"math"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// Extract runs the extractor for the submission's category and returns
// the derived feature vector. A payload of the wrong shape for the
// declared category is a routing bug in the calling layer and is
// reported as an error rather than silently defaulted.
func Extract(sub models.TestSubmission) (models.FeatureVector, error) {
	elapsed := sub.ElapsedSeconds
	if elapsed < 0 {
		elapsed = 0
	}

	switch sub.Category {
	case models.CategoryReading:
		p, err := payloadAs[*models.ReadingPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractReading(p, elapsed), nil
	case models.CategoryWriting:
		p, err := payloadAs[*models.WritingPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractWriting(p, elapsed), nil
	case models.CategoryMath:
		p, err := payloadAs[*models.MathPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractMath(p, elapsed), nil
	case models.CategoryMemory:
		p, err := payloadAs[*models.MemoryPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractMemory(p), nil
	case models.CategoryAttention:
		p, err := payloadAs[*models.AttentionPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractAttention(p), nil
	case models.CategoryPhonological:
		p, err := payloadAs[*models.PhonologicalPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractPhonological(p), nil
	case models.CategoryVisualProcessing:
		p, err := payloadAs[*models.VisualPayload](sub)
		if err != nil {
			return nil, err
		}
		return ExtractVisual(p), nil
	default:
		return nil, fmt.Errorf("unknown test category %q", sub.Category)
	}
}

// payloadAs asserts the payload shape for a category. A nil payload is
// treated as an empty submission of the right shape.
func payloadAs[T models.Payload](sub models.TestSubmission) (T, error) {
	var zero T
	if sub.Payload == nil {
		return zero, nil
	}
	p, ok := sub.Payload.(T)
	if !ok {
		return zero, fmt.Errorf("payload type %T does not match category %q", sub.Payload, sub.Category)
	}
	return p, nil
}

// round2 keeps reported features at two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampScore bounds a score to the 0-100 range.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// safeDiv returns a/b, or 0 when b is zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - avg
		sumSq += diff * diff
	}
	return sumSq / float64(len(values))
}
