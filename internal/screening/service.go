// Package screening wires feature extraction and risk scoring into the
// single entry point the rest of the system calls. The pipeline is
// pure: the same submission always yields the same vector and
// prediction, so callers may run it concurrently without coordination.
package screening

import (
	"fmt"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/features"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/scoring"
)

// Service runs the extraction and scoring pipeline. The scorer is an
// interface so a trained model can replace the rule engine without
// touching callers.
type Service struct {
	scorer scoring.Scorer
}

// NewService builds a screening service; a nil scorer gets the default
// rule engine.
func NewService(scorer scoring.Scorer) *Service {
	if scorer == nil {
		scorer = scoring.NewRuleEngine(nil)
	}
	return &Service{scorer: scorer}
}

// ExtractAndScore derives the feature vector and its prediction from
// one submission, atomically as a pair: callers never see one without
// the other. An unknown category or mismatched payload shape is a
// configuration error from the routing layer, not a data-quality issue,
// and is surfaced rather than defaulted.
func (s *Service) ExtractAndScore(sub models.TestSubmission) (models.FeatureVector, models.Prediction, error) {
	vector, err := features.Extract(sub)
	if err != nil {
		return nil, models.Prediction{}, fmt.Errorf("feature extraction: %w", err)
	}

	prediction, err := s.scorer.Score(sub.Category, vector)
	if err != nil {
		return nil, models.Prediction{}, fmt.Errorf("risk scoring: %w", err)
	}

	return vector, prediction, nil
}
