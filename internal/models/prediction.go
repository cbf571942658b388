package models

// Prediction is the risk classification derived deterministically from
// one FeatureVector. Confidence is always within [0,1]; the tier is a
// pure function of the confidence.
type Prediction struct {
	Classification Classification `json:"classification"`
	Confidence     float64        `json:"confidence"`
	RiskTier       RiskTier       `json:"risk_tier"`
}
