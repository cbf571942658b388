package models

import "encoding/json"

// Feature names shared by every extractor.
const (
	FeatureScore  = "score"
	FeatureErrors = "errors"
)

// FeatureVector maps feature names to numeric values derived from one
// test submission. Every vector carries a "score" (0-100 overall
// performance) and an "errors" count. A vector is produced once per
// submission and never mutated afterwards.
type FeatureVector map[string]float64

// Get returns the named feature, or the fallback when the feature was
// never computed. The scoring engine uses this so an absent feature is
// read as its most benign value.
func (fv FeatureVector) Get(name string, fallback float64) float64 {
	if v, ok := fv[name]; ok {
		return v
	}
	return fallback
}

// Has reports whether the feature was computed for this vector.
func (fv FeatureVector) Has(name string) bool {
	_, ok := fv[name]
	return ok
}

// Score returns the overall 0-100 performance score.
func (fv FeatureVector) Score() float64 {
	return fv.Get(FeatureScore, 0)
}

// Errors returns the error count derived for the submission.
func (fv FeatureVector) Errors() int {
	return int(fv.Get(FeatureErrors, 0))
}

// Clone returns an independent copy of the vector.
func (fv FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(fv))
	for k, v := range fv {
		out[k] = v
	}
	return out
}

// MarshalJSONB serializes the vector for the jsonb features column.
func (fv FeatureVector) MarshalJSONB() json.RawMessage {
	data, err := json.Marshal(fv)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}
