package models

import (
	"encoding/json"
	"fmt"
)

// Payload is the closed set of category-specific submission shapes. The
// raw JSON from the calling layer is decoded exactly once, at the
// boundary, so the extractors never have to probe loose maps for fields.
type Payload interface {
	isPayload()
}

// ReadingPayload holds a read-aloud test: the passage shown to the
// student and a transcript of what they actually read.
type ReadingPayload struct {
	TextProvided string `json:"text_provided"`
	TextRead     string `json:"text_read"`
}

// WritingPayload holds a writing-prompt test.
type WritingPayload struct {
	Prompt      string `json:"prompt"`
	TextWritten string `json:"text_written"`
}

// MathProblem is a single graded problem within a math test.
type MathProblem struct {
	Question      string  `json:"question"`
	CorrectAnswer string  `json:"correct_answer"`
	StudentAnswer string  `json:"student_answer"`
	TimeSeconds   float64 `json:"time_seconds,omitempty"`
}

type MathPayload struct {
	Problems []MathProblem `json:"problems"`
}

// MemoryPayload holds a recall test: the items shown and what the
// student reported back, in recall order.
type MemoryPayload struct {
	ItemsPresented []string `json:"items_presented"`
	ItemsRecalled  []string `json:"items_recalled"`
}

// AttentionPayload carries pre-counted signal-detection outcomes from a
// sustained-attention task.
type AttentionPayload struct {
	TotalTrials       int `json:"total_trials"`
	Hits              int `json:"hits"`
	Misses            int `json:"misses"`
	FalseAlarms       int `json:"false_alarms"`
	CorrectRejections int `json:"correct_rejections"`
}

// PhonologicalTask is one of the four fixed phonological-awareness
// sub-tasks. Correct is optional: free-text responses cannot be
// auto-graded, so grading only happens when the integrator supplies it.
type PhonologicalTask struct {
	TaskType string `json:"task_type"` // rhyming, segmentation, blending, manipulation
	Response string `json:"response"`
	Correct  *bool  `json:"correct,omitempty"`
}

type PhonologicalPayload struct {
	Tasks []PhonologicalTask `json:"tasks"`
}

// VisualPattern aggregates correct/total counts for one pattern
// difficulty class.
type VisualPattern struct {
	Type    string `json:"type"` // "simple" or "complex"
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

type VisualPayload struct {
	Patterns []VisualPattern `json:"patterns"`
}

func (ReadingPayload) isPayload()      {}
func (WritingPayload) isPayload()      {}
func (MathPayload) isPayload()         {}
func (MemoryPayload) isPayload()       {}
func (AttentionPayload) isPayload()    {}
func (PhonologicalPayload) isPayload() {}
func (VisualPayload) isPayload()       {}

// TestSubmission is one immutable test artifact handed to the screening
// core. MediaRefs are opaque blob references (audio recordings,
// handwriting scans) passed through unexamined.
type TestSubmission struct {
	Category       TestCategory `json:"category"`
	Payload        Payload      `json:"payload"`
	ElapsedSeconds float64      `json:"elapsed_seconds"`
	MediaRefs      []string     `json:"media_refs,omitempty"`
}

// DecodePayload unmarshals the category-specific payload shape from raw
// JSON. Missing fields decode to zero values; the extractors treat those
// as neutral rather than failing, since partial submissions are normal
// in classroom use. An unknown category is a routing bug upstream and is
// reported as an error.
func DecodePayload(category TestCategory, raw json.RawMessage) (Payload, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	decode := func(v Payload) (Payload, error) {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", category, err)
		}
		return v, nil
	}

	switch category {
	case CategoryReading:
		p := &ReadingPayload{}
		return decode(p)
	case CategoryWriting:
		p := &WritingPayload{}
		return decode(p)
	case CategoryMath:
		p := &MathPayload{}
		return decode(p)
	case CategoryMemory:
		p := &MemoryPayload{}
		return decode(p)
	case CategoryAttention:
		p := &AttentionPayload{}
		return decode(p)
	case CategoryPhonological:
		p := &PhonologicalPayload{}
		return decode(p)
	case CategoryVisualProcessing:
		p := &VisualPayload{}
		return decode(p)
	default:
		return nil, fmt.Errorf("unknown test category %q", category)
	}
}
