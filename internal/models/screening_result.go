package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Student is the subject being screened. Roster management beyond this
// record lives in the calling layer.
type Student struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

// ScreeningResult persists one processed submission: the raw payload,
// the derived feature vector, and the summary numbers used by the
// aggregator. MediaRefs are opaque file references stored untouched.
type ScreeningResult struct {
	ID             int             `json:"id"`
	StudentID      int             `json:"student_id" gorm:"index"`
	Category       TestCategory    `json:"category"`
	Score          float64         `json:"score"`
	Errors         int             `json:"errors"`
	ElapsedSeconds float64         `json:"elapsed_seconds"`
	Features       json.RawMessage `json:"features" gorm:"type:jsonb"`
	RawPayload     json.RawMessage `json:"-" gorm:"type:jsonb"`
	MediaRefs      pq.StringArray  `json:"media_refs,omitempty" gorm:"type:text[]"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PredictionRecord persists the prediction derived from one
// ScreeningResult. The pair is written in a single transaction so a
// stored result never exists without its prediction.
type PredictionRecord struct {
	ID                int            `json:"id"`
	ScreeningResultID int            `json:"screening_result_id" gorm:"index"`
	Classification    Classification `json:"classification"`
	Confidence        float64        `json:"confidence"`
	RiskTier          RiskTier       `json:"risk_tier"`
	CreatedAt         time.Time      `json:"created_at"`
}
