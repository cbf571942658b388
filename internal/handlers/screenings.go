package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/repository"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/screening"
)

type ScreeningsHandler struct {
	log     *zap.Logger
	service *screening.Service
}

func NewScreeningsHandler(log *zap.Logger, service *screening.Service) *ScreeningsHandler {
	return &ScreeningsHandler{log: log, service: service}
}

type submitScreeningRequest struct {
	StudentID      int             `json:"student_id" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	ElapsedSeconds float64         `json:"elapsed_seconds"`
	Payload        json.RawMessage `json:"payload"`
	MediaRefs      []string        `json:"media_refs"`
}

type submitScreeningResponse struct {
	ScreeningID int                  `json:"screening_id"`
	Category    models.TestCategory  `json:"category"`
	Features    models.FeatureVector `json:"features"`
	Prediction  models.Prediction    `json:"prediction"`
}

// Submit runs one test submission through the screening pipeline and
// stores the feature vector and prediction as an atomic pair.
func (h *ScreeningsHandler) Submit(c *gin.Context) {
	var req submitScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Failed to bind screening submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission"})
		return
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		h.log.Warn("Screening submitted with unknown category", zap.String("category", req.Category))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := models.DecodePayload(category, req.Payload)
	if err != nil {
		h.log.Warn("Failed to decode screening payload", zap.Error(err), zap.String("category", req.Category))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload for category"})
		return
	}

	submission := models.TestSubmission{
		Category:       category,
		Payload:        payload,
		ElapsedSeconds: req.ElapsedSeconds,
		MediaRefs:      req.MediaRefs,
	}

	features, prediction, err := h.service.ExtractAndScore(submission)
	if err != nil {
		h.log.Error("Screening pipeline failed", zap.Error(err), zap.String("category", req.Category))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process submission"})
		return
	}

	now := time.Now()
	result := models.ScreeningResult{
		StudentID:      req.StudentID,
		Category:       category,
		Score:          features.Score(),
		Errors:         features.Errors(),
		ElapsedSeconds: req.ElapsedSeconds,
		Features:       features.MarshalJSONB(),
		RawPayload:     req.Payload,
		MediaRefs:      pq.StringArray(req.MediaRefs),
		CreatedAt:      now,
	}
	record := models.PredictionRecord{
		Classification: prediction.Classification,
		Confidence:     prediction.Confidence,
		RiskTier:       prediction.RiskTier,
		CreatedAt:      now,
	}

	if err := repository.SaveScreeningTx(c.Request.Context(), &result, &record); err != nil {
		h.log.Error("Failed to save screening", zap.Error(err), zap.Int("studentID", req.StudentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save screening"})
		return
	}

	c.JSON(http.StatusCreated, submitScreeningResponse{
		ScreeningID: result.ID,
		Category:    category,
		Features:    features,
		Prediction:  prediction,
	})
}
