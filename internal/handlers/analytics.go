package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/history"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/repository"
)

type AnalyticsHandler struct {
	log *zap.Logger
}

func NewAnalyticsHandler(log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{log: log}
}

// StudentSummary aggregates a student's screening history into trend,
// per-category risk, and peer percentile.
func (h *AnalyticsHandler) StudentSummary(c *gin.Context) {
	studentID, ok := h.studentIDParam(c)
	if !ok {
		return
	}

	records, err := repository.StudentHistory(c.Request.Context(), studentID)
	if err != nil {
		h.log.Error("Failed to load screening history", zap.Error(err), zap.Int("studentID", studentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	peers, err := repository.PeerAverages(c.Request.Context(), studentID)
	if err != nil {
		h.log.Error("Failed to load peer averages", zap.Error(err), zap.Int("studentID", studentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, history.Summarize(records, peers))
}

// ProgressChart renders the student's score timeline as ECharts line
// options, ready for the client to feed straight into echarts.init.
func (h *AnalyticsHandler) ProgressChart(c *gin.Context) {
	studentID, ok := h.studentIDParam(c)
	if !ok {
		return
	}

	var category models.TestCategory
	if raw := c.Query("category"); raw != "" {
		parsed, err := models.ParseCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category = parsed
	}

	points, err := repository.ScoreTimeline(c.Request.Context(), studentID, category)
	if err != nil {
		h.log.Error("Failed to load score timeline", zap.Error(err), zap.Int("studentID", studentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timeline"})
		return
	}

	chart := generateProgressChart(points, category)
	optionsJSON, err := json.Marshal(chart.JSON())
	if err != nil {
		h.log.Error("Failed to marshal chart options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}

	c.Data(http.StatusOK, "application/json", optionsJSON)
}

// Overview reports platform-wide counts and the risk tier distribution.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	students, err := repository.CountStudents(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to count students", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}

	screenings, err := repository.CountScreenings(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to count screenings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}

	distribution, err := repository.RiskDistribution(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load risk distribution", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students":          students,
		"screenings":        screenings,
		"risk_distribution": distribution,
	})
}

func (h *AnalyticsHandler) studentIDParam(c *gin.Context) (int, bool) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
		return 0, false
	}

	if _, err := repository.GetStudent(c.Request.Context(), studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return 0, false
		}
		h.log.Error("Failed to load student", zap.Error(err), zap.Int("studentID", studentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
		return 0, false
	}
	return studentID, true
}

func generateProgressChart(points []repository.TimelinePoint, category models.TestCategory) *charts.Line {
	subtitle := "All categories"
	if category != "" {
		subtitle = string(category)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Score Over Time",
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Score}})
	}

	line.AddSeries("Score", items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
