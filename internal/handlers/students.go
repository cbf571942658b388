package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/repository"
)

type StudentsHandler struct {
	log *zap.Logger
}

func NewStudentsHandler(log *zap.Logger) *StudentsHandler {
	return &StudentsHandler{log: log}
}

type createStudentRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Grade     string `json:"grade"`
}

// Create adds a student to the roster.
func (h *StudentsHandler) Create(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student"})
		return
	}

	student := models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Grade:     req.Grade,
	}
	if err := repository.CreateStudent(c.Request.Context(), &student); err != nil {
		h.log.Error("Failed to create student", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}

	c.JSON(http.StatusCreated, student)
}

// Get returns one student by id.
func (h *StudentsHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
		return
	}

	student, err := repository.GetStudent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		h.log.Error("Failed to load student", zap.Error(err), zap.Int("studentID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load student"})
		return
	}

	c.JSON(http.StatusOK, student)
}

// List returns the full roster.
func (h *StudentsHandler) List(c *gin.Context) {
	students, err := repository.ListStudents(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list students", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
		return
	}

	c.JSON(http.StatusOK, students)
}
