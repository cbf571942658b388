package repository

import (
	"context"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/database"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

// CreateStudent inserts a new student record.
func CreateStudent(ctx context.Context, student *models.Student) error {
	return database.DB.WithContext(ctx).Create(student).Error
}

// GetStudent loads one student by id.
func GetStudent(ctx context.Context, id int) (models.Student, error) {
	var student models.Student
	err := database.DB.WithContext(ctx).First(&student, id).Error
	return student, err
}

// ListStudents returns all students ordered by creation time.
func ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := database.DB.WithContext(ctx).Order("created_at").Find(&students).Error
	return students, err
}

// CountStudents returns the roster size.
func CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	return count, err
}
