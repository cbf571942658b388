package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/config"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/logger"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.NewGormZapLogger(log),
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate creates tables, columns, and foreign keys.
	// Custom indexes are handled separately.
	err := DB.AutoMigrate(
		&models.Student{},
		&models.ScreeningResult{},
		&models.PredictionRecord{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	historyIndex := `CREATE INDEX IF NOT EXISTS idx_screening_history ON screening_results (student_id, created_at);`
	if err := DB.Exec(historyIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on screening results", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
