package main

import (
	"go.uber.org/zap"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/config"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/database"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/logger"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/router"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/scoring"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/screening"
)

func main() {
	// Initialize Logger with rotation defaults; config isn't loaded yet,
	// so the first few lines land in the default log directory.
	log, err := logger.Init(logger.Options{})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { log.Sync() }()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Rebuild the logger with the configured rotation settings.
	logCfg := config.Conf.Logging
	configured, err := logger.Init(logger.Options{
		Directory:  logCfg.Directory,
		MaxSizeMB:  logCfg.MaxSize,
		MaxBackups: logCfg.MaxBackups,
		MaxAgeDays: logCfg.MaxAge,
		Compress:   logCfg.Compress,
	})
	if err != nil {
		log.Fatal("Failed to initialize configured logger", zap.Error(err))
	}
	log.Sync()
	log = configured

	// Initialize Database
	database.Init(log)

	// Load indicator threshold tables. An empty rules_file falls back to
	// the built-in tables.
	var rules *scoring.RuleSet
	if path := config.Conf.Screening.RulesFile; path != "" {
		rules, err = scoring.LoadRuleSet(path)
		if err != nil {
			log.Fatal("Failed to load scoring rules", zap.Error(err), zap.String("file", path))
		}
		log.Info("Scoring rules loaded", zap.String("file", path))
	}

	service := screening.NewService(scoring.NewRuleEngine(rules))

	// Setup router, passing the logger to it
	r := router.Setup(log, service)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
