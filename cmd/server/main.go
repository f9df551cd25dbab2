package main

import (
	"github.com/Hellga-Olga/MyBubble/internal/langdetect"
	"github.com/Hellga-Olga/MyBubble/internal/mailer"
	"github.com/Hellga-Olga/MyBubble/internal/router"
	"github.com/Hellga-Olga/MyBubble/internal/storage"
	"github.com/Hellga-Olga/MyBubble/internal/translate"
	"github.com/Hellga-Olga/MyBubble/pkg/config"
	"github.com/Hellga-Olga/MyBubble/validators"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg := config.Load()

	// Initialize the database connection
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	fileStore, err := storage.NewFileStore(cfg.UploadRoot, log)
	if err != nil {
		log.Fatalf("Failed to initialize file store: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	err = router.SetupRoutes(e, router.Deps{
		Config:    cfg,
		DB:        db.Gorm,
		Log:       log,
		Mailer:    mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailSender, log),
		FileStore: fileStore,
		Detector:  langdetect.New(),
		Translate: translate.New(cfg.TranslateKey),
		Registry:  prometheus.NewRegistry(),
	})
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	log.WithField("port", cfg.Port).Info("MyBubble startup")

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
