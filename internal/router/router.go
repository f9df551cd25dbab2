package router

import (
	"github.com/Hellga-Olga/MyBubble/internal/handlers"
	"github.com/Hellga-Olga/MyBubble/internal/langdetect"
	"github.com/Hellga-Olga/MyBubble/internal/mailer"
	appmetrics "github.com/Hellga-Olga/MyBubble/internal/metrics"
	appmiddleware "github.com/Hellga-Olga/MyBubble/internal/middleware"
	"github.com/Hellga-Olga/MyBubble/internal/models"
	"github.com/Hellga-Olga/MyBubble/internal/repositories"
	"github.com/Hellga-Olga/MyBubble/internal/storage"
	"github.com/Hellga-Olga/MyBubble/internal/translate"
	"github.com/Hellga-Olga/MyBubble/pkg/config"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
}

// Deps are the constructed collaborators injected into the route table.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Log       *logrus.Logger
	Mailer    *mailer.Mailer
	FileStore *storage.FileStore
	Detector  *langdetect.Detector
	Translate *translate.Client
	Registry  *prometheus.Registry
}

// SetupRoutes migrates the schema, seeds boards, wires repositories and
// handlers, and registers every route on e.
func SetupRoutes(e *echo.Echo, deps Deps) error {
	err := deps.DB.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Board{},
		&models.Post{},
		&models.Image{},
		&models.Avatar{},
		&models.Message{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(deps.DB)
	followRepo := repositories.NewPostgresFollowRepository(deps.DB)
	postRepo := repositories.NewPostgresPostRepository(deps.DB)
	boardRepo := repositories.NewPostgresBoardRepository(deps.DB)
	messageRepo := repositories.NewPostgresMessageRepository(deps.DB)
	notificationRepo := repositories.NewPostgresNotificationRepository(deps.DB)
	avatarRepo := repositories.NewPostgresAvatarRepository(deps.DB)

	if err := boardRepo.Seed(models.DefaultBoards); err != nil {
		return err
	}
	deps.Log.Info("schema migrated, boards seeded")

	m := appmetrics.New(deps.Registry)
	e.Use(m.Middleware())

	// Health and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", appmetrics.Handler(deps.Registry))

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, deps.Mailer, deps.Config.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(appmiddleware.JWTAuthMiddleware(deps.Config.JWTSecret))
	api.Use(appmiddleware.LastSeenMiddleware(userRepo, deps.Log))

	perPage := deps.Config.PostsPerPage

	userHandler := handlers.NewUserHandler(userRepo, followRepo, postRepo, avatarRepo, perPage)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, m)
	followHandler.RegisterFollowRoutes(api)

	feedHandler := handlers.NewFeedHandler(postRepo, perPage)
	feedHandler.RegisterFeedRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, boardRepo, deps.FileStore, deps.Detector, m, perPage)
	postHandler.RegisterPostRoutes(api)

	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, notificationRepo, m, perPage)
	messageHandler.RegisterMessageRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	avatarHandler := handlers.NewAvatarHandler(avatarRepo, deps.FileStore)
	avatarHandler.RegisterAvatarRoutes(api)

	translateHandler := handlers.NewTranslateHandler(deps.Translate)
	translateHandler.RegisterTranslateRoutes(api)

	deps.Log.Info("all routes configured")
	return nil
}
