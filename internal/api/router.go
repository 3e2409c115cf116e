package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acadreview/reviewhub/internal/api/handler"
	"github.com/acadreview/reviewhub/internal/api/middleware"
	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
	"github.com/acadreview/reviewhub/internal/core/service"
	"github.com/acadreview/reviewhub/internal/infrastructure/config"
	mongodb "github.com/acadreview/reviewhub/internal/infrastructure/db/mongo"
	redisdb "github.com/acadreview/reviewhub/internal/infrastructure/db/redis"
	"github.com/acadreview/reviewhub/internal/infrastructure/document"
	"github.com/acadreview/reviewhub/internal/infrastructure/mail"
	"github.com/acadreview/reviewhub/internal/infrastructure/spreadsheet"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the reminder throttle is then disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reviewhub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	var throttle service.ReminderThrottle
	if rdb != nil {
		throttle = redisdb.NewReminderThrottle(rdb, cfg.Redis.ReminderTTL)
	}

	sender := newSender(cfg, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.EmailDomain, cfg.TokenTTL)
	reviewService := service.NewReviewService(reviewRepo, log)
	rosterService := service.NewRosterService(reviewRepo, spreadsheet.NewRosterParser(), spreadsheet.NewSnapshotWriter(cfg.ExportDir), log)
	exportService := service.NewExportService(reviewRepo, document.NewRenderer(), cfg.ExportDir)
	reminderService := service.NewReminderService(reviewRepo, sender, throttle, log)

	authHandler := handler.NewAuthHandler(authService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	exportHandler := handler.NewExportHandler(exportService, cfg.ExportDir)
	reminderHandler := handler.NewReminderHandler(reminderService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	leaderOnly := middleware.RBAC(domain.RoleModuleLeader)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/users", authHandler.Users, auth, adminOnly)

	// --- Review routes ---
	e.GET("/api/modules", reviewHandler.ListModules, auth)
	e.GET("/api/modules/:id", reviewHandler.GetModule, auth)
	e.PUT("/api/modules/:id", reviewHandler.UpdateModule, auth, leaderOnly)
	e.GET("/api/programs", reviewHandler.ListPrograms, auth)
	e.GET("/api/programs/:id", reviewHandler.GetProgram, auth)
	e.PUT("/api/programs/:id", reviewHandler.UpdateProgram, auth, leaderOnly)
	e.GET("/api/reviews/not-started", reviewHandler.NotStarted, auth)

	// --- Roster transition & exports ---
	e.POST("/api/upload", rosterHandler.Upload, auth, adminOnly)
	e.GET("/api/export/current", rosterHandler.ExportCurrent, auth, adminOnly)
	e.GET("/api/export/:type/:id", exportHandler.Document, auth, adminOnly)
	e.GET("/api/download/:filename", exportHandler.Download, auth)

	// --- Reminders ---
	e.POST("/api/send-reminder", reminderHandler.Send, auth, adminOnly)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

func newSender(cfg *config.Config, log zerolog.Logger) ports.MailSender {
	if cfg.Mail.SendGridKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY not set, reminder mail goes to the console")
		return mail.NewConsoleSender(log)
	}
	return mail.NewSendGridSender(cfg.Mail.SendGridKey, cfg.Mail.AppName, cfg.Mail.From)
}
