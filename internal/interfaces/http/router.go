package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pulsegym/internal/application/retention/services"
	"pulsegym/internal/application/retention/usecases"
	"pulsegym/internal/infrastructure/auth"
	"pulsegym/internal/infrastructure/cache"
	"pulsegym/internal/infrastructure/config"
	"pulsegym/internal/infrastructure/email"
	"pulsegym/internal/infrastructure/repository"
	"pulsegym/internal/interfaces/http/handlers"
	"pulsegym/internal/interfaces/http/middleware"
	"pulsegym/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	assessmentHandler *handlers.AssessmentHandler
	healthHandler     *handlers.HealthHandler
	importHandler     *handlers.ImportHandler
	webhookHandler    *handlers.WebhookHandler
	authMiddleware    *middleware.AuthMiddleware
	logger            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	memberRepo := repository.NewMemberRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	billingRepo := repository.NewBillingRepository(db, log)
	bookingRepo := repository.NewBookingRepository(db, log)
	assessmentRepo := repository.NewAssessmentRepository(db, log)

	assembler := services.NewContextAssembler(memberRepo, subscriptionRepo, billingRepo, bookingRepo, log)

	// Outreach is disabled when no SMTP host is configured.
	var sender services.OutreachSender
	if cfg.Email.SMTPHost != "" {
		sender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}
	notifier := services.NewInterventionNotifier(sender, log)

	var assessmentCache usecases.AssessmentCache
	var baselineStore usecases.HealthBaselineStore
	if redisClient != nil {
		assessmentCache = cache.NewRedisAssessmentCache(redisClient, log)
		baselineStore = cache.NewHealthBaselineStore(redisClient)
	}

	assessMemberUC := usecases.NewAssessMemberUseCase(memberRepo, assembler, notifier, assessmentCache, log)
	assessRosterUC := usecases.NewAssessRosterUseCase(assembler, assessmentRepo, log)
	listAssessmentsUC := usecases.NewListAssessmentsUseCase(assessmentRepo, log)
	gymHealthUC := usecases.NewGetGymHealthUseCase(assembler, baselineStore, log)
	importMembersUC := usecases.NewImportMembersUseCase(memberRepo, log)
	recordBillingEventUC := usecases.NewRecordBillingEventUseCase(memberRepo, billingRepo, log)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)

	return &Router{
		engine:            engine,
		cfg:               cfg,
		assessmentHandler: handlers.NewAssessmentHandler(assessMemberUC, listAssessmentsUC, assessRosterUC, log),
		healthHandler:     handlers.NewHealthHandler(gymHealthUC, log),
		importHandler:     handlers.NewImportHandler(importMembersUC, log),
		webhookHandler:    handlers.NewWebhookHandler(recordBillingEventUC, log),
		authMiddleware:    middleware.NewAuthMiddleware(jwtSvc, log),
		logger:            log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/healthz", r.healthHandler.Liveness)

	api := r.engine.Group("/api/v1")

	// Webhooks authenticate by payload, not staff token; billing providers
	// cannot send bearer headers.
	api.POST("/webhooks/billing", r.webhookHandler.HandleBillingEvent)

	protected := api.Group("")
	protected.Use(r.authMiddleware.RequireAuth())
	{
		protected.GET("/members/:id/assessment", r.assessmentHandler.GetMemberAssessment)
		protected.POST("/members/import", r.importHandler.ImportMembers)
		protected.GET("/assessments", r.assessmentHandler.ListAssessments)
		protected.POST("/assessments/run", r.assessmentHandler.RunRosterAssessment)
		protected.GET("/gym/health", r.healthHandler.GetGymHealth)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
