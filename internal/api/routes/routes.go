package routes

import (
	"context"
	"fmt"
	"time"

	"papermark-backend/internal/api/handlers"
	"papermark-backend/internal/api/middleware"
	"papermark-backend/internal/auth"
	"papermark-backend/internal/config"
	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	"papermark-backend/internal/jobs"
	"papermark-backend/internal/metrics"
	"papermark-backend/internal/pdf"
	"papermark-backend/internal/ratelimit"
	"papermark-backend/internal/repository"
	"papermark-backend/internal/service"
	"papermark-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Infrastructure holds the process-wide clients the services are built on
type Infrastructure struct {
	DB        *gorm.DB
	Redis     *redis.Client // nil selects in-memory fallbacks
	Storage   storage.Storage
	Mailer    email.Sender
	PDF       pdf.Processor
	Scheduler *jobs.Scheduler
	Registry  *prometheus.Registry
	Stripe    service.StripeGateway  // nil disables billing calls
	Google    auth.IdentityProvider // nil disables Google login
}

// Services holds every service of the application
type Services struct {
	Auth          *auth.AuthService
	Users         *service.UserService
	Teams         *service.TeamService
	Documents     *service.DocumentService
	Folders       *service.FolderService
	Datarooms     *service.DataroomService
	Links         *service.LinkService
	Verification  *service.VerificationService
	Views         *service.ViewService
	Webhooks      *service.WebhookService
	Notifications *service.NotificationService
	Billing       *service.BillingService
}

// NewServices builds the repositories and services on top of infra
func NewServices(cfg *config.Config, infra *Infrastructure) (*Services, error) {
	validate := validator.New()
	db := infra.DB

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	versionRepo := repository.NewDocumentVersionRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	dataroomRepo := repository.NewDataroomRepository(db)
	dataroomFolderRepo := repository.NewDataroomFolderRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	viewRepo := repository.NewViewRepository(db)
	viewerRepo := repository.NewViewerRepository(db)
	webhookRepo := repository.NewWebhookRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	tokenRepo := repository.NewVerificationTokenRepository(db)

	throttle := ratelimit.NewThrottle(infra.Redis)

	// Initialize services
	webhookService := service.NewWebhookService(webhookRepo, infra.Scheduler,
		time.Duration(cfg.WebhookTimeoutSeconds)*time.Second, cfg.WebhookMaxRetries, validate)

	notificationService := service.NewNotificationService(service.NotificationDependencies{
		Notifications: notificationRepo,
		Views:         viewRepo,
		Links:         linkRepo,
		Documents:     documentRepo,
		Datarooms:     dataroomRepo,
		Teams:         teamRepo,
		Users:         userRepo,
		Mailer:        infra.Mailer,
		Hub:           service.NewHub(service.DefaultHubBuffer),
	}, cfg.BaseURL)

	presignTTL := time.Duration(cfg.StoragePresignTTLMinutes) * time.Minute
	userService := service.NewUserService(userRepo, teamRepo, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, invitationRepo, notificationService, infra.Mailer, cfg.BaseURL, validate)
	documentService := service.NewDocumentService(documentRepo, versionRepo, folderRepo, teamRepo, infra.Storage, infra.PDF, webhookService,
		service.DocumentOptions{
			PresignTTL:     presignTTL,
			MaxUploadSize:  cfg.StorageMaxUploadSizeBytes,
			TrashRetention: time.Duration(cfg.TrashRetentionDays) * 24 * time.Hour,
		}, validate)
	folderService := service.NewFolderService(folderRepo, documentRepo, validate)
	dataroomService := service.NewDataroomService(dataroomRepo, dataroomFolderRepo, documentRepo, linkRepo, teamRepo, webhookService, validate)
	linkService := service.NewLinkService(linkRepo, documentRepo, dataroomRepo, viewRepo, teamRepo, webhookService, cfg.BaseURL, validate)
	verificationService := service.NewVerificationService(tokenRepo, linkRepo, throttle, infra.Mailer, validate)
	viewService := service.NewViewService(service.ViewDependencies{
		Views:      viewRepo,
		Viewers:    viewerRepo,
		Links:      linkRepo,
		Documents:  documentRepo,
		Datarooms:  dataroomRepo,
		Verifier:   verificationService,
		Storage:    infra.Storage,
		PDF:        infra.PDF,
		Dispatcher: webhookService,
		Queue:      infra.Scheduler,
	}, presignTTL, validate)

	prices := make(map[models.Plan]string)
	for _, plan := range []models.Plan{models.PlanPro, models.PlanBusiness, models.PlanDatarooms} {
		if price := cfg.PriceForPlan(string(plan)); price != "" {
			prices[plan] = price
		}
	}
	billingService := service.NewBillingService(service.BillingDependencies{
		Teams:     teamRepo,
		Users:     userRepo,
		Documents: documentRepo,
		Links:     linkRepo,
		Datarooms: dataroomRepo,
		Gateway:   infra.Stripe,
		Mailer:    infra.Mailer,
		Reminders: throttle,
	}, prices, cfg.BaseURL, validate)

	var refreshStore auth.RefreshStore
	if infra.Redis != nil {
		refreshStore = auth.NewRedisRefreshStore(infra.Redis)
	} else {
		refreshStore = auth.NewMemoryRefreshStore()
	}
	authService, err := auth.NewAuthService(auth.Config{JWTSecret: cfg.JWTSecret, BaseURL: cfg.BaseURL}, auth.Dependencies{
		Users:     userRepo,
		Tokens:    tokenRepo,
		Store:     refreshStore,
		Mailer:    infra.Mailer,
		Google:    infra.Google,
		Validator: validate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &Services{
		Auth:          authService,
		Teams:         teamService,
		Documents:     documentService,
		Folders:       folderService,
		Datarooms:     dataroomService,
		Links:         linkService,
		Verification:  verificationService,
		Views:         viewService,
		Webhooks:      webhookService,
		Notifications: notificationService,
		Billing:       billingService,
		Users:         userService,
	}, nil
}

// RegisterJobs binds every background job type to its service call
func RegisterJobs(scheduler *jobs.Scheduler, services *Services) {
	scheduler.Register(jobs.JobTypeWebhookDelivery, func(ctx context.Context, job *jobs.Job) error {
		deliveryID, err := uuid.Parse(job.Payload)
		if err != nil {
			return fmt.Errorf("invalid delivery id %q: %w", job.Payload, err)
		}
		return services.Webhooks.Deliver(ctx, deliveryID)
	})
	scheduler.Register(jobs.JobTypeViewNotification, func(ctx context.Context, job *jobs.Job) error {
		viewID, err := uuid.Parse(job.Payload)
		if err != nil {
			return fmt.Errorf("invalid view id %q: %w", job.Payload, err)
		}
		return services.Notifications.NotifyView(ctx, viewID)
	})
	scheduler.Register(jobs.JobTypeWebhookRetries, func(ctx context.Context, _ *jobs.Job) error {
		_, err := services.Webhooks.RetryDue(ctx)
		return err
	})
	scheduler.Register(jobs.JobTypeTrashPurge, func(ctx context.Context, _ *jobs.Job) error {
		_, err := services.Documents.PurgeExpiredTrash(ctx)
		return err
	})
	scheduler.Register(jobs.JobTypeTokenCleanup, func(_ context.Context, _ *jobs.Job) error {
		_, err := services.Verification.CleanupExpired()
		return err
	})
	scheduler.Register(jobs.JobTypeInvitationCleanup, func(_ context.Context, _ *jobs.Job) error {
		_, err := services.Teams.CleanupExpiredInvitations()
		return err
	})
	scheduler.Register(jobs.JobTypeRenewalReminders, func(ctx context.Context, _ *jobs.Job) error {
		_, err := services.Billing.SendRenewalReminders(ctx, time.Now())
		return err
	})
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, infra *Infrastructure, services *Services) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(infra.DB, infra.Redis)
	authHandler := auth.NewAuthHandler(services.Auth)
	authMiddleware := auth.NewAuthMiddleware(services.Auth)
	userHandler := handlers.NewUserHandler(services.Users)
	teamHandler := handlers.NewTeamHandler(services.Teams)
	documentHandler := handlers.NewDocumentHandler(services.Documents, services.Links, cfg.StorageMaxUploadSizeBytes)
	folderHandler := handlers.NewFolderHandler(services.Folders)
	dataroomHandler := handlers.NewDataroomHandler(services.Datarooms, services.Links)
	linkHandler := handlers.NewLinkHandler(services.Links)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Views)
	publicHandler := handlers.NewPublicHandler(services.Links, services.Verification, services.Views)
	webhookHandler := handlers.NewWebhookHandler(services.Webhooks)
	billingHandler := handlers.NewBillingHandler(services.Billing)
	notificationHandler := handlers.NewNotificationHandler(services.Notifications)

	limit := func(scope string) gin.HandlerFunc {
		if !cfg.RateLimitEnabled {
			return func(c *gin.Context) { c.Next() }
		}
		return ratelimit.Middleware(limiterFor(cfg, infra), scope)
	}

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if infra.Registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(infra.Registry)))
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/email", limit("auth-email"), authHandler.RequestEmail)
		authRoutes.GET("/verify", authHandler.Verify)
		authRoutes.GET("/google/start", authHandler.GoogleStart)
		authRoutes.GET("/google/callback", authHandler.GoogleCallback)
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	router.POST("/api/invitations/accept", authMiddleware.RequireAuth(), teamHandler.AcceptInvitation)

	// Public link access, no authentication required
	public := router.Group("/api")
	{
		public.GET("/links/:id", publicHandler.GetLink)
		public.GET("/links/domains/:domain/:slug", publicHandler.GetLinkBySlug)
		public.POST("/links/:id/otp", limit("link-otp"), publicHandler.RequestOTP)
		public.POST("/links/:id/views", limit("link-views"), publicHandler.RecordView)
		public.POST("/views/:viewId/pages", publicHandler.RecordPageView)
		public.GET("/views/:viewId/download", publicHandler.Download)
		public.POST("/stripe/webhook", billingHandler.StripeWebhook)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", userHandler.GetCurrentUser)
		v1.PATCH("/me", userHandler.UpdateCurrentUser)

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/stream", notificationHandler.Stream)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		v1.POST("/teams", teamHandler.CreateTeam)
		v1.GET("/teams", teamHandler.ListTeams)

		team := v1.Group("/teams/:teamId")
		team.Use(middleware.RequireTeamMember(services.Teams))
		{
			team.GET("", teamHandler.GetTeam)
			team.PATCH("", teamHandler.UpdateTeam)
			team.DELETE("", teamHandler.DeleteTeam)
			team.GET("/members", teamHandler.ListMembers)
			team.PATCH("/members/:userId", teamHandler.ChangeMemberRole)
			team.DELETE("/members/:userId", teamHandler.RemoveMember)
			team.POST("/invitations", teamHandler.InviteMember)

			documents := team.Group("/documents")
			{
				documents.POST("", documentHandler.Upload)
				documents.GET("", documentHandler.List)
				documents.POST("/presign", documentHandler.PresignUpload)
				documents.POST("/register", documentHandler.Register)
				documents.GET("/:id", documentHandler.Get)
				documents.PATCH("/:id", documentHandler.Update)
				documents.DELETE("/:id", documentHandler.Delete)
				documents.GET("/:id/download-url", documentHandler.DownloadURL)
				documents.GET("/:id/versions", documentHandler.ListVersions)
				documents.POST("/:id/versions", documentHandler.AddVersion)
				documents.POST("/:id/versions/:version/promote", documentHandler.PromoteVersion)
				documents.GET("/:id/links", documentHandler.ListLinks)
				documents.GET("/:id/views", analyticsHandler.DocumentViews)
				documents.GET("/:id/stats", analyticsHandler.DocumentStats)
			}

			trash := team.Group("/trash")
			{
				trash.GET("", documentHandler.ListTrash)
				trash.POST("/:id/restore", documentHandler.Restore)
				trash.DELETE("/:id", documentHandler.Purge)
			}

			folders := team.Group("/folders")
			{
				folders.POST("", folderHandler.Create)
				folders.GET("", folderHandler.List)
				folders.PATCH("/:id", folderHandler.Rename)
				folders.DELETE("/:id", folderHandler.Delete)
			}

			datarooms := team.Group("/datarooms")
			{
				datarooms.POST("", dataroomHandler.Create)
				datarooms.GET("", dataroomHandler.List)
				datarooms.GET("/:id", dataroomHandler.Get)
				datarooms.PATCH("/:id", dataroomHandler.Update)
				datarooms.DELETE("/:id", dataroomHandler.Delete)
				datarooms.GET("/:id/contents", dataroomHandler.Contents)
				datarooms.POST("/:id/documents", dataroomHandler.AddDocuments)
				datarooms.PATCH("/:id/documents/:dataroomDocumentId", dataroomHandler.MoveDocument)
				datarooms.DELETE("/:id/documents/:dataroomDocumentId", dataroomHandler.RemoveDocument)
				datarooms.POST("/:id/folders", dataroomHandler.CreateFolder)
				datarooms.PATCH("/:id/folders/:folderId", dataroomHandler.RenameFolder)
				datarooms.DELETE("/:id/folders/:folderId", dataroomHandler.DeleteFolder)
				datarooms.GET("/:id/links", dataroomHandler.ListLinks)
			}

			links := team.Group("/links")
			{
				links.POST("", linkHandler.Create)
				links.GET("/:id", linkHandler.Get)
				links.PATCH("/:id", linkHandler.Update)
				links.POST("/:id/archive", linkHandler.Archive)
				links.DELETE("/:id", linkHandler.Delete)
			}

			team.POST("/views/:viewId/archive", analyticsHandler.ArchiveView)
			team.GET("/viewers", analyticsHandler.ListViewers)
			team.GET("/viewers/:viewerId", analyticsHandler.GetViewer)

			webhooks := team.Group("/webhooks")
			webhooks.Use(middleware.RequireTeamRole(models.RoleAdmin, models.RoleManager))
			{
				webhooks.POST("", webhookHandler.Create)
				webhooks.GET("", webhookHandler.List)
				webhooks.GET("/:id", webhookHandler.Get)
				webhooks.PATCH("/:id", webhookHandler.Update)
				webhooks.DELETE("/:id", webhookHandler.Delete)
				webhooks.GET("/:id/deliveries", webhookHandler.Deliveries)
			}

			billing := team.Group("/billing")
			{
				billing.GET("", billingHandler.Status)
				billing.POST("/checkout", billingHandler.Checkout)
				billing.POST("/portal", billingHandler.Portal)
			}
		}
	}

	return router
}

// limiterFor builds one limiter per call so every scope gets its own in-memory buckets
func limiterFor(cfg *config.Config, infra *Infrastructure) ratelimit.Limiter {
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	return ratelimit.New(infra.Redis, cfg.RateLimitRPS, cfg.RateLimitBurst, window)
}
