package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	accountusecases "warsztat/internal/application/account/usecases"
	requestusecases "warsztat/internal/application/request/usecases"
	"warsztat/internal/infrastructure/auth"
	"warsztat/internal/infrastructure/config"
	"warsztat/internal/infrastructure/email"
	"warsztat/internal/infrastructure/permission"
	"warsztat/internal/infrastructure/ratelimit"
	"warsztat/internal/infrastructure/repository"
	"warsztat/internal/interfaces/http/handlers"
	"warsztat/internal/interfaces/http/middleware"
	"warsztat/internal/shared/constants"
	db "warsztat/internal/shared/db"
	"warsztat/internal/shared/logger"
	"warsztat/internal/shared/utils"

	_ "warsztat/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine               *gin.Engine
	authHandler          *handlers.AuthHandler
	requestHandler       *handlers.RequestHandler
	archiveHandler       *handlers.ArchiveHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         ratelimit.RateLimiter
	loginRateLimit       int
	logger               logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(
	gormDB *gorm.DB,
	cfg *config.Config,
	enforcer *permission.Enforcer,
	loginLimiter ratelimit.RateLimiter,
	log logger.Interface,
) *Router {
	engine := gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterPhoneValidator(v); err != nil {
			log.Warnw("failed to register phone validator", "error", err)
		}
	}

	accountRepo := repository.NewAccountRepository(gormDB)
	requestRepo := repository.NewRequestRepository(gormDB)
	archiveRepo := repository.NewArchiveRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	tokenService := auth.NewSessionTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionExpHours)

	var notifier requestusecases.NotificationService
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:          cfg.Email.SMTPHost,
			Port:          cfg.Email.SMTPPort,
			Username:      cfg.Email.SMTPUser,
			Password:      cfg.Email.SMTPPassword,
			FromAddress:   cfg.Email.FromAddress,
			FromName:      cfg.Email.FromName,
			NotifyAddress: cfg.Email.NotifyAddress,
		})
	}

	registerUC := accountusecases.NewRegisterUseCase(accountRepo, hasher, log)
	authenticateUC := accountusecases.NewAuthenticateUseCase(accountRepo, hasher, log)
	getRoleUC := accountusecases.NewGetRoleUseCase(accountRepo, log)

	createUC := requestusecases.NewCreateRequestUseCase(requestRepo, notifier, log)
	listUC := requestusecases.NewListRequestsUseCase(requestRepo, log)
	deleteUC := requestusecases.NewDeleteRequestUseCase(requestRepo, log)
	archiveUC := requestusecases.NewArchiveRequestUseCase(requestRepo, archiveRepo, txManager, log)
	listArchiveUC := requestusecases.NewListArchiveUseCase(archiveRepo, log)
	deleteArchivedUC := requestusecases.NewDeleteArchivedUseCase(archiveRepo, log)

	authHandler := handlers.NewAuthHandler(registerUC, authenticateUC, tokenService, cfg.Auth.Cookie, log)
	requestHandler := handlers.NewRequestHandler(createUC, listUC, deleteUC, archiveUC, log)
	archiveHandler := handlers.NewArchiveHandler(listArchiveUC, deleteArchivedUC, log)

	authMiddleware := middleware.NewAuthMiddleware(tokenService, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, getRoleUC, log)

	loginRateLimit := 0
	if cfg.Auth.LoginRateEnabled {
		loginRateLimit = cfg.Auth.LoginRateLimit
	}

	return &Router{
		engine:               engine,
		authHandler:          authHandler,
		requestHandler:       requestHandler,
		archiveHandler:       archiveHandler,
		authMiddleware:       authMiddleware,
		permissionMiddleware: permissionMiddleware,
		loginLimiter:         loginLimiter,
		loginRateLimit:       loginRateLimit,
		logger:               log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/zdrowie", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.engine.Group("/api/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login",
			middleware.LoginRateLimit(r.loginLimiter, r.loginRateLimit, r.logger),
			r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/session", r.authMiddleware.OptionalAuth(), r.authHandler.Session)
	}

	requests := r.engine.Group("/api/requests")
	requests.Use(r.authMiddleware.OptionalAuth())
	{
		// Submission requires a session; the owner column stays nullable only
		// so stored rows survive account deletion.
		requests.POST("", r.authMiddleware.RequireAuth(), r.requestHandler.Create)

		requests.GET("",
			r.permissionMiddleware.Require(constants.ResourceRequests, constants.ActionList),
			r.requestHandler.List)
		requests.DELETE("/:id",
			r.permissionMiddleware.Require(constants.ResourceRequests, constants.ActionDelete),
			r.requestHandler.Delete)
		requests.POST("/:id/archive",
			r.permissionMiddleware.Require(constants.ResourceRequests, constants.ActionArchive),
			r.requestHandler.Archive)
	}

	archive := r.engine.Group("/api/archive")
	archive.Use(r.authMiddleware.OptionalAuth())
	{
		archive.GET("",
			r.permissionMiddleware.Require(constants.ResourceArchive, constants.ActionList),
			r.archiveHandler.List)
		archive.DELETE("/:id",
			r.permissionMiddleware.Require(constants.ResourceArchive, constants.ActionDelete),
			r.archiveHandler.Delete)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
