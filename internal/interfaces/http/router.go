package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	categoryUC "grievance/internal/application/category/usecases"
	concernUC "grievance/internal/application/concern/usecases"
	notificationUC "grievance/internal/application/notification/usecases"
	userUC "grievance/internal/application/user/usecases"
	"grievance/internal/infrastructure/auth"
	"grievance/internal/infrastructure/config"
	"grievance/internal/infrastructure/email"
	"grievance/internal/infrastructure/ratelimit"
	"grievance/internal/infrastructure/repository"
	"grievance/internal/infrastructure/token"
	"grievance/internal/interfaces/http/handlers"
	concernhandlers "grievance/internal/interfaces/http/handlers/concern"
	"grievance/internal/interfaces/http/middleware"
	"grievance/internal/shared/db"
	"grievance/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers onto a Gin engine.
type Router struct {
	engine              *gin.Engine
	cfg                 *config.Config
	healthHandler       *handlers.HealthHandler
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	notificationHandler *handlers.NotificationHandler
	categoryHandler     *handlers.CategoryHandler
	concernHandler      *concernhandlers.ConcernHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         ratelimit.RateLimiter
	logger              logger.Interface
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	concernRepo := repository.NewConcernRepository(database)
	historyRepo := repository.NewStatusHistoryRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	officeRepo := repository.NewOfficeRepository(database)

	tm := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	codeGenerator := token.NewVerificationCodeGenerator()
	emailService := email.NewSMTPEmailService(cfg.Email, log)
	googleClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)
	codeTTL := time.Duration(cfg.Auth.Verification.CodeExpiresMinutes) * time.Minute

	registerUC := userUC.NewRegisterUseCase(userRepo, hasher, jwtService, codeGenerator, emailService, codeTTL, log)
	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	verifyEmailUC := userUC.NewVerifyEmailUseCase(userRepo, log)
	resendCodeUC := userUC.NewResendCodeUseCase(userRepo, codeGenerator, emailService, codeTTL, log)
	googleLoginUC := userUC.NewInitiateGoogleLoginUseCase(googleClient, log)
	googleCallbackUC := userUC.NewHandleGoogleCallbackUseCase(userRepo, googleClient, jwtService, log)
	googleCompleteUC := userUC.NewCompleteGoogleRegistrationUseCase(userRepo, jwtService, log)
	getProfileUC := userUC.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := userUC.NewUpdateProfileUseCase(userRepo, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	updateUserUC := userUC.NewUpdateUserUseCase(userRepo, log)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, log)

	notifier := concernUC.NewLifecycleNotifier(notificationRepo, userRepo, emailService, log)

	createConcernUC := concernUC.NewCreateConcernUseCase(concernRepo, historyRepo, categoryRepo, notifier, tm, log)
	getConcernUC := concernUC.NewGetConcernUseCase(concernRepo, log)
	listConcernsUC := concernUC.NewListConcernsUseCase(concernRepo, log)
	updateStatusUC := concernUC.NewUpdateStatusUseCase(concernRepo, historyRepo, notifier, tm, log)
	updatePriorityUC := concernUC.NewUpdatePriorityUseCase(concernRepo, log)
	assignOfficeUC := concernUC.NewAssignOfficeUseCase(concernRepo, officeRepo, notifier, tm, log)
	resolveConcernUC := concernUC.NewResolveConcernUseCase(concernRepo, historyRepo, notifier, tm, log, cfg.Concern.RecordActualPriorStatus)
	addCommentUC := concernUC.NewAddCommentUseCase(concernRepo, commentRepo, notifier, tm, log)
	getCommentsUC := concernUC.NewGetCommentsUseCase(concernRepo, commentRepo, log)
	getHistoryUC := concernUC.NewGetHistoryUseCase(concernRepo, historyRepo, log)
	getStatisticsUC := concernUC.NewGetStatisticsUseCase(concernRepo, log)

	listNotificationsUC := notificationUC.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationUC.NewMarkReadUseCase(notificationRepo, log)
	markAllReadUC := notificationUC.NewMarkAllReadUseCase(notificationRepo, log)

	listCategoriesUC := categoryUC.NewListCategoriesUseCase(categoryRepo, log)
	createCategoryUC := categoryUC.NewCreateCategoryUseCase(categoryRepo, log)
	updateCategoryUC := categoryUC.NewUpdateCategoryUseCase(categoryRepo, log)
	deleteCategoryUC := categoryUC.NewDeleteCategoryUseCase(categoryRepo, concernRepo, log)
	listOfficesUC := categoryUC.NewListOfficesUseCase(officeRepo, log)

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	return &Router{
		engine:        engine,
		cfg:           cfg,
		healthHandler: handlers.NewHealthHandler(database),
		authHandler: handlers.NewAuthHandler(
			registerUC, loginUC, verifyEmailUC, resendCodeUC,
			googleLoginUC, googleCallbackUC, googleCompleteUC, getProfileUC,
		),
		userHandler: handlers.NewUserHandler(
			getProfileUC, updateProfileUC, listUsersUC, updateUserUC, deleteUserUC,
		),
		notificationHandler: handlers.NewNotificationHandler(
			listNotificationsUC, markReadUC, markAllReadUC,
		),
		categoryHandler: handlers.NewCategoryHandler(
			listCategoriesUC, createCategoryUC, updateCategoryUC, deleteCategoryUC, listOfficesUC,
		),
		concernHandler: concernhandlers.NewConcernHandler(
			createConcernUC, getConcernUC, listConcernsUC, updateStatusUC,
			updatePriorityUC, assignOfficeUC, resolveConcernUC, addCommentUC,
			getCommentsUC, getHistoryUC, getStatisticsUC, cfg.Server.UploadDir,
		),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:    limiter,
		logger:         log,
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
