package http

import (
	"github.com/gin-gonic/gin"

	"grievance/internal/infrastructure/ratelimit"
	"grievance/internal/interfaces/http/middleware"
	"grievance/internal/shared/authorization"
)

// Limits applied to credential-guessing surfaces.
var authLimit = ratelimit.Limit{
	RequestsPerMinute: 10,
	RequestsPerHour:   100,
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.Check)

	api := r.engine.Group("/api")

	r.setupAuthRoutes(api)
	r.setupConcernRoutes(api)
	r.setupCategoryRoutes(api)
	r.setupUserRoutes(api)
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	authLimiter := middleware.RateLimit(r.rateLimiter, authLimit, r.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authLimiter, r.authHandler.Register)
		auth.POST("/login", authLimiter, r.authHandler.Login)
		auth.POST("/verify-email", r.authMiddleware.RequireAuth(), r.authHandler.VerifyEmail)
		auth.POST("/send-verification-code", authLimiter, r.authMiddleware.RequireAuth(), r.authHandler.SendVerificationCode)

		auth.GET("/google", r.authHandler.GoogleLogin)
		auth.GET("/google/callback", r.authHandler.GoogleCallback)
		auth.POST("/google/complete", authLimiter, r.authHandler.CompleteGoogleRegistration)

		auth.GET("/verify", r.authMiddleware.RequireAuth(), r.authHandler.VerifyToken)
	}
}

func (r *Router) setupConcernRoutes(api *gin.RouterGroup) {
	concerns := api.Group("/concerns")
	concerns.Use(r.authMiddleware.RequireAuth())
	{
		concerns.POST("", r.concernHandler.CreateConcern)
		concerns.GET("", r.concernHandler.ListConcerns)

		// Specific paths before parameterized ones to avoid route conflicts.
		concerns.GET("/statistics", authorization.RequireAdmin(), r.concernHandler.GetStatistics)

		concerns.PATCH("/:id/status", authorization.RequireAdmin(), r.concernHandler.UpdateStatus)
		concerns.PATCH("/:id/priority", authorization.RequireAdmin(), r.concernHandler.UpdatePriority)
		concerns.PATCH("/:id/assign", authorization.RequireAdmin(), r.concernHandler.AssignOffice)
		concerns.PATCH("/:id/resolve", authorization.RequireAdmin(), r.concernHandler.ResolveConcern)

		concerns.POST("/:id/comments", r.concernHandler.AddComment)
		concerns.GET("/:id/comments", r.concernHandler.GetComments)
		concerns.GET("/:id/history", r.concernHandler.GetHistory)

		concerns.GET("/:id", r.concernHandler.GetConcern)
	}
}

func (r *Router) setupCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryHandler.ListCategories)
		categories.POST("", r.authMiddleware.RequireAuth(), authorization.RequireAdmin(), r.categoryHandler.CreateCategory)
		categories.PUT("/:id", r.authMiddleware.RequireAuth(), authorization.RequireAdmin(), r.categoryHandler.UpdateCategory)
		categories.DELETE("/:id", r.authMiddleware.RequireAuth(), authorization.RequireAdmin(), r.categoryHandler.DeleteCategory)
	}

	api.GET("/offices", r.categoryHandler.ListOffices)
}

func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("/profile", r.userHandler.GetProfile)
		users.PUT("/profile", r.userHandler.UpdateProfile)

		users.GET("/notifications", r.notificationHandler.ListNotifications)
		users.PATCH("/notifications/read-all", r.notificationHandler.MarkAllRead)
		users.PATCH("/notifications/:id/read", r.notificationHandler.MarkRead)

		users.GET("", authorization.RequireAdmin(), r.userHandler.ListUsers)
		users.GET("/students", authorization.RequireAdmin(), r.userHandler.ListStudents)
		users.GET("/admins", authorization.RequireAdmin(), r.userHandler.ListAdmins)
		users.PUT("/:id", authorization.RequireAdmin(), r.userHandler.UpdateUser)
		users.DELETE("/:id", authorization.RequireAdmin(), r.userHandler.DeleteUser)
	}
}
