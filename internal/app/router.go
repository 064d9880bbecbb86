package app

import (
	"stepup_backend/docs"
	"stepup_backend/internal/config"
	"stepup_backend/internal/middleware"
	"stepup_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// Track catalog and gallery are readable without an account.
		public.GET("/tracks", c.track.List)
		public.GET("/tracks/:id", c.track.Get)
		public.GET("/gallery", c.gallery.List)
		public.GET("/leaderboard", c.leaderboard.Top)

		// Cron endpoints carry their own bearer secret, not a JWT.
		public.POST("/nudges/send", c.nudge.Send)
		public.GET("/nudges/send", c.nudge.Send)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.Profile)
	rg.POST("/onboarding", c.user.Onboard)
	rg.PUT("/profile/track", c.user.ChangeTrack)

	rg.GET("/dashboard", c.dashboard.Overview)

	rg.GET("/progress", c.progress.Get)
	rg.POST("/progress/topics/:topicId", c.progress.Complete)
	rg.DELETE("/progress/topics/:topicId", c.progress.Uncomplete)

	rg.GET("/projects", c.project.List)
	rg.POST("/projects", c.project.Append)
	rg.PATCH("/projects/:id", c.project.Update)
	rg.DELETE("/projects/:id", c.project.Delete)

	rg.GET("/gallery/mine", c.gallery.Mine)
	rg.POST("/gallery", c.gallery.Create)
	rg.PATCH("/gallery/:id", c.gallery.Update)
	rg.DELETE("/gallery/:id", c.gallery.Delete)
}
