package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)

		public.GET("/quizzes/course/:courseId", c.quiz.ListForCourse)
		public.GET("/quizzes/:id", c.quiz.Get)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		authGroup.POST("/profile", c.profile.Create)
		authGroup.GET("/profile", c.profile.Get)
		authGroup.PUT("/profile", c.profile.Update)
		authGroup.POST("/profile/picture", c.profile.UploadPicture)

		authGroup.POST("/enrollments", c.enrollment.Enroll)
		authGroup.GET("/enrollments", c.enrollment.List)
		authGroup.GET("/enrollments/:courseId/status", c.enrollment.Status)

		// Static path registered alongside /quizzes/:id; gin prefers it.
		authGroup.GET("/quizzes/results", c.quiz.MyResults)
		authGroup.POST("/quizzes/:id/attempt", c.quiz.SubmitAttempt)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
