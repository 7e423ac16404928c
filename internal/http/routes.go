package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.RateLimit("signup"), h.Register)
		auth.POST("/verify-email", h.VerifyEmail)
		auth.POST("/login", h.RateLimit("login"), h.Login)
		auth.POST("/forgot-password", h.RateLimit("forgot"), h.ForgotPassword)
		auth.POST("/reset-password/:token", h.ResetPassword)

		auth.GET("/check-auth", h.ProtectRoute(), h.CheckAuth)
		auth.PUT("/update-user", h.ProtectRoute(), h.UpdateUser)
		auth.POST("/logout", h.ProtectRoute(), h.Logout)
	}

	jobs := r.Group("/api/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("", h.ProtectRoute(), h.CreateJob)
		jobs.PUT("/:id", h.ProtectRoute(), h.UpdateJob)
		jobs.DELETE("/:id", h.ProtectRoute(), h.DeleteJob)
	}
	r.GET("/api/employer/:id/jobs", h.EmployerJobs)

	company := r.Group("/api/company")
	{
		company.GET("", h.ListCompanies)
		company.POST("", h.ProtectRoute(), h.CreateCompany)
	}

	application := r.Group("/api/application", h.ProtectRoute())
	{
		application.POST("", h.CreateApplication)
		application.GET("/job/:jobId", h.JobApplications)
		application.GET("/me", h.MyApplications)
		application.PATCH("/:id/status", h.UpdateApplicationStatus)
	}

	saved := r.Group("/api/saved-jobs", h.ProtectRoute())
	{
		saved.POST("", h.SaveJob)
		saved.GET("", h.SavedJobs)
		saved.DELETE("/:id", h.DeleteSavedJob)
	}

	return r
}
