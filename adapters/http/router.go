package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/metrics"
)

func NewRouter(resumeHandler *ResumeHandler, collector *metrics.Collector, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(log), Metrics(collector), Recovery(log), ErrorMiddleware(log))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Envelope{Success: false, Error: "Route not found"})
	})

	router.GET("/metrics", gin.WrapH(collector.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", resumeHandler.Health)

		resumes := api.Group("/resumes")
		{
			resumes.POST("", resumeHandler.CreateResume)
			resumes.GET("", resumeHandler.ListResumes)
			resumes.GET("/:id", resumeHandler.GetResume)
			resumes.PUT("/:id", resumeHandler.UpdateResume)
			resumes.DELETE("/:id", resumeHandler.DeleteResume)
		}
	}

	return router
}
