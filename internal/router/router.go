package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ziebelle/move37/internal/handler"
	"github.com/ziebelle/move37/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	manualH *handler.ManualHandler,
	qaH *handler.QAHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Manual routes
	manuals := v1.Group("/manuals")
	manuals.GET("", manualH.List)
	manuals.GET("/:id", manualH.GetByID)
	manuals.POST("", manualH.Ingest)
	manuals.DELETE("/:id", manualH.Delete)

	// Question answering
	v1.POST("/qa", qaH.Answer)

	return r
}
