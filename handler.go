package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aiprdesign/fitness-plan-ai/internal/session"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	store session.Store
	now   func() time.Time // overridable for tests
}

func newHandler(store session.Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestLogger logs one line per request through zerolog instead of gin's
// default text logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		evt := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			evt = log.Error()
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/api/health", h.getHealth)
	router.GET("/api/options", h.getOptions)
	router.POST("/api/metrics", h.postMetrics)
	router.POST("/api/report", h.postReport)
	router.GET("/api/plans/diet/:preference", h.getDietPlan)
	router.GET("/api/plans/workout/:goal", h.getWorkoutPlan)
	router.GET("/api/plans/meditation", h.getMeditationPlan)
	router.POST("/api/sessions", h.createSession)

	// Session routes
	api := router.Group("/api", h.sessionMiddleware())
	api.GET("/session", h.getSession)
	api.DELETE("/session", h.endSession)
	api.PUT("/session/profile", h.putSessionProfile)
	api.GET("/session/report", h.getSessionReport)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.logWeight)
}

func (h *Handler) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
