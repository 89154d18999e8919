package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"studentportal/internal/httpmiddleware"
)

// RouterOptions carries what the router needs besides the handler.
type RouterOptions struct {
	Logger          *zap.Logger
	Registerer      prometheus.Registerer
	Gatherer        prometheus.Gatherer
	RateLimitPerMin int
}

// NewRouter wires middleware and routes.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestID())
	r.Use(httpmiddleware.Logger(opts.Logger, "/healthz", "/metrics"))
	r.Use(httpmiddleware.NewRequestMetrics(opts.Registerer).GinMiddleware())
	r.Use(httpmiddleware.CORS())
	r.Use(httpmiddleware.SecurityHeaders())
	r.Use(httpmiddleware.NewTokenBucket(opts.RateLimitPerMin, opts.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/attendance/summary", h.AttendanceSummary)
	v1.GET("/attendance/thresholds", h.Thresholds)
	v1.POST("/attendance/sessions/new", h.NewSession)
	v1.POST("/hours/cumulative", h.CumulativeHours)
	v1.GET("/progress", h.Progress)
	v1.GET("/status/:domain/:code", h.Status)
	v1.POST("/status/:domain/filter", h.FilterStatus)
	v1.POST("/courses/summary", h.CourseSummary)
	v1.POST("/dashboard", h.Dashboard)
	v1.GET("/avatar-color", h.AvatarColor)

	return r
}
