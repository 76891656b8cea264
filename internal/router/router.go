package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/middleware"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine      *gin.Engine
	predictionH Handler
	healthH     Handler
	metrics     *metrics.Metrics
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        rate.Limit
	RateBurst        int
	CORSConfig       middleware.CORSConfig
	SizeLimit        middleware.SizeLimitConfig
}

func NewRouter(
	predictionH Handler,
	healthH Handler,
	mt *metrics.Metrics,
	config RouterConfig,
) *Router {
	engine := gin.New()

	r := &Router{
		engine:      engine,
		predictionH: predictionH,
		healthH:     healthH,
		metrics:     mt,
	}

	// Post-processing runs in reverse: Validation renders 422s before
	// ErrorHandler looks at what is left, and Logger sees the final status.
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		r.metricsMiddleware(),
		middleware.ErrorHandler(),
		middleware.Validation(),
	)

	engine.Use(middleware.CORS(config.CORSConfig))
	engine.Use(middleware.SizeLimit(config.SizeLimit))

	if config.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  config.RateLimit,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	r.healthH.RegisterRoutes(root)
	r.predictionH.RegisterRoutes(root)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		r.metrics.ObserveRequest(c.Request.Method, path, strconv.Itoa(status), time.Since(start), status >= 400)
	}
}
