package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/service/prediction"
)

type Handler struct {
	service  prediction.PredictionService
	gatherer prometheus.Gatherer
}

// NewHandler wires the probes. A nil gatherer leaves /metrics unregistered.
func NewHandler(service prediction.PredictionService, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		service:  service,
		gatherer: gatherer,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
	if h.gatherer != nil {
		r.GET("/metrics", h.MetricsHandler())
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// ReadinessCheck reports the loaded model. The service only exists once the
// model and manifest passed the startup checks, so a nil service is DOWN.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "Model not loaded",
		})
		return
	}

	info := h.service.Info()
	c.JSON(http.StatusOK, gin.H{
		"status":     "UP",
		"model_type": info.ModelType,
		"features":   info.Features,
	})
}

func (h *Handler) MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}
