package prediction

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/service/prediction"
)

type Handler struct {
	service prediction.PredictionService
}

func NewHandler(service prediction.PredictionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
}

// Predict scores one patient record. Binding failures are left to the
// validation middleware and service failures to the error handler.
func (h *Handler) Predict(c *gin.Context) {
	var record model.PatientRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	result, err := h.service.Predict(c.Request.Context(), &record)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
