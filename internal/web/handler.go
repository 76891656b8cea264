package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/errors"
)

// Predictor submits a record to the prediction service.
type Predictor interface {
	Predict(ctx context.Context, record *model.PatientRecord) (*model.PredictionResult, error)
}

type Handler struct {
	client Predictor
	apiURL string
}

func NewHandler(client Predictor, apiURL string) *Handler {
	return &Handler{
		client: client,
		apiURL: apiURL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Form)
	r.POST("/assess", h.Assess)
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}

func (h *Handler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page(DefaultValues()))
}

// Assess submits the form once and renders the outcome under the form. The
// submitted values are kept so the form can be sent again as is.
func (h *Handler) Assess(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	if err := c.Request.ParseForm(); err != nil {
		page := h.page(DefaultValues())
		page.Failure = NewFailure(errors.Unexpected(err))
		c.HTML(http.StatusOK, "index.html", page)
		return
	}

	values := DefaultValues()
	for name := range values {
		if v, ok := c.Request.PostForm[name]; ok && len(v) > 0 {
			values[name] = v[0]
		}
	}
	page := h.page(values)

	record, err := ParseForm(c.Request.PostForm)
	if err != nil {
		page.Failure = NewFailure(errors.Unexpected(err))
		c.HTML(http.StatusOK, "index.html", page)
		return
	}

	result, err := h.client.Predict(c.Request.Context(), record)
	if err != nil {
		logger.Warn().Err(err).Msg("assessment failed")
		page.Failure = NewFailure(err)
		c.HTML(http.StatusOK, "index.html", page)
		return
	}

	logger.Debug().
		Int("prediction", result.Prediction).
		Float64("probability_percent", result.ProbabilityPercent).
		Msg("assessment rendered")

	page.Assessment = NewAssessment(result)
	c.HTML(http.StatusOK, "index.html", page)
}

func (h *Handler) page(values map[string]string) *Page {
	return &Page{
		Sections: Sections,
		Values:   values,
		APIURL:   h.apiURL,
	}
}
