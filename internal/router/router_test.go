package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healthhandler "github.com/Yinka-911/cervical-cancer-classifier/internal/handler/health"
	predictionhandler "github.com/Yinka-911/cervical-cancer-classifier/internal/handler/prediction"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/inference"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/middleware"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/service/prediction"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/metrics"
)

type fakeModel struct {
	label int
	score float64
	err   error
}

func (f *fakeModel) Classify([]float64) (int, error) {
	return f.label, f.err
}

func (f *fakeModel) Score([]float64) (float64, error) {
	return f.score, f.err
}

func (f *fakeModel) Features() int {
	return model.FieldCount
}

func (f *fakeModel) Type() string {
	return "fake"
}

func setupRouter(t *testing.T, m inference.Model) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manifest, err := inference.NewManifest(model.FieldNames())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	mt := metrics.NewMetrics("cervix", reg)

	svc, err := prediction.NewService(m, manifest, mt)
	require.NoError(t, err)

	r := NewRouter(
		predictionhandler.NewHandler(svc),
		healthhandler.NewHandler(svc, reg),
		mt,
		RouterConfig{
			CORSConfig: middleware.DefaultCORSConfig(),
			SizeLimit:  middleware.DefaultSizeLimitConfig(),
		},
	)
	r.Setup()
	return r.Engine()
}

func patientBody(t *testing.T, overrides map[string]interface{}, drop ...string) []byte {
	t.Helper()
	body := map[string]interface{}{}
	for _, name := range model.FieldNames() {
		body[name] = 0
	}
	body["Age"] = 35
	body["Number_of_sexual_partners"] = 2
	body["First_sexual_intercourse"] = 17
	for k, v := range overrides {
		body[k] = v
	}
	for _, k := range drop {
		delete(body, k)
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return payload
}

func post(router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPredictSuccess(t *testing.T) {
	tests := []struct {
		name  string
		label int
		score float64
		want  string
	}{
		{"very low", 0, 0.15, `{"prediction":0,"risk_level":"Low","probability_percent":15,"interpretation":"Very low risk"}`},
		{"moderate", 0, 0.5, `{"prediction":0,"risk_level":"Low","probability_percent":50,"interpretation":"Moderate risk"}`},
		{"very high", 1, 0.8, `{"prediction":1,"risk_level":"High","probability_percent":80,"interpretation":"Very high risk"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t, &fakeModel{label: tt.label, score: tt.score})

			w := post(router, patientBody(t, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderXRequestID))
		})
	}
}

func TestPredictEchoesRequestID(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/predict", bytes.NewReader(patientBody(t, nil)))
	req.Header.Set(middleware.HeaderXRequestID, "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderXRequestID))
}

func TestPredictMissingFieldIs422(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := post(router, patientBody(t, nil, "Age"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp model.ValidationDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Detail, 1)
	assert.Equal(t, []string{"body", "Age"}, resp.Detail[0].Loc)
	assert.Equal(t, "missing", resp.Detail[0].Type)
}

func TestPredictZeroIsNotMissing(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := post(router, patientBody(t, map[string]interface{}{"Age": 0}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPredictNonNumericIs422(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := post(router, patientBody(t, map[string]interface{}{"Smokes": "yes"}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"Smokes"`)
}

func TestPredictMalformedJSONIs422(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := post(router, []byte(`{"Age": 35,`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "json_invalid")
}

func TestPredictIgnoresUnknownKeys(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.25})

	w := post(router, patientBody(t, map[string]interface{}{"Favourite_colour": 3}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"interpretation":"Low risk"`)
}

func TestPredictModelFailureIs400ThenRecovers(t *testing.T) {
	fake := &fakeModel{err: fmt.Errorf("X has 29 features, but model expects 30")}
	router := setupRouter(t, fake)

	w := post(router, patientBody(t, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Prediction failed: X has 29 features, but model expects 30"}`, w.Body.String())

	fake.err = nil
	fake.score = 0.65
	fake.label = 1
	w = post(router, patientBody(t, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"interpretation":"High risk"`)
}

func TestPredictOversizedBodyIs413(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	padding := strings.Repeat("x", 70<<10)
	w := post(router, patientBody(t, map[string]interface{}{"padding": padding}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestPredictWrongMethodIsNotFound(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/predict", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter(t, &fakeModel{score: 0.1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health/live", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","model_type":"fake","features":30}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t, &fakeModel{label: 1, score: 0.9})

	require.Equal(t, http.StatusOK, post(router, patientBody(t, nil)).Code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cervix_predictions_total{interpretation="Very high risk",risk_level="High"} 1`)
	assert.Contains(t, w.Body.String(), `cervix_requests_total{method="POST",path="/predict",status="200"} 1`)
}
