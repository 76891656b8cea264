package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/handler/health"
	predictionHandler "github.com/Yinka-911/cervical-cancer-classifier/internal/handler/prediction"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/inference"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/middleware"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/router"
	predictionService "github.com/Yinka-911/cervical-cancer-classifier/internal/service/prediction"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/metrics"
)

const (
	modelPath    = "../../models/cervical_cancer_model.json"
	manifestPath = "../../models/feature_columns.json"
)

// startService runs the prediction service on a real listener with the
// shipped model artifacts, wired the way cmd/api wires it.
func startService(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := inference.LoadModel(modelPath)
	require.NoError(t, err)
	manifest, err := inference.LoadManifest(manifestPath)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	mt := metrics.NewMetrics("cervix", reg)

	svc, err := predictionService.NewService(m, manifest, mt)
	require.NoError(t, err)

	r := router.NewRouter(
		predictionHandler.NewHandler(svc),
		health.NewHandler(svc, reg),
		mt,
		router.RouterConfig{
			CORSConfig: middleware.DefaultCORSConfig(),
			SizeLimit:  middleware.DefaultSizeLimitConfig(),
		},
	)
	r.Setup()

	srv := httptest.NewServer(r.Engine())
	t.Cleanup(srv.Close)
	return srv
}

// patient returns the form defaults with overrides applied.
func patient(overrides map[string]float64) map[string]float64 {
	values := make(map[string]float64, model.FieldCount)
	for _, name := range model.FieldNames() {
		values[name] = 0
	}
	values["Age"] = 30
	values["Number_of_sexual_partners"] = 1
	values["First_sexual_intercourse"] = 18
	for k, v := range overrides {
		values[k] = v
	}
	return values
}

type response struct {
	Status int
	Body   []byte
}

func (r response) decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), string(r.Body))
}

func makeRequest(t *testing.T, method, url string, body interface{}) response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		switch b := body.(type) {
		case []byte:
			reqBody = bytes.NewReader(b)
		default:
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{Status: resp.StatusCode, Body: data}
}
