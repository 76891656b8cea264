package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/client"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/web"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/errors"
)

func TestPredictWithShippedModel(t *testing.T) {
	srv := startService(t)

	tests := []struct {
		name           string
		overrides      map[string]float64
		prediction     int
		riskLevel      string
		percent        float64
		interpretation string
	}{
		{"form defaults", nil, 0, "Low", 1.94, "Very low risk"},
		{"positive Hinselmann and Schiller", map[string]float64{"Hinselmann": 1, "Schiller": 1}, 1, "High", 72.3, "High risk"},
		{"positive tests and diagnoses", map[string]float64{
			"Hinselmann": 1, "Schiller": 1, "Citology": 1, "Dx_HPV": 1, "Dx_CIN": 1,
		}, 1, "High", 96.64, "Very high risk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeRequest(t, http.MethodPost, srv.URL+"/predict", patient(tt.overrides))
			require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

			var result model.PredictionResult
			resp.decode(t, &result)
			assert.Equal(t, tt.prediction, result.Prediction)
			assert.Equal(t, tt.riskLevel, result.RiskLevel)
			assert.InDelta(t, tt.percent, result.ProbabilityPercent, 0.001)
			assert.Equal(t, tt.interpretation, result.Interpretation)
		})
	}
}

func TestIntegerValuesAccepted(t *testing.T) {
	srv := startService(t)

	body := []byte(`{` + strings.Join(func() []string {
		parts := make([]string, 0, model.FieldCount)
		for _, name := range model.FieldNames() {
			parts = append(parts, `"`+name+`": 0`)
		}
		return parts
	}(), ", ") + `}`)

	resp := makeRequest(t, http.MethodPost, srv.URL+"/predict", body)
	assert.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
}

func TestMissingFieldRejected(t *testing.T) {
	srv := startService(t)

	values := patient(nil)
	delete(values, "Citology")

	resp := makeRequest(t, http.MethodPost, srv.URL+"/predict", values)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Status)

	var detail model.ValidationDetail
	resp.decode(t, &detail)
	require.Len(t, detail.Detail, 1)
	assert.Equal(t, []string{"body", "Citology"}, detail.Detail[0].Loc)
}

func TestClientAgainstService(t *testing.T) {
	srv := startService(t)
	c := client.New(client.Config{BaseURL: srv.URL + "/predict", Timeout: 5 * time.Second})

	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "logistic_regression", status.ModelType)
	assert.Equal(t, model.FieldCount, status.Features)

	record, err := model.NewPatientRecord(patient(map[string]float64{"Schiller": 1}))
	require.NoError(t, err)
	res, err := c.Predict(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, "Low risk", res.Interpretation)

	_, err = c.Predict(context.Background(), &model.PatientRecord{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrTransport))
	assert.Contains(t, err.Error(), "status 422")
}

func TestWebFormAgainstService(t *testing.T) {
	srv := startService(t)
	c := client.New(client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	form := web.NewRouter(web.NewHandler(c, c.PredictURL()))

	values := url.Values{}
	for name, v := range web.DefaultValues() {
		values.Set(name, v)
	}
	values.Set("Hinselmann", "1")
	values.Set("Schiller", "1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/assess", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Risk Category: High")
	assert.Contains(t, body, "High Risk of Cervical Cancer")
	assert.Contains(t, body, "Schedule an urgent consultation")
}

func TestWebFormServiceDown(t *testing.T) {
	srv := startService(t)
	c := client.New(client.Config{BaseURL: srv.URL, Timeout: time.Second})
	srv.Close()

	form := web.NewRouter(web.NewHandler(c, c.PredictURL()))
	values := url.Values{}
	for name, v := range web.DefaultValues() {
		values.Set(name, v)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/assess", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Connection Error: Could not reach the prediction service")
}
