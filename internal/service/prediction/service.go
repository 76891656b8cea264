package prediction

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/inference"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/risk"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/errors"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/metrics"
)

type PredictionService interface {
	Predict(ctx context.Context, record *model.PatientRecord) (*model.PredictionResult, error)
	Info() Info
}

// Info describes the loaded model for readiness reporting.
type Info struct {
	ModelType string `json:"model_type"`
	Features  int    `json:"features"`
}

// Service holds the model and manifest loaded at startup. Both are read-only,
// so a single Service is shared by all requests without locking.
type Service struct {
	model    inference.Model
	manifest *inference.Manifest
	metrics  *metrics.Metrics
}

// NewService checks that the manifest, the model and the PatientRecord agree
// on the feature set before anything is served.
func NewService(m inference.Model, manifest *inference.Manifest, mt *metrics.Metrics) (*Service, error) {
	if m == nil || manifest == nil {
		return nil, fmt.Errorf("model and manifest are required")
	}
	if mm := manifest.Compare(model.FieldNames()); !mm.Empty() {
		return nil, fmt.Errorf("feature manifest does not match patient record: %w", mm)
	}
	if m.Features() != manifest.Len() {
		return nil, fmt.Errorf("model expects %d features but manifest lists %d", m.Features(), manifest.Len())
	}
	return &Service{
		model:    m,
		manifest: manifest,
		metrics:  mt,
	}, nil
}

func (s *Service) Info() Info {
	return Info{
		ModelType: s.model.Type(),
		Features:  s.manifest.Len(),
	}
}

func (s *Service) Predict(ctx context.Context, record *model.PatientRecord) (*model.PredictionResult, error) {
	logger := zerolog.Ctx(ctx)

	if missing := record.Missing(); len(missing) > 0 {
		s.metrics.ObserveValidationFailure()
		return nil, errors.Validation("patient record is incomplete", fmt.Errorf("missing fields: %v", missing))
	}

	vector, err := s.manifest.Vector(record.Values())
	if err != nil {
		s.metrics.ObserveValidationFailure()
		return nil, errors.Validation("patient record does not match the model features", err)
	}

	start := time.Now()
	label, score, err := s.invoke(vector)
	s.metrics.ObserveInference(time.Since(start))
	if err != nil {
		s.metrics.ObservePredictionFailure()
		logger.Warn().Err(err).Str("model_type", s.model.Type()).Msg("model invocation failed")
		return nil, errors.Inference(err)
	}

	percent := risk.Percent(score)
	result := &model.PredictionResult{
		Prediction:         label,
		RiskLevel:          risk.Level(label),
		ProbabilityPercent: percent,
		Interpretation:     risk.Interpret(percent),
	}
	s.metrics.ObservePrediction(result.RiskLevel, result.Interpretation, percent)

	logger.Debug().
		Int("prediction", result.Prediction).
		Float64("probability_percent", result.ProbabilityPercent).
		Str("interpretation", result.Interpretation).
		Msg("prediction computed")

	return result, nil
}

// invoke calls the model and turns panics and out-of-contract outputs into errors.
func (s *Service) invoke(vector []float64) (label int, score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	label, err = s.model.Classify(vector)
	if err != nil {
		return 0, 0, err
	}
	if label != 0 && label != 1 {
		return 0, 0, fmt.Errorf("model returned class %d, expected 0 or 1", label)
	}

	score, err = s.model.Score(vector)
	if err != nil {
		return 0, 0, err
	}
	if math.IsNaN(score) || score < 0 || score > 1 {
		return 0, 0, fmt.Errorf("model returned probability %v outside [0, 1]", score)
	}
	return label, score, nil
}
