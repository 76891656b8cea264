package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
)

func TestInterpretBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "Very low risk"},
		{15, "Very low risk"},
		{19.99, "Very low risk"},
		{20, "Low risk"},
		{39.99, "Low risk"},
		{40, "Moderate risk"},
		{50, "Moderate risk"},
		{59.99, "Moderate risk"},
		{60, "High risk"},
		{79.99, "High risk"},
		{80, "Very high risk"},
		{100, "Very high risk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.percent), "percent %v", tt.percent)
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	assert.Equal(t, VeryLow, Classify(-5).Name)
	assert.Equal(t, VeryHigh, Classify(100).Name)
	assert.Equal(t, VeryHigh, Classify(140).Name)
}

func TestCategoriesAreContiguous(t *testing.T) {
	assert.Equal(t, 0.0, Categories[0].Lower)
	assert.Equal(t, 100.0, Categories[len(Categories)-1].Upper)
	for i := 1; i < len(Categories); i++ {
		assert.Equal(t, Categories[i-1].Upper, Categories[i].Lower)
	}
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 15.0, Percent(0.15))
	assert.Equal(t, 50.0, Percent(0.5))
	assert.Equal(t, 80.0, Percent(0.8))
	assert.Equal(t, 12.35, Percent(0.123456))
	assert.Equal(t, 0.0, Percent(0))
	assert.Equal(t, 100.0, Percent(1))
}

func TestLevelFollowsPredictionOnly(t *testing.T) {
	assert.Equal(t, model.RiskLevelHigh, Level(1))
	assert.Equal(t, model.RiskLevelLow, Level(0))

	// prediction=1 at 55% keeps both answers rather than reconciling them.
	assert.Equal(t, "Moderate risk", Interpret(55))
	assert.Equal(t, model.RiskLevelHigh, Level(1))
	assert.Equal(t, model.RiskLevelLow, Level(0))
	assert.Equal(t, "Very high risk", Interpret(92))
}

func TestRecommendationsAndTips(t *testing.T) {
	assert.Contains(t, Recommendations(Classify(85))[0], "urgent consultation")
	assert.Contains(t, Recommendations(Classify(65))[0], "urgent consultation")
	assert.Contains(t, Recommendations(Classify(45))[0], "regular screenings")

	assert.Len(t, Tips(model.RiskLevelHigh), 4)
	assert.Contains(t, Tips(model.RiskLevelLow)[0], "Pap smears")
	assert.Len(t, Resources(), 3)
}
