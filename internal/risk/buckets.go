// Package risk holds the probability-to-category table shared by the
// inference service and every client. It is the only place bucket
// boundaries are defined.
package risk

import (
	"math"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
)

// Category is one probability bucket.
type Category struct {
	Name  string  // client-facing label, e.g. "Moderate"
	Lower float64 // inclusive
	Upper float64 // exclusive, except for the last bucket
}

// Interpretation is the service-facing text for the bucket.
func (c Category) Interpretation() string {
	return c.Name + " risk"
}

// Elevated reports whether the bucket warrants the high-risk advisory.
func (c Category) Elevated() bool {
	return c.Name == High || c.Name == VeryHigh
}

// Category names, ascending.
const (
	VeryLow  = "Very low"
	Low      = "Low"
	Moderate = "Moderate"
	High     = "High"
	VeryHigh = "Very high"
)

// Categories are evaluated in order; first match wins.
var Categories = []Category{
	{Name: VeryLow, Lower: 0, Upper: 20},
	{Name: Low, Lower: 20, Upper: 40},
	{Name: Moderate, Lower: 40, Upper: 60},
	{Name: High, Lower: 60, Upper: 80},
	{Name: VeryHigh, Lower: 80, Upper: 100},
}

// Classify returns the bucket for a probability percentage. Values below the
// first bucket fall into it and values at or above 100 fall into the last.
func Classify(percent float64) Category {
	for _, c := range Categories {
		if percent >= c.Lower && percent < c.Upper {
			return c
		}
	}
	if percent >= Categories[len(Categories)-1].Upper {
		return Categories[len(Categories)-1]
	}
	return Categories[0]
}

// Interpret returns the service interpretation text for a percentage.
func Interpret(percent float64) string {
	return Classify(percent).Interpretation()
}

// Percent converts a model score in [0,1] to a percentage rounded to two decimals.
func Percent(score float64) float64 {
	return math.Round(score*100*100) / 100
}

// Level derives the binary risk level from the classifier label. It does not
// look at the probability, so it can disagree with the bucket near boundaries.
func Level(prediction int) string {
	if prediction == 1 {
		return model.RiskLevelHigh
	}
	return model.RiskLevelLow
}
