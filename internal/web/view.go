package web

import (
	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
	"github.com/Yinka-911/cervical-cancer-classifier/internal/risk"
	"github.com/Yinka-911/cervical-cancer-classifier/pkg/errors"
)

// Banner styles.
const (
	StyleError   = "error"
	StyleWarning = "warning"
	StyleSuccess = "success"
)

// Assessment is what the page shows after a successful prediction.
type Assessment struct {
	Result          *model.PredictionResult
	Category        string
	CategoryStyle   string
	Headline        string
	HeadlineStyle   string
	Recommendations []string
	Tips            []string
	Resources       []risk.Resource
}

// NewAssessment derives the display from a service reply using the shared
// bucket table. Tips follow the classifier's risk_level, not the bucket.
func NewAssessment(res *model.PredictionResult) *Assessment {
	category := risk.Classify(res.ProbabilityPercent)

	a := &Assessment{
		Result:          res,
		Category:        category.Name,
		CategoryStyle:   categoryStyle(category),
		Recommendations: risk.Recommendations(category),
		Tips:            risk.Tips(res.RiskLevel),
		Resources:       risk.Resources(),
	}

	if category.Elevated() {
		a.Headline = "High Risk of Cervical Cancer"
		a.HeadlineStyle = StyleError
	} else {
		a.Headline = "Low Risk of Cervical Cancer"
		a.HeadlineStyle = StyleSuccess
	}
	return a
}

func categoryStyle(c risk.Category) string {
	switch {
	case c.Elevated():
		return StyleError
	case c.Name == risk.Moderate:
		return StyleWarning
	default:
		return StyleSuccess
	}
}

// Failure is what the page shows when a submission did not produce a result.
type Failure struct {
	Title    string
	Guidance []string
	Details  string
}

var connectionGuidance = []string{
	"The prediction API server is running",
	"You're using the correct API URL",
}

// NewFailure maps a submission error onto a banner. Transport problems get
// connection guidance; everything else is reported as unexpected.
func NewFailure(err error) *Failure {
	if errors.HasCode(err, errors.ErrTransport) {
		return &Failure{
			Title:    "Connection Error: Could not reach the prediction service",
			Guidance: connectionGuidance,
			Details:  err.Error(),
		}
	}
	return &Failure{
		Title: "An unexpected error occurred: " + errors.Cause(err).Error(),
	}
}

// Page is the template data for index.html.
type Page struct {
	Sections   []Section
	Values     map[string]string
	APIURL     string
	Assessment *Assessment
	Failure    *Failure
}
