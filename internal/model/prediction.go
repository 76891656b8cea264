package model

// Risk levels derived from the binary classification.
const (
	RiskLevelLow  = "Low"
	RiskLevelHigh = "High"
)

// PredictionResult is the service's answer for one patient record.
type PredictionResult struct {
	Prediction         int     `json:"prediction"`
	RiskLevel          string  `json:"risk_level"`
	ProbabilityPercent float64 `json:"probability_percent"`
	Interpretation     string  `json:"interpretation"`
}

// ErrorDetail is the body of a 400 reply.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// FieldError locates one rejected input field.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationDetail is the body of a 422 reply.
type ValidationDetail struct {
	Detail []FieldError `json:"detail"`
}
