package model

// RiskLevel is the discrete risk tier derived from the rounded overall score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very-high"
)

// Breakdown holds the four rounded dimension scores, each in [0,100].
type Breakdown struct {
	Cardiovascular int `json:"cardiovascular"`
	Metabolic      int `json:"metabolic"`
	Activity       int `json:"activity"`
	Lifestyle      int `json:"lifestyle"`
}

// ScoreResult is the complete output of one scoring run.
// Created fresh per invocation; nothing persists between calls.
type ScoreResult struct {
	Overall         int       `json:"overall"`
	Breakdown       Breakdown `json:"breakdown"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
}
