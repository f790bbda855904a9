// Package scoring implements the wellness scoring engine: a pure,
// deterministic function from a biometric snapshot to a composite 0-100
// score, a four-dimension breakdown, a risk tier, and recommendations.
//
// The engine is stateless and side-effect-free. Absent readings skip their
// contribution; no input ever produces an error.
package scoring

import (
	"math"

	"github.com/baikal/vitality/internal/model"
)

// Dimension weights for the composite score.
const (
	weightCardiovascular = 0.35
	weightMetabolic      = 0.25
	weightActivity       = 0.25
	weightLifestyle      = 0.15
)

// Compute scores a snapshot. Total function: every snapshot, including the
// empty one, yields a complete result.
//
// Pipeline: sub-scores → weighted sum (on unrounded sub-scores) →
// demographic adjustment → clamp+round → risk tier → recommendations
// (which consume the rounded breakdown).
func Compute(snap model.HealthSnapshot) model.ScoreResult {
	cardio := cardiovascularScore(snap)
	metabolic := metabolicScore(snap)
	activity := activityScore(snap)
	lifestyle := lifestyleScore(snap)

	weighted := cardio*weightCardiovascular +
		metabolic*weightMetabolic +
		activity*weightActivity +
		lifestyle*weightLifestyle

	weighted *= demographicMultiplier(snap)

	overall := int(math.Round(clamp(weighted)))

	breakdown := model.Breakdown{
		Cardiovascular: int(math.Round(cardio)),
		Metabolic:      int(math.Round(metabolic)),
		Activity:       int(math.Round(activity)),
		Lifestyle:      int(math.Round(lifestyle)),
	}

	return model.ScoreResult{
		Overall:         overall,
		Breakdown:       breakdown,
		RiskLevel:       RiskForScore(overall),
		Recommendations: recommendations(snap, breakdown),
	}
}

// demographicMultiplier scales the weighted aggregate by age band.
// No age reading means no adjustment.
func demographicMultiplier(snap model.HealthSnapshot) float64 {
	if snap.Age == nil {
		return 1.0
	}
	switch age := *snap.Age; {
	case age >= 65:
		return 0.85
	case age >= 50:
		return 0.90
	case age >= 30:
		return 0.95
	default:
		return 1.0
	}
}

// clamp bounds a score to [0,100].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
