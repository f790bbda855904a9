package scoring

import "github.com/baikal/vitality/internal/model"

// RiskForScore maps a rounded overall score to its risk tier.
// Total function: any integer, including out-of-range values, maps to a tier.
func RiskForScore(overall int) model.RiskLevel {
	switch {
	case overall >= 85:
		return model.RiskLow
	case overall >= 70:
		return model.RiskModerate
	case overall >= 50:
		return model.RiskHigh
	default:
		return model.RiskVeryHigh
	}
}
