package scoring

import (
	"math"

	"github.com/baikal/vitality/internal/model"
)

// metabolicScore scores body composition. Starts at 100.
//
// Two independent adjustments, both may fire on the same snapshot:
// a BMI bucket (given BMI, or derived from weight and height when BMI is
// absent) and an ideal-weight deviation (Broca index, sex-adjusted).
func metabolicScore(snap model.HealthSnapshot) float64 {
	score := 100.0

	if bmi := snap.EffectiveBMI(); bmi != nil {
		score += bmiAdjustment(*bmi)
	}

	if snap.Weight != nil && snap.Height != nil && snap.Age != nil && snap.BiologicalSex != nil {
		factor := 0.85
		if *snap.BiologicalSex == model.SexMale {
			factor = 0.9
		}
		ideal := (*snap.Height/100 - 1) * 100 * factor
		if ideal > 0 {
			relDiff := math.Abs(*snap.Weight-ideal) / ideal
			if relDiff > 0.3 {
				score -= 20
			} else if relDiff > 0.15 {
				score -= 10
			}
		}
	}

	return clamp(score)
}

// bmiAdjustment maps a BMI value to its score delta: underweight and
// overweight deduct, the healthy 18.5-24.9 band awards a bonus.
func bmiAdjustment(bmi float64) float64 {
	switch {
	case bmi < 18.5:
		return -15
	case bmi >= 30:
		return -30
	case bmi >= 25:
		return -15
	default:
		return 10
	}
}
