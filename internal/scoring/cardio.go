package scoring

import (
	"math"

	"github.com/baikal/vitality/internal/model"
)

// cardiovascularScore scores resting heart rate and heart rate variability.
// Starts at 100, deducts for elevated resting heart rate, awards a bonus for
// an athletic resting rate, and deducts for a large spread between the
// instantaneous and resting readings.
//
// Blood pressure is reserved for a future provider integration and
// contributes nothing today.
func cardiovascularScore(snap model.HealthSnapshot) float64 {
	score := 100.0

	if snap.RestingHeartRate != nil {
		rhr := *snap.RestingHeartRate
		switch {
		case rhr >= 100:
			score -= 25
		case rhr >= 80:
			score -= 15
		case rhr >= 70:
			score -= 8
		case rhr >= 60:
			score -= 2
		}
		// Athletic range bonus. Stacks with the 55-60 no-penalty zone above.
		if rhr >= 40 && rhr <= 55 {
			score += 5
		}
	}

	if snap.HeartRate != nil && snap.RestingHeartRate != nil {
		variability := math.Abs(*snap.HeartRate - *snap.RestingHeartRate)
		if variability > 30 {
			score -= 10
		}
	}

	return clamp(score)
}
