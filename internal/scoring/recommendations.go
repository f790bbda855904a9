package scoring

import "github.com/baikal/vitality/internal/model"

// dimensionThreshold is the rounded sub-score below which a dimension
// triggers recommendations.
const dimensionThreshold = 70

// maxRecommendations caps the final list length.
const maxRecommendations = 4

// Advisory strings. Fixed text; selection is conditioned on the rounded
// breakdown plus specific raw readings from the snapshot.
const (
	recCardioBase    = "Incorporate regular cardio exercise such as brisk walking, cycling, or swimming."
	recCardioHighRHR = "Your resting heart rate is elevated; consider discussing it with a healthcare provider."
	recMetabolicBase = "Focus on a balanced diet with whole grains, lean protein, and vegetables."
	recMetabolicBMI  = "Gradual weight management could improve your metabolic health."
	recActivityBase  = "Try to move more throughout the day; short walks add up."
	recActivitySteps = "Aim for at least 7,000 steps per day to build a consistent activity base."
	recLifestyleBase = "Maintain a consistent daily routine with regular sleep and meal times."
	recLifestyleWear = "Wear your tracker more consistently so more readings feed your score."

	recGenericKeepUp  = "Great work! Keep up your healthy habits."
	recGenericMonitor = "Continue tracking your health data to maintain your momentum."
)

// recommendations builds the advisory list for a scored snapshot.
// Generation order is fixed: cardiovascular, metabolic, activity, lifestyle,
// then the generic fallback when nothing triggered. Truncated to at most
// four entries, preserving that order.
func recommendations(snap model.HealthSnapshot, breakdown model.Breakdown) []string {
	var recs []string

	if breakdown.Cardiovascular < dimensionThreshold {
		recs = append(recs, recCardioBase)
		if snap.RestingHeartRate != nil && *snap.RestingHeartRate > 80 {
			recs = append(recs, recCardioHighRHR)
		}
	}

	if breakdown.Metabolic < dimensionThreshold {
		recs = append(recs, recMetabolicBase)
		if bmi := snap.EffectiveBMI(); bmi != nil && *bmi > 25 {
			recs = append(recs, recMetabolicBMI)
		}
	}

	if breakdown.Activity < dimensionThreshold {
		recs = append(recs, recActivityBase)
		if snap.StepCount != nil && *snap.StepCount < 7000 {
			recs = append(recs, recActivitySteps)
		}
	}

	if breakdown.Lifestyle < dimensionThreshold {
		recs = append(recs, recLifestyleBase)
		if snap.Completeness() < 0.5 {
			recs = append(recs, recLifestyleWear)
		}
	}

	if len(recs) == 0 {
		return []string{recGenericKeepUp, recGenericMonitor}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
