package scoring

import "github.com/baikal/vitality/internal/model"

// lifestyleScore scores demographics and tracking habits. Starts at 100.
// Age bands and sex deduct; consistently wearing the tracker (five of the
// six core readings present and positive) earns a completeness bonus.
func lifestyleScore(snap model.HealthSnapshot) float64 {
	score := 100.0

	if snap.Age != nil {
		switch age := *snap.Age; {
		case age >= 65:
			score -= 15
		case age >= 50:
			score -= 8
		case age < 25:
			score -= 5
		}
	}

	if snap.BiologicalSex != nil && *snap.BiologicalSex == model.SexMale {
		score -= 5
	}

	if snap.Completeness() >= 0.8 {
		score += 10
	}

	return clamp(score)
}
