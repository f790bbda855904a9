package scoring

import "github.com/baikal/vitality/internal/model"

// activityScore scores daily movement: step count and active energy burn.
// Starts at 100.
//
// Both threshold chains are first-match if/else-if, evaluated in the
// original table order. That order makes the highest-tier bonuses
// (>=12000 steps, energy ratio >=1.5) unreachable because the preceding
// branch matches first. Kept bit-for-bit for compatibility with existing
// score expectations; see DESIGN.md.
func activityScore(snap model.HealthSnapshot) float64 {
	score := 100.0

	if snap.StepCount != nil {
		switch steps := *snap.StepCount; {
		case steps < 3000:
			score -= 40
		case steps < 5000:
			score -= 25
		case steps < 7000:
			score -= 10
		case steps >= 10000:
			score += 15
		case steps >= 12000:
			score += 20 // unreachable: >=10000 matches first
		}
	}

	if snap.ActiveEnergyBurned != nil {
		target := energyTarget(snap)
		if target > 0 {
			switch ratio := *snap.ActiveEnergyBurned / target; {
			case ratio < 0.3:
				score -= 30
			case ratio < 0.6:
				score -= 15
			case ratio >= 1.2:
				score += 15
			case ratio >= 1.5:
				score += 20 // unreachable: >=1.2 matches first
			}
		}
	}

	return clamp(score)
}

// energyTarget returns the daily active-energy goal in kcal.
// Baseline 300; refined by age band and sex when both are known.
func energyTarget(snap model.HealthSnapshot) float64 {
	target := 300.0
	if snap.Age != nil && snap.BiologicalSex != nil {
		switch age := *snap.Age; {
		case age < 30:
			target = 400
		case age < 50:
			target = 350
		default:
			target = 250
		}
		if *snap.BiologicalSex == model.SexMale {
			target *= 1.2
		}
	}
	return target
}
