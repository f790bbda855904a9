package scoring

import (
	"testing"

	"github.com/baikal/vitality/internal/model"
)

func TestComputeEmptySnapshot(t *testing.T) {
	// No readings: no penalties, no bonuses. Every dimension 100,
	// overall 100, low risk, generic fallback recommendations.
	result := Compute(model.HealthSnapshot{})

	if result.Overall != 100 {
		t.Errorf("overall = %d, want 100", result.Overall)
	}
	want := model.Breakdown{Cardiovascular: 100, Metabolic: 100, Activity: 100, Lifestyle: 100}
	if result.Breakdown != want {
		t.Errorf("breakdown = %+v, want %+v", result.Breakdown, want)
	}
	if result.RiskLevel != model.RiskLow {
		t.Errorf("risk = %s, want low", result.RiskLevel)
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("recommendations = %v, want the two generic fallbacks", result.Recommendations)
	}
}

func TestComputeDemographicMultiplier(t *testing.T) {
	tests := []struct {
		name string
		age  *int
		want float64
	}{
		{"no age", nil, 1.0},
		{"age 70", model.Int(70), 0.85},
		{"age 65 boundary", model.Int(65), 0.85},
		{"age 55", model.Int(55), 0.90},
		{"age 50 boundary", model.Int(50), 0.90},
		{"age 40", model.Int(40), 0.95},
		{"age 30 boundary", model.Int(30), 0.95},
		{"age 25", model.Int(25), 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := model.HealthSnapshot{Age: tc.age}
			if got := demographicMultiplier(snap); got != tc.want {
				t.Errorf("demographicMultiplier = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeSeniorAdjustment(t *testing.T) {
	// Age 70 alone: lifestyle = 100-15 = 85, other dimensions 100.
	// Weighted: 100*0.35 + 100*0.25 + 100*0.25 + 85*0.15 = 97.75.
	// Demographic ×0.85 → 83.0875 → rounds to 83 → moderate risk.
	result := Compute(model.HealthSnapshot{Age: model.Int(70)})

	if result.Breakdown.Lifestyle != 85 {
		t.Errorf("lifestyle = %d, want 85", result.Breakdown.Lifestyle)
	}
	if result.Overall != 83 {
		t.Errorf("overall = %d, want 83", result.Overall)
	}
	if result.RiskLevel != model.RiskModerate {
		t.Errorf("risk = %s, want moderate", result.RiskLevel)
	}
}

func TestComputeWeightedAggregateUsesUnroundedSubScores(t *testing.T) {
	// rhr=110 alone: cardio 75, rest 100.
	// Weighted: 75*0.35 + 100*0.65 = 91.25 → rounds to 91.
	result := Compute(model.HealthSnapshot{RestingHeartRate: model.Float(110)})

	if result.Breakdown.Cardiovascular != 75 {
		t.Errorf("cardiovascular = %d, want 75", result.Breakdown.Cardiovascular)
	}
	if result.Overall != 91 {
		t.Errorf("overall = %d, want 91", result.Overall)
	}
}

func TestComputeBoundsInvariant(t *testing.T) {
	// Worst-case and best-case snapshots stay inside [0,100] everywhere.
	snapshots := []model.HealthSnapshot{
		{},
		{
			// Everything penalized.
			StepCount:          model.Float(500),
			HeartRate:          model.Float(130),
			RestingHeartRate:   model.Float(115),
			Weight:             model.Float(150),
			Height:             model.Float(160),
			ActiveEnergyBurned: model.Float(10),
			Age:                model.Int(80),
			BiologicalSex:      model.Sex(model.SexMale),
		},
		{
			// Everything rewarded.
			StepCount:          model.Float(11000),
			HeartRate:          model.Float(65),
			RestingHeartRate:   model.Float(50),
			Weight:             model.Float(63),
			Height:             model.Float(170),
			BMI:                model.Float(21.8),
			ActiveEnergyBurned: model.Float(500),
			Age:                model.Int(28),
			BiologicalSex:      model.Sex(model.SexFemale),
		},
	}

	for i, snap := range snapshots {
		result := Compute(snap)
		if result.Overall < 0 || result.Overall > 100 {
			t.Errorf("snapshot %d: overall = %d out of [0,100]", i, result.Overall)
		}
		for name, v := range map[string]int{
			"cardiovascular": result.Breakdown.Cardiovascular,
			"metabolic":      result.Breakdown.Metabolic,
			"activity":       result.Breakdown.Activity,
			"lifestyle":      result.Breakdown.Lifestyle,
		} {
			if v < 0 || v > 100 {
				t.Errorf("snapshot %d: %s = %d out of [0,100]", i, name, v)
			}
		}
		if len(result.Recommendations) > 4 {
			t.Errorf("snapshot %d: %d recommendations, max 4", i, len(result.Recommendations))
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	snap := model.HealthSnapshot{
		StepCount:        model.Float(4000),
		RestingHeartRate: model.Float(85),
		BMI:              model.Float(28),
		Age:              model.Int(45),
		BiologicalSex:    model.Sex(model.SexMale),
	}

	first := Compute(snap)
	for i := 0; i < 10; i++ {
		again := Compute(snap)
		if again.Overall != first.Overall || again.Breakdown != first.Breakdown ||
			again.RiskLevel != first.RiskLevel {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
		if len(again.Recommendations) != len(first.Recommendations) {
			t.Fatalf("run %d: recommendation count differs", i)
		}
		for j := range again.Recommendations {
			if again.Recommendations[j] != first.Recommendations[j] {
				t.Fatalf("run %d: recommendation order differs", i)
			}
		}
	}
}

func TestRiskForScoreBoundaries(t *testing.T) {
	tests := []struct {
		overall int
		want    model.RiskLevel
	}{
		{100, model.RiskLow},
		{85, model.RiskLow},
		{84, model.RiskModerate},
		{70, model.RiskModerate},
		{69, model.RiskHigh},
		{50, model.RiskHigh},
		{49, model.RiskVeryHigh},
		{0, model.RiskVeryHigh},
	}

	for _, tc := range tests {
		if got := RiskForScore(tc.overall); got != tc.want {
			t.Errorf("RiskForScore(%d) = %s, want %s", tc.overall, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{115, 100},
	}
	for _, tc := range tests {
		if got := clamp(tc.in); got != tc.want {
			t.Errorf("clamp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
