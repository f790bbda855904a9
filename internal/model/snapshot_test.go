package model

import (
	"math"
	"testing"
)

func TestEffectiveBMIPrefersGivenReading(t *testing.T) {
	snap := HealthSnapshot{
		BMI:    Float(22),
		Weight: Float(95),
		Height: Float(170),
	}
	bmi := snap.EffectiveBMI()
	if bmi == nil || *bmi != 22 {
		t.Errorf("EffectiveBMI = %v, want 22 (given reading wins)", bmi)
	}
}

func TestEffectiveBMIDerivation(t *testing.T) {
	// 70kg at 175cm → 70 / 1.75² ≈ 22.857
	snap := HealthSnapshot{Weight: Float(70), Height: Float(175)}
	bmi := snap.EffectiveBMI()
	if bmi == nil {
		t.Fatal("EffectiveBMI = nil, want derived value")
	}
	if math.Abs(*bmi-22.857) > 0.01 {
		t.Errorf("EffectiveBMI = %v, want ≈22.857", *bmi)
	}
}

func TestEffectiveBMIUnavailable(t *testing.T) {
	tests := []struct {
		name string
		snap HealthSnapshot
	}{
		{"empty", HealthSnapshot{}},
		{"weight only", HealthSnapshot{Weight: Float(70)}},
		{"height only", HealthSnapshot{Height: Float(175)}},
		{"zero height", HealthSnapshot{Weight: Float(70), Height: Float(0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if bmi := tc.snap.EffectiveBMI(); bmi != nil {
				t.Errorf("EffectiveBMI = %v, want nil", *bmi)
			}
		})
	}
}

func TestCompleteness(t *testing.T) {
	tests := []struct {
		name string
		snap HealthSnapshot
		want float64
	}{
		{"empty", HealthSnapshot{}, 0},
		{
			"half present",
			HealthSnapshot{
				StepCount: Float(8000),
				HeartRate: Float(70),
				Weight:    Float(70),
			},
			0.5,
		},
		{
			"zero values excluded",
			HealthSnapshot{
				StepCount: Float(0),
				HeartRate: Float(70),
			},
			1.0 / 6.0,
		},
		{
			"all present",
			HealthSnapshot{
				StepCount:          Float(8000),
				HeartRate:          Float(70),
				Weight:             Float(70),
				Height:             Float(175),
				RestingHeartRate:   Float(58),
				ActiveEnergyBurned: Float(350),
			},
			1.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.snap.Completeness(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Completeness = %v, want %v", got, tc.want)
			}
		})
	}
}
