// Package model defines the data types shared across the vitality pipeline:
// the biometric snapshot supplied by collectors, the score result produced
// by the engine, and the report document serialized for consumers.
// Schema version: 1.0.0
package model

// BiologicalSex is the self-reported biological sex from the provider profile.
type BiologicalSex string

const (
	SexMale   BiologicalSex = "male"
	SexFemale BiologicalSex = "female"
	SexOther  BiologicalSex = "other"
)

// HealthSnapshot is one immutable bundle of biometric readings for a single
// point in time. Every field is optional: nil means the reading was not
// available from the provider, and the engine must skip its contribution.
//
// Units are fixed by contract with the data-acquisition layer:
// cm (height), kg (weight), bpm (heart rates), kcal (active energy).
type HealthSnapshot struct {
	StepCount          *float64       `json:"step_count,omitempty" yaml:"step_count,omitempty"`
	HeartRate          *float64       `json:"heart_rate,omitempty" yaml:"heart_rate,omitempty"`
	RestingHeartRate   *float64       `json:"resting_heart_rate,omitempty" yaml:"resting_heart_rate,omitempty"`
	Weight             *float64       `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	Height             *float64       `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	BMI                *float64       `json:"bmi,omitempty" yaml:"bmi,omitempty"`
	ActiveEnergyBurned *float64       `json:"active_energy_kcal,omitempty" yaml:"active_energy_kcal,omitempty"`
	Age                *int           `json:"age,omitempty" yaml:"age,omitempty"`
	BiologicalSex      *BiologicalSex `json:"biological_sex,omitempty" yaml:"biological_sex,omitempty"`
}

// EffectiveBMI returns the BMI reading if present, otherwise derives it
// from weight and height (kg / m²). Returns nil when neither is possible.
func (s HealthSnapshot) EffectiveBMI() *float64 {
	if s.BMI != nil {
		return s.BMI
	}
	if s.Weight != nil && s.Height != nil && *s.Height > 0 {
		m := *s.Height / 100
		bmi := *s.Weight / (m * m)
		return &bmi
	}
	return nil
}

// Completeness returns the fraction of the six tracked readings
// (steps, heart rate, weight, height, resting heart rate, active energy)
// that are present and positive.
func (s HealthSnapshot) Completeness() float64 {
	fields := []*float64{
		s.StepCount,
		s.HeartRate,
		s.Weight,
		s.Height,
		s.RestingHeartRate,
		s.ActiveEnergyBurned,
	}
	present := 0
	for _, f := range fields {
		if f != nil && *f > 0 {
			present++
		}
	}
	return float64(present) / float64(len(fields))
}

// Float returns a pointer to v. Convenience for building snapshots.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Sex returns a pointer to v.
func Sex(v BiologicalSex) *BiologicalSex { return &v }
