package collector

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Sample type identifiers used in provider exports.
const (
	SampleStepCount        = "step_count"
	SampleHeartRate        = "heart_rate"
	SampleRestingHeartRate = "resting_heart_rate"
	SampleBodyMass         = "body_mass"
	SampleHeight           = "height"
	SampleBMI              = "bmi"
	SampleActiveEnergy     = "active_energy"
)

// Export is a parsed provider export document: a self-reported profile
// plus a stream of typed samples.
type Export struct {
	ExportedAt string   `json:"exported_at" yaml:"exported_at"`
	Profile    Profile  `json:"profile" yaml:"profile"`
	Samples    []Sample `json:"samples" yaml:"samples"`
}

// Profile holds the self-reported demographic block.
type Profile struct {
	Age           *int     `json:"age,omitempty" yaml:"age,omitempty"`
	BiologicalSex *string  `json:"biological_sex,omitempty" yaml:"biological_sex,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
}

// Sample is a single timestamped reading.
type Sample struct {
	Type      string  `json:"type" yaml:"type"`
	Value     float64 `json:"value" yaml:"value"`
	Unit      string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Timestamp string  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// ParseJSON parses a JSON export document.
func ParseJSON(data []byte) (*Export, error) {
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse export JSON: %w", err)
	}
	return &export, nil
}

// ParseYAML parses a YAML export document.
func ParseYAML(data []byte) (*Export, error) {
	var export Export
	if err := yaml.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse export YAML: %w", err)
	}
	return &export, nil
}

// Latest returns the most recent sample of the given type, or nil when the
// export has none. Samples without a parseable RFC3339 timestamp sort before
// timestamped ones; among equals, the later entry in the document wins.
func (e *Export) Latest(sampleType string) *Sample {
	var best *Sample
	var bestTime time.Time
	for i := range e.Samples {
		s := &e.Samples[i]
		if s.Type != sampleType {
			continue
		}
		ts, err := time.Parse(time.RFC3339, s.Timestamp)
		if err != nil {
			ts = time.Time{}
		}
		if best == nil || !ts.Before(bestTime) {
			best = s
			bestTime = ts
		}
	}
	return best
}
