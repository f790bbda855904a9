// Package collector defines the Collector interface and the per-reading
// collectors that extract biometric values from a provider export document.
//
// Collectors honor the engine contract: a missing or unusable reading maps
// to an absent snapshot field, never to an error surfaced to the engine.
package collector

import (
	"context"
	"time"

	"github.com/baikal/vitality/internal/model"
)

// Collector extracts one reading family from an export document.
// Each collector returns a partial snapshot with only its own fields set.
type Collector interface {
	// Name returns a unique identifier, e.g. "step_count".
	Name() string

	// Collect extracts the collector's readings from the export.
	// A reading that is absent from the export yields a nil field,
	// not an error.
	Collect(ctx context.Context, export *Export) (model.HealthSnapshot, error)
}

// CollectConfig is shared by the collection pipeline.
type CollectConfig struct {
	// Input is a file path or provider URL for the export document.
	Input string

	// Timeout bounds the whole collection run.
	Timeout time.Duration

	// Quiet suppresses progress output.
	Quiet bool

	// AIPrompt adds an analysis prompt to the report.
	AIPrompt bool
}

// DefaultConfig returns a CollectConfig with sensible defaults.
func DefaultConfig() CollectConfig {
	return CollectConfig{
		Timeout: 30 * time.Second,
	}
}

// All returns the full collector set in merge order. Profile first so that
// measured body samples override the self-reported profile values.
func All() []Collector {
	return []Collector{
		&ProfileCollector{},
		&BodyCollector{},
		&StepsCollector{},
		&HeartRateCollector{},
		&EnergyCollector{},
	}
}

// Merge copies every non-nil field of part into dst.
// Later merges override earlier ones field by field.
func Merge(dst *model.HealthSnapshot, part model.HealthSnapshot) {
	if part.StepCount != nil {
		dst.StepCount = part.StepCount
	}
	if part.HeartRate != nil {
		dst.HeartRate = part.HeartRate
	}
	if part.RestingHeartRate != nil {
		dst.RestingHeartRate = part.RestingHeartRate
	}
	if part.Weight != nil {
		dst.Weight = part.Weight
	}
	if part.Height != nil {
		dst.Height = part.Height
	}
	if part.BMI != nil {
		dst.BMI = part.BMI
	}
	if part.ActiveEnergyBurned != nil {
		dst.ActiveEnergyBurned = part.ActiveEnergyBurned
	}
	if part.Age != nil {
		dst.Age = part.Age
	}
	if part.BiologicalSex != nil {
		dst.BiologicalSex = part.BiologicalSex
	}
}
