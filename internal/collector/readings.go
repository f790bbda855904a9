package collector

import (
	"context"

	"github.com/baikal/vitality/internal/model"
)

// StepsCollector extracts the latest step-count sample.
type StepsCollector struct{}

func (c *StepsCollector) Name() string { return "step_count" }

func (c *StepsCollector) Collect(ctx context.Context, export *Export) (model.HealthSnapshot, error) {
	if export == nil {
		return model.HealthSnapshot{}, errNilExport
	}

	var snap model.HealthSnapshot
	if s := export.Latest(SampleStepCount); s != nil {
		snap.StepCount = model.Float(s.Value)
	}
	return snap, nil
}

// HeartRateCollector extracts the latest instantaneous and resting
// heart-rate samples.
type HeartRateCollector struct{}

func (c *HeartRateCollector) Name() string { return "heart_rate" }

func (c *HeartRateCollector) Collect(ctx context.Context, export *Export) (model.HealthSnapshot, error) {
	if export == nil {
		return model.HealthSnapshot{}, errNilExport
	}

	var snap model.HealthSnapshot
	if s := export.Latest(SampleHeartRate); s != nil {
		snap.HeartRate = model.Float(s.Value)
	}
	if s := export.Latest(SampleRestingHeartRate); s != nil {
		snap.RestingHeartRate = model.Float(s.Value)
	}
	return snap, nil
}

// EnergyCollector extracts the latest active-energy sample.
type EnergyCollector struct{}

func (c *EnergyCollector) Name() string { return "active_energy" }

func (c *EnergyCollector) Collect(ctx context.Context, export *Export) (model.HealthSnapshot, error) {
	if export == nil {
		return model.HealthSnapshot{}, errNilExport
	}

	var snap model.HealthSnapshot
	if s := export.Latest(SampleActiveEnergy); s != nil {
		snap.ActiveEnergyBurned = model.Float(s.Value)
	}
	return snap, nil
}
