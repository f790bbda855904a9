package collector

import (
	"context"
	"errors"

	"github.com/baikal/vitality/internal/model"
)

// errNilExport is returned when a collector is handed no document at all.
var errNilExport = errors.New("nil export document")

// ProfileCollector extracts the self-reported demographics: age, biological
// sex, and the profile's height and weight. Measured body samples, when
// present, override the latter two (see BodyCollector and merge order).
type ProfileCollector struct{}

func (c *ProfileCollector) Name() string { return "profile" }

func (c *ProfileCollector) Collect(ctx context.Context, export *Export) (model.HealthSnapshot, error) {
	if export == nil {
		return model.HealthSnapshot{}, errNilExport
	}

	var snap model.HealthSnapshot
	p := export.Profile
	snap.Age = p.Age
	snap.Height = p.HeightCm
	snap.Weight = p.WeightKg

	if p.BiologicalSex != nil {
		switch model.BiologicalSex(*p.BiologicalSex) {
		case model.SexMale, model.SexFemale, model.SexOther:
			sex := model.BiologicalSex(*p.BiologicalSex)
			snap.BiologicalSex = &sex
		}
		// Unrecognized values map to absent, per the engine contract.
	}

	return snap, nil
}

// BodyCollector extracts measured body composition samples: weight, height,
// and BMI. Latest sample of each type wins.
type BodyCollector struct{}

func (c *BodyCollector) Name() string { return "body" }

func (c *BodyCollector) Collect(ctx context.Context, export *Export) (model.HealthSnapshot, error) {
	if export == nil {
		return model.HealthSnapshot{}, errNilExport
	}

	var snap model.HealthSnapshot
	if s := export.Latest(SampleBodyMass); s != nil {
		snap.Weight = model.Float(s.Value)
	}
	if s := export.Latest(SampleHeight); s != nil {
		snap.Height = model.Float(s.Value)
	}
	if s := export.Latest(SampleBMI); s != nil {
		snap.BMI = model.Float(s.Value)
	}
	return snap, nil
}
