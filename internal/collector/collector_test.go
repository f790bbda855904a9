package collector

import (
	"context"
	"testing"

	"github.com/baikal/vitality/internal/model"
)

func TestParseJSONExport(t *testing.T) {
	data := []byte(`{
		"exported_at": "2026-08-20T08:00:00Z",
		"profile": {"age": 42, "biological_sex": "female", "height_cm": 168},
		"samples": [
			{"type": "step_count", "value": 8421, "unit": "count", "timestamp": "2026-08-20T07:55:00Z"},
			{"type": "heart_rate", "value": 71, "unit": "bpm", "timestamp": "2026-08-20T07:50:00Z"}
		]
	}`)

	export, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if export.Profile.Age == nil || *export.Profile.Age != 42 {
		t.Errorf("profile age = %v, want 42", export.Profile.Age)
	}
	if len(export.Samples) != 2 {
		t.Errorf("samples = %d, want 2", len(export.Samples))
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := ParseJSON([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseYAMLExport(t *testing.T) {
	data := []byte(`
exported_at: "2026-08-20T08:00:00Z"
profile:
  age: 42
  biological_sex: male
samples:
  - type: step_count
    value: 6500
    unit: count
`)
	export, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if export.Profile.BiologicalSex == nil || *export.Profile.BiologicalSex != "male" {
		t.Errorf("biological_sex = %v, want male", export.Profile.BiologicalSex)
	}
	if len(export.Samples) != 1 || export.Samples[0].Value != 6500 {
		t.Errorf("samples = %+v, want one step_count of 6500", export.Samples)
	}
}

func TestLatestPicksMostRecentSample(t *testing.T) {
	export := &Export{Samples: []Sample{
		{Type: SampleStepCount, Value: 3000, Timestamp: "2026-08-19T20:00:00Z"},
		{Type: SampleStepCount, Value: 9000, Timestamp: "2026-08-20T20:00:00Z"},
		{Type: SampleStepCount, Value: 5000, Timestamp: "2026-08-18T20:00:00Z"},
		{Type: SampleHeartRate, Value: 70, Timestamp: "2026-08-21T08:00:00Z"},
	}}

	s := export.Latest(SampleStepCount)
	if s == nil || s.Value != 9000 {
		t.Errorf("Latest(step_count) = %+v, want value 9000", s)
	}
}

func TestLatestWithoutTimestampsLastEntryWins(t *testing.T) {
	export := &Export{Samples: []Sample{
		{Type: SampleHeartRate, Value: 68},
		{Type: SampleHeartRate, Value: 74},
	}}
	s := export.Latest(SampleHeartRate)
	if s == nil || s.Value != 74 {
		t.Errorf("Latest = %+v, want last entry (74)", s)
	}
}

func TestLatestMissingType(t *testing.T) {
	export := &Export{}
	if s := export.Latest(SampleBMI); s != nil {
		t.Errorf("Latest on empty export = %+v, want nil", s)
	}
}

func TestProfileCollector(t *testing.T) {
	sex := "male"
	export := &Export{Profile: Profile{
		Age:           model.Int(55),
		BiologicalSex: &sex,
		HeightCm:      model.Float(182),
		WeightKg:      model.Float(85),
	}}

	snap, err := (&ProfileCollector{}).Collect(context.Background(), export)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if snap.Age == nil || *snap.Age != 55 {
		t.Errorf("age = %v, want 55", snap.Age)
	}
	if snap.BiologicalSex == nil || *snap.BiologicalSex != model.SexMale {
		t.Errorf("sex = %v, want male", snap.BiologicalSex)
	}
	if snap.Height == nil || *snap.Height != 182 {
		t.Errorf("height = %v, want 182", snap.Height)
	}
}

func TestProfileCollectorUnknownSexMapsToAbsent(t *testing.T) {
	sex := "unknown-token"
	export := &Export{Profile: Profile{BiologicalSex: &sex}}

	snap, err := (&ProfileCollector{}).Collect(context.Background(), export)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if snap.BiologicalSex != nil {
		t.Errorf("sex = %v, want nil for unrecognized value", *snap.BiologicalSex)
	}
}

func TestReadingCollectorsAbsentSamples(t *testing.T) {
	// An export with no samples yields fully-absent partial snapshots,
	// never errors: the engine tolerates partial data by contract.
	export := &Export{}
	for _, c := range All() {
		snap, err := c.Collect(context.Background(), export)
		if err != nil {
			t.Errorf("[%s] unexpected error: %v", c.Name(), err)
		}
		if snap.StepCount != nil || snap.HeartRate != nil || snap.RestingHeartRate != nil ||
			snap.BMI != nil || snap.ActiveEnergyBurned != nil {
			t.Errorf("[%s] expected empty partial snapshot, got %+v", c.Name(), snap)
		}
	}
}

func TestCollectorsNilExport(t *testing.T) {
	for _, c := range All() {
		if _, err := c.Collect(context.Background(), nil); err == nil {
			t.Errorf("[%s] expected error for nil export", c.Name())
		}
	}
}

func TestMergeLaterOverridesEarlier(t *testing.T) {
	var dst model.HealthSnapshot

	// Profile supplies self-reported weight.
	Merge(&dst, model.HealthSnapshot{Weight: model.Float(85), Age: model.Int(40)})
	// Body samples supply a measured weight; it must win.
	Merge(&dst, model.HealthSnapshot{Weight: model.Float(82.5)})
	// A nil field never erases an earlier value.
	Merge(&dst, model.HealthSnapshot{HeartRate: model.Float(70)})

	if dst.Weight == nil || *dst.Weight != 82.5 {
		t.Errorf("weight = %v, want 82.5 (measured overrides self-reported)", dst.Weight)
	}
	if dst.Age == nil || *dst.Age != 40 {
		t.Errorf("age = %v, want 40 (preserved)", dst.Age)
	}
	if dst.HeartRate == nil || *dst.HeartRate != 70 {
		t.Errorf("heart rate = %v, want 70", dst.HeartRate)
	}
}

func TestBodyCollectorSamples(t *testing.T) {
	export := &Export{Samples: []Sample{
		{Type: SampleBodyMass, Value: 78.2, Timestamp: "2026-08-20T07:00:00Z"},
		{Type: SampleBMI, Value: 24.1, Timestamp: "2026-08-20T07:00:00Z"},
	}}

	snap, err := (&BodyCollector{}).Collect(context.Background(), export)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if snap.Weight == nil || *snap.Weight != 78.2 {
		t.Errorf("weight = %v, want 78.2", snap.Weight)
	}
	if snap.BMI == nil || *snap.BMI != 24.1 {
		t.Errorf("bmi = %v, want 24.1", snap.BMI)
	}
	if snap.Height != nil {
		t.Errorf("height = %v, want nil (no sample)", *snap.Height)
	}
}
