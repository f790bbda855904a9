// Package diff compares two vitality reports and highlights score
// regressions and improvements between collection runs.
package diff

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/baikal/vitality/internal/model"
)

// DiffReport contains the comparison between two reports.
type DiffReport struct {
	Baseline     string            `json:"baseline"`
	Current      string            `json:"current"`
	OverallDelta int               `json:"overall_delta"` // positive = improved
	RiskFrom     model.RiskLevel   `json:"risk_from"`
	RiskTo       model.RiskLevel   `json:"risk_to"`
	RiskChanged  bool              `json:"risk_changed"`
	Dimensions   []DimensionChange `json:"dimensions"`
	NewRecs      []string          `json:"new_recommendations,omitempty"`
	ResolvedRecs []string          `json:"resolved_recommendations,omitempty"`
	Regressions  int               `json:"regressions"`
	Improvements int               `json:"improvements"`
}

// DimensionChange is a single dimension difference between reports.
type DimensionChange struct {
	Dimension string `json:"dimension"`
	OldValue  int    `json:"old_value"`
	NewValue  int    `json:"new_value"`
	Delta     int    `json:"delta"`
	Direction string `json:"direction"` // "regression", "improvement", "unchanged"
}

// LoadReport reads and parses a JSON report file.
func LoadReport(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &report, nil
}

// Compare computes differences between two reports.
func Compare(baseline, current *model.Report) *DiffReport {
	d := &DiffReport{
		Baseline:     baseline.Metadata.Timestamp,
		Current:      current.Metadata.Timestamp,
		OverallDelta: current.Score.Overall - baseline.Score.Overall,
		RiskFrom:     baseline.Score.RiskLevel,
		RiskTo:       current.Score.RiskLevel,
		RiskChanged:  baseline.Score.RiskLevel != current.Score.RiskLevel,
	}

	old, cur := baseline.Score.Breakdown, current.Score.Breakdown
	addDimension(d, "cardiovascular", old.Cardiovascular, cur.Cardiovascular)
	addDimension(d, "metabolic", old.Metabolic, cur.Metabolic)
	addDimension(d, "activity", old.Activity, cur.Activity)
	addDimension(d, "lifestyle", old.Lifestyle, cur.Lifestyle)

	d.NewRecs = subtract(current.Score.Recommendations, baseline.Score.Recommendations)
	d.ResolvedRecs = subtract(baseline.Score.Recommendations, current.Score.Recommendations)

	for _, c := range d.Dimensions {
		switch c.Direction {
		case "regression":
			d.Regressions++
		case "improvement":
			d.Improvements++
		}
	}

	return d
}

func addDimension(d *DiffReport, name string, oldVal, newVal int) {
	delta := newVal - oldVal

	direction := "unchanged"
	if delta < 0 {
		direction = "regression"
	} else if delta > 0 {
		direction = "improvement"
	}

	d.Dimensions = append(d.Dimensions, DimensionChange{
		Dimension: name,
		OldValue:  oldVal,
		NewValue:  newVal,
		Delta:     delta,
		Direction: direction,
	})
}

// subtract returns the strings in a that are not in b, preserving order.
func subtract(a, b []string) []string {
	seen := make(map[string]bool, len(b))
	for _, s := range b {
		seen[s] = true
	}
	var out []string
	for _, s := range a {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}

// FormatDiff returns a human-readable diff summary.
func FormatDiff(d *DiffReport) string {
	var sb strings.Builder

	sb.WriteString("=== Wellness Diff ===\n")
	sb.WriteString(fmt.Sprintf("Baseline: %s\n", d.Baseline))
	sb.WriteString(fmt.Sprintf("Current:  %s\n\n", d.Current))

	symbol := "→"
	if d.OverallDelta > 0 {
		symbol = "↑"
	} else if d.OverallDelta < 0 {
		symbol = "↓"
	}
	sb.WriteString(fmt.Sprintf("Overall Score: %+d %s\n", d.OverallDelta, symbol))
	if d.RiskChanged {
		sb.WriteString(fmt.Sprintf("Risk Tier: %s → %s\n",
			model.LabelForRiskLevel(d.RiskFrom), model.LabelForRiskLevel(d.RiskTo)))
	}
	sb.WriteString(fmt.Sprintf("Regressions: %d, Improvements: %d\n\n", d.Regressions, d.Improvements))

	for _, c := range d.Dimensions {
		if c.Direction == "unchanged" {
			continue
		}
		marker := "✓"
		if c.Direction == "regression" {
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %s: %d → %d (%+d)\n",
			marker, c.Dimension, c.OldValue, c.NewValue, c.Delta))
	}

	if len(d.NewRecs) > 0 {
		sb.WriteString("\nNew recommendations:\n")
		for _, r := range d.NewRecs {
			sb.WriteString(fmt.Sprintf("  + %s\n", r))
		}
	}
	if len(d.ResolvedRecs) > 0 {
		sb.WriteString("\nResolved recommendations:\n")
		for _, r := range d.ResolvedRecs {
			sb.WriteString(fmt.Sprintf("  - %s\n", r))
		}
	}

	return sb.String()
}
