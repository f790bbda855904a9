package output

import (
	"fmt"
	"strings"

	"github.com/baikal/vitality/internal/model"
)

// RenderText returns a human-readable summary of a report: the overall
// gauge, the four dimension bars, and the recommendation list.
func RenderText(report *model.Report) string {
	var sb strings.Builder

	score := report.Score
	sb.WriteString("=== Wellness Report ===\n")
	sb.WriteString(fmt.Sprintf("Source: %s\n", report.Metadata.Source))
	sb.WriteString(fmt.Sprintf("Time:   %s\n\n", report.Metadata.Timestamp))

	sb.WriteString(fmt.Sprintf("Overall: %3d/100 [%s]  %s\n\n",
		score.Overall,
		model.ColorForScore(score.Overall),
		model.LabelForRiskLevel(score.RiskLevel)))

	dimensions := []struct {
		name  string
		value int
	}{
		{"Cardiovascular", score.Breakdown.Cardiovascular},
		{"Metabolic", score.Breakdown.Metabolic},
		{"Activity", score.Breakdown.Activity},
		{"Lifestyle", score.Breakdown.Lifestyle},
	}
	for _, d := range dimensions {
		sb.WriteString(fmt.Sprintf("  %-14s %3d/100 %s [%s]\n",
			d.name, d.value, bar(d.value), model.ColorForScore(d.value)))
	}

	if len(score.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range score.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	return sb.String()
}

// bar renders a 20-character gauge for a 0-100 score.
func bar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score / 5
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}
