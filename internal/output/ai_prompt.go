package output

import (
	"fmt"
	"strings"

	"github.com/baikal/vitality/internal/model"
)

// GenerateAIPrompt builds an analysis context for AI consumers of the report:
// a coaching prompt grounded in the computed breakdown plus the methodology
// description and common interpretation patterns.
func GenerateAIPrompt(report *model.Report) *model.AIContext {
	var sb strings.Builder

	sb.WriteString("You are a wellness coach reviewing a biometric scoring report.\n")
	sb.WriteString(fmt.Sprintf("Overall wellness score: %d/100 (%s).\n",
		report.Score.Overall, model.LabelForRiskLevel(report.Score.RiskLevel)))
	sb.WriteString(fmt.Sprintf(
		"Dimension scores — cardiovascular: %d, metabolic: %d, activity: %d, lifestyle: %d.\n",
		report.Score.Breakdown.Cardiovascular,
		report.Score.Breakdown.Metabolic,
		report.Score.Breakdown.Activity,
		report.Score.Breakdown.Lifestyle))
	sb.WriteString("Explain the weakest dimensions in plain language, relate them to the raw readings " +
		"in the snapshot, and expand on the attached recommendations without contradicting them. " +
		"Do not give medical diagnoses; suggest consulting a professional where readings are concerning.")

	return &model.AIContext{
		Prompt: sb.String(),
		Methodology: "Each dimension starts at 100 and applies threshold-based adjustments; " +
			"the overall score is a weighted aggregate (cardio 35%, metabolic 25%, activity 25%, " +
			"lifestyle 15%) with an age-based demographic multiplier, clamped to [0,100].",
		KnownPatterns: []string{
			"Low cardiovascular with elevated resting heart rate suggests poor recovery or stress.",
			"Metabolic deductions stack: BMI bucket and ideal-weight deviation are independent.",
			"Activity scores cap their bonuses; very high step counts do not raise the score past 100.",
			"A missing reading never lowers a dimension directly, but reduces the lifestyle completeness bonus.",
		},
	}
}
