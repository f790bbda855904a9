package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/baikal/vitality/internal/collector"
	"github.com/baikal/vitality/internal/model"
	"github.com/baikal/vitality/internal/orchestrator"
	"github.com/baikal/vitality/internal/scoring"
)

// scoreExportTimeout is the maximum time for a full pipeline run.
const scoreExportTimeout = 2 * time.Minute

// handleComputeScore scores a snapshot built directly from tool arguments.
func handleComputeScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)

	snap := model.HealthSnapshot{
		StepCount:          floatArg(args, "step_count"),
		HeartRate:          floatArg(args, "heart_rate"),
		RestingHeartRate:   floatArg(args, "resting_heart_rate"),
		Weight:             floatArg(args, "weight_kg"),
		Height:             floatArg(args, "height_cm"),
		BMI:                floatArg(args, "bmi"),
		ActiveEnergyBurned: floatArg(args, "active_energy_kcal"),
		Age:                intArg(args, "age"),
	}

	if sexStr := stringArg(args, "biological_sex", ""); sexStr != "" {
		switch sex := model.BiologicalSex(sexStr); sex {
		case model.SexMale, model.SexFemale, model.SexOther:
			snap.BiologicalSex = &sex
		}
	}

	result := scoring.Compute(snap)

	payload := map[string]interface{}{
		"score":      result,
		"color":      model.ColorForScore(result.Overall),
		"risk_label": model.LabelForRiskLevel(result.RiskLevel),
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(jsonData)), nil
}

// makeScoreExportHandler builds the score_export handler with the tool version
// baked into report metadata.
func makeScoreExportHandler(version string) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, cancel := context.WithTimeout(ctx, scoreExportTimeout)
		defer cancel()

		args := getArgs(request)
		input := stringArg(args, "input", "")
		if input == "" {
			return errResult("input is required"), nil
		}

		cfg := collector.DefaultConfig()
		cfg.Input = input
		cfg.Quiet = true
		cfg.AIPrompt = true

		report, err := orchestrator.BuildReport(ctx, cfg, version)
		if err != nil {
			return errResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}

		jsonData, err := json.Marshal(report)
		if err != nil {
			return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
		}
		return newTextResult(string(jsonData)), nil
	}
}

// handleExplainDimension provides detailed explanation for a dimension or tier.
func handleExplainDimension(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := getArgs(request)
	dimensionID := stringArg(args, "dimension_id", "")
	if dimensionID == "" {
		return errResult("dimension_id is required"), nil
	}

	desc, ok := dimensionExplanations[dimensionID]
	if !ok {
		return newTextResult(fmt.Sprintf(
			"No specific explanation for '%s'. "+
				"General guidance: every dimension starts at 100 and applies threshold-based "+
				"adjustments from the raw readings; use 'compute_score' to see which readings "+
				"moved the score.",
			dimensionID,
		)), nil
	}

	return newTextResult(desc), nil
}

// handleListDimensions returns all known dimension and tier IDs.
func handleListDimensions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type entry struct {
		ID    string `json:"id"`
		Brief string `json:"brief"`
	}

	var entries []entry
	for id, desc := range dimensionExplanations {
		// First non-empty line, stripped of markdown bold, as the brief.
		brief := id
		for _, line := range strings.Split(desc, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				brief = strings.ReplaceAll(line, "**", "")
				break
			}
		}
		entries = append(entries, entry{ID: id, Brief: brief})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	jsonData, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(jsonData)), nil
}

// getArgs safely extracts the arguments map from a CallToolRequest.
// Returns an empty map if Arguments is nil or not a map.
func getArgs(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

// stringArg extracts a string argument with a default value.
func stringArg(args map[string]interface{}, key, defaultVal string) string {
	val, ok := args[key]
	if !ok || val == nil {
		return defaultVal
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return defaultVal
	}
	return s
}

// floatArg extracts an optional numeric argument. JSON numbers arrive as
// float64; anything else maps to absent.
func floatArg(args map[string]interface{}, key string) *float64 {
	val, ok := args[key]
	if !ok || val == nil {
		return nil
	}
	f, ok := val.(float64)
	if !ok {
		return nil
	}
	return &f
}

// intArg extracts an optional integer argument.
func intArg(args map[string]interface{}, key string) *int {
	f := floatArg(args, key)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// newTextResult creates a successful MCP tool result with text content.
func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// errResult creates an MCP tool error result (IsError=true).
// This is returned as a tool-level error, not a transport-level JSON-RPC error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: msg,
			},
		},
	}
}

var dimensionExplanations = map[string]string{
	"cardiovascular": `**Cardiovascular Dimension (35% of overall)**
Scores resting heart rate and the spread between instantaneous and resting readings.
**What lowers it:**
- Resting heart rate of 60+ bpm, with steeper deductions at 70, 80, and 100 bpm
- A gap of more than 30 bpm between the current and resting heart rate
**What raises it:**
- An athletic resting heart rate in the 40-55 bpm range earns a bonus
**How to improve:**
- Regular aerobic exercise lowers resting heart rate over weeks to months.
- If resting heart rate stays above 80 bpm, discuss it with a healthcare provider.`,

	"metabolic": `**Metabolic Dimension (25% of overall)**
Scores body composition via BMI and deviation from the sex-adjusted ideal weight.
**What lowers it:**
- BMI under 18.5 (underweight), 25-30 (overweight), or 30+ (obese)
- Body weight more than 15% (or 30%) away from the Broca ideal weight
- Both adjustments stack: a high BMI far from ideal weight deducts twice
**What raises it:**
- BMI in the healthy 18.5-24.9 band earns a bonus
**How to improve:**
- Gradual weight change toward the healthy BMI band; crash diets rebound.`,

	"activity": `**Activity Dimension (25% of overall)**
Scores daily step count and active energy burn against a demographic target.
**What lowers it:**
- Fewer than 7,000 steps, with steeper deductions under 5,000 and 3,000
- Active energy below 60% (or 30%) of the daily target
  (target: 300 kcal baseline, adjusted by age band and sex)
**What raises it:**
- 10,000+ steps or energy burn at 120%+ of target earn bonuses
**How to improve:**
- Short walks spread across the day count the same as one long one.`,

	"lifestyle": `**Lifestyle Dimension (15% of overall)**
Scores demographics and tracking consistency.
**What lowers it:**
- Age bands (65+, 50+, under 25) and male sex carry small fixed deductions
**What raises it:**
- Five of the six core readings present and positive earns a completeness bonus
**How to improve:**
- Wear your tracker consistently; the demographic part is not actionable.`,

	"risk_low": `**Low Risk (overall 85-100)**
Readings are in healthy ranges. Recommendations degrade to generic encouragement.`,

	"risk_moderate": `**Moderate Risk (overall 70-84)**
One or more dimensions are slipping. Check the breakdown for the weakest dimension
and follow its recommendations before the tier drops further.`,

	"risk_high": `**High Risk (overall 50-69)**
Multiple dimensions are below their healthy thresholds. The report's recommendations
target the specific readings that caused the deductions.`,

	"risk_very_high": `**Very High Risk (overall 0-49)**
Severe deductions across dimensions. The scores are a screening signal, not a
diagnosis; a healthcare provider should review the underlying readings.`,
}
