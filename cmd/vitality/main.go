// vitality — wellness scoring engine for biometric health data.
//
// Ingests a provider health-data export (file or URL), assembles a
// best-effort biometric snapshot, and produces a composite 0-100 wellness
// score with a four-dimension breakdown, a risk tier, and recommendations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/baikal/vitality/internal/collector"
	diffpkg "github.com/baikal/vitality/internal/diff"
	"github.com/baikal/vitality/internal/orchestrator"
	"github.com/baikal/vitality/internal/output"
)

var (
	version = "0.1.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitality",
		Short: "Wellness scoring engine for biometric health data",
		Long: `vitality — single Go binary for wellness scoring.

Reads a provider health-data export (JSON or YAML file, or a provider URL),
assembles a best-effort biometric snapshot, and scores it across four
dimensions: cardiovascular, metabolic, activity, and lifestyle.

Every reading is optional; missing data degrades the snapshot, never the run.`,
		Version: version,
	}

	// --- score command ---
	var (
		scoreInput    string
		scoreFormat   string
		scoreOutput   string
		scoreTimeout  string
		scoreAIPrompt bool
		scoreQuiet    bool
	)

	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Score a health-data export",
		Long:  "Collect readings from an export, compute the wellness score, and write a report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := collector.DefaultConfig()
			cfg.Input = scoreInput
			cfg.Quiet = scoreQuiet
			cfg.AIPrompt = scoreAIPrompt

			if scoreTimeout != "" {
				d, err := time.ParseDuration(scoreTimeout)
				if err != nil {
					return fmt.Errorf("invalid timeout: %w", err)
				}
				cfg.Timeout = d
			}

			if cfg.Input == "" {
				return fmt.Errorf("--input is required (export file path or provider URL)")
			}

			report, err := orchestrator.BuildReport(context.Background(), cfg, version)
			if err != nil {
				return err
			}

			switch scoreFormat {
			case "text":
				return writeText(output.RenderText(report), scoreOutput)
			case "json":
				return output.WriteJSON(report, scoreOutput)
			default:
				return fmt.Errorf("unknown format %q (want json or text)", scoreFormat)
			}
		},
	}

	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Export file path (.json/.yaml) or provider URL")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "json", "Output format: json, text")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "-", "Output file path (- for stdout)")
	scoreCmd.Flags().StringVar(&scoreTimeout, "timeout", "", "Override collection timeout (e.g. 10s, 1m)")
	scoreCmd.Flags().BoolVar(&scoreAIPrompt, "ai-prompt", false, "Include AI analysis prompt in output")
	scoreCmd.Flags().BoolVarP(&scoreQuiet, "quiet", "q", false, "Suppress progress output")

	// --- diff command ---
	var diffOutput string

	diffCmd := &cobra.Command{
		Use:   "diff <baseline.json> <current.json>",
		Short: "Compare two vitality reports",
		Long:  "Produce a diff showing score deltas, risk tier transitions, and recommendation changes.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], diffOutput)
		},
	}
	diffCmd.Flags().StringVarP(&diffOutput, "output", "o", "-", "Output diff file path")

	rootCmd.AddCommand(scoreCmd, diffCmd, mcpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// writeText writes rendered text to a file, or stdout for "-".
func writeText(text, path string) error {
	if path == "" || path == "-" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// runDiff handles the `diff` command.
func runDiff(baselinePath, currentPath, outputPath string) error {
	baseline, err := diffpkg.LoadReport(baselinePath)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}
	current, err := diffpkg.LoadReport(currentPath)
	if err != nil {
		return fmt.Errorf("load current: %w", err)
	}

	result := diffpkg.Compare(baseline, current)

	if outputPath == "-" {
		// Print human-readable diff
		fmt.Print(diffpkg.FormatDiff(result))
		return nil
	}

	// Write JSON diff
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}
