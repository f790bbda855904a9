// Package orchestrator runs the data-acquisition fan-out: it loads the
// provider export, runs every collector concurrently, assembles a
// best-effort snapshot, and scores it.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baikal/vitality/internal/collector"
	"github.com/baikal/vitality/internal/model"
	"github.com/baikal/vitality/internal/output"
	"github.com/baikal/vitality/internal/scoring"
	"github.com/baikal/vitality/internal/source"
)

// Tool identity stamped into report metadata.
const (
	toolName      = "vitality"
	schemaVersion = "1.0.0"
)

// Orchestrator coordinates collectors and produces a Report.
type Orchestrator struct {
	collectors []collector.Collector
	src        source.Source
	config     collector.CollectConfig
	progress   *output.Progress
	version    string
}

// New creates an Orchestrator with the given collectors, source, and config.
func New(collectors []collector.Collector, src source.Source, cfg collector.CollectConfig, version string) *Orchestrator {
	return &Orchestrator{
		collectors: collectors,
		src:        src,
		config:     cfg,
		progress:   output.NewProgress(!cfg.Quiet),
		version:    version,
	}
}

// Run loads the export, fans out all collectors, merges their partial
// snapshots, and scores the result. Collector failures degrade to absent
// readings; only a source failure aborts the run.
func (o *Orchestrator) Run(ctx context.Context) (*model.Report, error) {
	start := time.Now()

	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	o.progress.Log("Loading export from %s", o.src.Name())
	export, err := o.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Fan out collectors; each failure maps to an absent reading.
	partials := make([]*model.HealthSnapshot, len(o.collectors))
	var wg sync.WaitGroup
	for i, c := range o.collectors {
		wg.Add(1)
		go func(i int, c collector.Collector) {
			defer wg.Done()

			name := c.Name()
			snap, err := c.Collect(ctx, export)
			if err != nil {
				o.progress.Log("  [%s] unavailable: %v", name, err)
				return
			}
			o.progress.Log("  [%s] done", name)
			partials[i] = &snap
		}(i, c)
	}
	wg.Wait()

	// Merge in registration order for deterministic field precedence,
	// regardless of goroutine completion order.
	var snapshot model.HealthSnapshot
	for _, p := range partials {
		if p != nil {
			collector.Merge(&snapshot, *p)
		}
	}

	score := scoring.Compute(snapshot)

	report := &model.Report{
		Metadata: model.Metadata{
			Tool:          toolName,
			Version:       o.version,
			SchemaVersion: schemaVersion,
			ReportID:      uuid.NewString(),
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Source:        o.src.Name(),
			Duration:      time.Since(start).Round(time.Millisecond).String(),
		},
		Snapshot: snapshot,
		Score:    score,
	}

	if o.config.AIPrompt {
		report.AIContext = output.GenerateAIPrompt(report)
	}

	o.progress.Log("Scoring complete. overall=%d/100, risk=%s, recommendations=%d",
		score.Overall, score.RiskLevel, len(score.Recommendations))
	return report, nil
}

// BuildReport runs the full collector set against the configured input.
// This is the high-level entry point used by the CLI and the MCP server.
func BuildReport(ctx context.Context, cfg collector.CollectConfig, version string) (*model.Report, error) {
	src := source.ForInput(cfg.Input)
	orch := New(collector.All(), src, cfg, version)
	return orch.Run(ctx)
}
