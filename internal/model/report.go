package model

// Report is the complete vitality output document.
type Report struct {
	Metadata  Metadata       `json:"metadata"`
	Snapshot  HealthSnapshot `json:"snapshot"`
	Score     ScoreResult    `json:"score"`
	AIContext *AIContext     `json:"ai_context,omitempty"`
}

// Metadata identifies the scoring run.
type Metadata struct {
	Tool          string `json:"tool"`
	Version       string `json:"version"`
	SchemaVersion string `json:"schema_version"`
	ReportID      string `json:"report_id"`
	Timestamp     string `json:"timestamp"`
	Source        string `json:"source"`
	Duration      string `json:"duration"`
}

// AIContext carries an optional analysis prompt for AI consumers.
type AIContext struct {
	Prompt        string   `json:"prompt"`
	Methodology   string   `json:"methodology"`
	KnownPatterns []string `json:"known_patterns"`
}
