// Package mcp exposes the scoring engine over the Model Context Protocol
// so AI agents can score snapshots and interpret the results.
package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server instance.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with registered tools.
func NewServer(version string) *Server {
	s := server.NewMCPServer("vitality", version, server.WithLogging())

	registerTools(s, version)

	return &Server{
		mcpServer: s,
	}
}

// Start runs the server in stdio mode (blocking).
func (s *Server) Start(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// registerTools adds all supported tools to the server.
func registerTools(s *server.MCPServer, version string) {
	// Tool: compute_score
	computeTool := mcp.NewTool("compute_score",
		mcp.WithDescription("Score a biometric snapshot directly. Every field is optional; missing readings simply skip their contribution. Returns the 0-100 overall score, the four-dimension breakdown, a risk tier, and recommendations."),
		mcp.WithNumber("step_count", mcp.Description("Daily step count")),
		mcp.WithNumber("heart_rate", mcp.Description("Instantaneous heart rate, bpm")),
		mcp.WithNumber("resting_heart_rate", mcp.Description("Resting heart rate, bpm")),
		mcp.WithNumber("weight_kg", mcp.Description("Body weight, kg")),
		mcp.WithNumber("height_cm", mcp.Description("Height, cm")),
		mcp.WithNumber("bmi", mcp.Description("Body mass index; derived from weight/height when omitted")),
		mcp.WithNumber("active_energy_kcal", mcp.Description("Active energy burned today, kcal")),
		mcp.WithNumber("age", mcp.Description("Age in years")),
		mcp.WithString("biological_sex",
			mcp.Description("Biological sex"),
			mcp.Enum("male", "female", "other"),
		),
	)
	s.AddTool(computeTool, handleComputeScore)

	// Tool: score_export
	exportTool := mcp.NewTool("score_export",
		mcp.WithDescription("Run the full pipeline against a provider export (file path or URL): collect readings, assemble a snapshot, and return the complete wellness report."),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Path to an export file (JSON or YAML) or a provider URL"),
		),
	)
	s.AddTool(exportTool, makeScoreExportHandler(version))

	// Tool: explain_dimension
	explainTool := mcp.NewTool("explain_dimension",
		mcp.WithDescription("Get a detailed explanation of a score dimension or risk tier: what feeds it, common causes of low values, and how to improve. Use list_dimensions to discover IDs."),
		mcp.WithString("dimension_id",
			mcp.Required(),
			mcp.Description("Dimension or tier ID (e.g., 'cardiovascular', 'risk_high'). Use list_dimensions to see all."),
		),
	)
	s.AddTool(explainTool, handleExplainDimension)

	// Tool: list_dimensions
	listTool := mcp.NewTool("list_dimensions",
		mcp.WithDescription("List all known dimension and risk tier IDs with brief descriptions. Use with explain_dimension for details."),
	)
	s.AddTool(listTool, handleListDimensions)
}
