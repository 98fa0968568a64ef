// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/svisuals/seq4d/internal/contract"
)

// NewMCPServer initializes and configures the seq4d MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Seq4D Resolver Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: resolve_records ---
	s.AddTool(mcp.NewTool("resolve_records",
		mcp.WithDescription("Resolve a task schedule into per-product frame records with visibility decisions."),
		mcp.WithString("schedule", mcp.Description("Path to the schedule file (YAML or JSON)."), mcp.Required()),
		mcp.WithString("source", mcp.Description("Task date set driving the mapping (schedule, actual, early, late, unified). Defaults to 'schedule'."), mcp.Enum("schedule", "actual", "early", "late", "unified")),
		mcp.WithString("start", mcp.Description("Visualization start date (defaults to the earliest task date).")),
		mcp.WithString("finish", mcp.Description("Visualization finish date (defaults to the latest task date).")),
		mcp.WithNumber("frames", mcp.Description("Total frame count for the animation axis.")),
		mcp.WithString("groups", mcp.Description("Comma-separated profile group enable-stack override, e.g. 'Structural,Finishes:off'.")),
	), h.handleResolveRecords)

	// --- 2. Tool: get_snapshot ---
	s.AddTool(mcp.NewTool("get_snapshot",
		mcp.WithDescription("Classify every product in a schedule at a single date (built, in construction, demolished, etc.)."),
		mcp.WithString("schedule", mcp.Description("Path to the schedule file."), mcp.Required()),
		mcp.WithString("date", mcp.Description("Query date (defaults to now).")),
		mcp.WithString("source", mcp.Description("Task date set to classify against."), mcp.Enum("schedule", "actual", "early", "late", "unified")),
	), h.handleGetSnapshot)

	// --- 3. Tool: timeline_metrics ---
	s.AddTool(mcp.NewTool("timeline_metrics",
		mcp.WithDescription("Compute elapsed day, week number, and progress percentage for a date within the schedule range."),
		mcp.WithString("schedule", mcp.Description("Path to the schedule file."), mcp.Required()),
		mcp.WithString("date", mcp.Description("Query date (defaults to now).")),
		mcp.WithString("start", mcp.Description("Explicit range start.")),
		mcp.WithString("finish", mcp.Description("Explicit range finish.")),
	), h.handleTimelineMetrics)

	// --- 4. Tool: list_profile_groups ---
	s.AddTool(mcp.NewTool("list_profile_groups",
		mcp.WithDescription("List appearance profile groups, including the built-in DEFAULT group."),
		mcp.WithString("name", mcp.Description("Return only the named group.")),
	), h.handleListProfileGroups)

	return s
}

// StartMCPServer starts the seq4d MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
