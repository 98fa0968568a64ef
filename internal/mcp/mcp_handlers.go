package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svisuals/seq4d/core"
	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleResolveRecords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SchedulePath = request.GetString("schedule", "")
	if s := request.GetString("source", ""); s != "" {
		cfg.Source = schema.DateSource(s)
	}
	if f := request.GetInt("frames", 0); f > 0 {
		cfg.TotalFrames = f
	}
	if err := applyDateParams(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid resolution parameters: %v", err)), nil
	}
	if g := request.GetString("groups", ""); g != "" {
		stack, err := contract.ParseGroupStack(g)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid resolution parameters: %v", err)), nil
		}
		cfg.GroupStack = stack
	}

	output, err := core.GetResolutionResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolution failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SchedulePath = request.GetString("schedule", "")
	if s := request.GetString("source", ""); s != "" {
		cfg.Source = schema.DateSource(s)
	}
	if err := applyDateParams(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid snapshot parameters: %v", err)), nil
	}

	snapshot, err := core.GetSnapshotResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("snapshot failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(snapshot, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleTimelineMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SchedulePath = request.GetString("schedule", "")
	if err := applyDateParams(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics parameters: %v", err)), nil
	}

	metrics, err := core.GetMetricsResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("metrics failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListProfileGroups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var names []string
	if n := request.GetString("name", ""); n != "" {
		names = append(names, n)
	}

	groups, err := core.GetProfileGroupsResults(ctx, names...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(groups, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// applyDateParams parses the optional date, start, and finish strings shared
// by several tools into the cloned config.
func applyDateParams(cfg *contract.Config, request mcp.CallToolRequest) error {
	now := time.Now()
	if d := request.GetString("date", ""); d != "" {
		t, err := contract.ParseDate(d, now)
		if err != nil {
			return fmt.Errorf("invalid date '%s': %w", d, err)
		}
		cfg.Date = t
	}
	if s := request.GetString("start", ""); s != "" {
		t, err := contract.ParseDate(s, now)
		if err != nil {
			return fmt.Errorf("invalid start date '%s': %w", s, err)
		}
		cfg.VizStart = t
	}
	if f := request.GetString("finish", ""); f != "" {
		t, err := contract.ParseDate(f, now)
		if err != nil {
			return fmt.Errorf("invalid finish date '%s': %w", f, err)
		}
		cfg.VizFinish = t
	}
	return nil
}
