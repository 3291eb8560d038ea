package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for cleanhub resources.
	uriScheme = "cleanhub://"

	// recentRuns bounds the runs resource.
	recentRuns = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent pipeline runs with their outcome and metrics",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{command}",
		Name:        "command-runs",
		Description: "Recent runs of one command (preprocess, train, eval, predict)",
		MIMEType:    "application/json",
	}, s.handleCommandRunsResource)
}

type runInfo struct {
	ID         string          `json:"id"`
	Command    string          `json:"command"`
	Status     string          `json:"status"`
	Detail     string          `json:"detail,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	DurationMS int64           `json:"duration_ms"`
	Metrics    *domain.Metrics `json:"metrics,omitempty"`
}

// handleRunsResource returns the most recent runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return s.runsResult(ctx, req.Params.URI, "")
}

// handleCommandRunsResource returns recent runs of a single command.
func (s *Server) handleCommandRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	command := extractCommand(req.Params.URI)
	if command == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.runsResult(ctx, req.Params.URI, command)
}

func (s *Server) runsResult(ctx context.Context, uri, command string) (*mcp.ReadResourceResult, error) {
	infos := make([]runInfo, 0)

	if s.ports.Runs != nil {
		limit := recentRuns
		if command != "" {
			limit = 0
		}
		runs, err := s.ports.Runs.List(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("listing runs: %w", err)
		}
		for i := range runs {
			if command != "" && runs[i].Command != command {
				continue
			}
			infos = append(infos, runInfo{
				ID:         runs[i].ID,
				Command:    runs[i].Command,
				Status:     string(runs[i].Status),
				Detail:     runs[i].Detail,
				StartedAt:  runs[i].StartedAt,
				DurationMS: runs[i].Duration().Milliseconds(),
				Metrics:    runs[i].Metrics,
			})
			if len(infos) == recentRuns {
				break
			}
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCommand extracts the command from a URI like cleanhub://runs/{command}.
func extractCommand(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	command := strings.TrimPrefix(uri, prefix)
	if strings.Contains(command, "/") {
		return ""
	}
	return command
}
