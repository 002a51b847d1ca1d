package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for PaperIQ resources.
	uriScheme = "paperiq://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing the analysis history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent analyses with their scores",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for a single stored analysis.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{analysisId}",
		Name:        "analysis",
		Description: "One stored analysis in full, including flagged sentences",
		MIMEType:    "application/json",
	}, s.handleAnalysisResource)
}

// handleHistoryResource returns the recent analysis history.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	analyses, err := s.ports.History.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	// Build simplified history list.
	type entryInfo struct {
		ID        string    `json:"id"`
		Title     string    `json:"title,omitempty"`
		Composite float64   `json:"composite"`
		Band      string    `json:"band"`
		CreatedAt time.Time `json:"created_at"`
	}

	infos := make([]entryInfo, len(analyses))
	for i := range analyses {
		infos[i] = entryInfo{
			ID:        analyses[i].ID,
			Title:     analyses[i].Title,
			Composite: analyses[i].Scores.Composite,
			Band:      analyses[i].Scores.Band(),
			CreatedAt: analyses[i].CreatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleAnalysisResource returns one stored analysis in full.
func (s *Server) handleAnalysisResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract analysisId from URI: paperiq://history/{analysisId}
	id := extractAnalysisID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	analysis, err := s.ports.History.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting analysis: %w", err)
	}

	payload := map[string]any{
		"id":                    analysis.ID,
		"title":                 analysis.Title,
		"source":                analysis.Source,
		"scores":                analysis.Scores,
		"band":                  analysis.Scores.Band(),
		"diagnostics":           analysis.Features,
		"top_flagged_sentences": analysis.Flagged,
		"sentiment_analysis":    analysis.Sentiments,
		"created_at":            analysis.CreatedAt,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling analysis: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractAnalysisID extracts the ID from a URI like paperiq://history/{analysisId}.
func extractAnalysisID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
