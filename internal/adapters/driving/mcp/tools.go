package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// AnalyzeInput is the input schema for the analyze_text tool.
type AnalyzeInput struct {
	Text  string `json:"text" jsonschema:"the paper, essay or abstract to score (at least 20 characters)"`
	Title string `json:"title,omitempty" jsonschema:"optional label for the analysis in history"`
	Save  bool   `json:"save,omitempty" jsonschema:"record the analysis in local history (default false)"`
}

// AnalyzeOutput is the output schema for the analyze_text tool.
type AnalyzeOutput struct {
	Composite           float64         `json:"composite"`
	Language            float64         `json:"language"`
	Coherence           float64         `json:"coherence"`
	Reasoning           float64         `json:"reasoning"`
	Band                string          `json:"band"`
	Diagnostics         domain.Features `json:"diagnostics"`
	TopFlaggedSentences []string        `json:"top_flagged_sentences"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Score a paper, essay or abstract with heuristic quality metrics",
	}, s.handleAnalyzeText)
}

// handleAnalyzeText handles the analyze_text tool invocation.
func (s *Server) handleAnalyzeText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	analysis, err := s.ports.Analyzer.Analyze(ctx, input.Text, driving.AnalyzeOptions{
		Title:  input.Title,
		Source: "mcp",
		NoSave: !input.Save,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		Composite:           analysis.Scores.Composite,
		Language:            analysis.Scores.Language,
		Coherence:           analysis.Scores.Coherence,
		Reasoning:           analysis.Scores.Reasoning,
		Band:                analysis.Scores.Band(),
		Diagnostics:         analysis.Features,
		TopFlaggedSentences: analysis.Flagged,
	}

	return nil, output, nil
}
