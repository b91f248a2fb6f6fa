package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
)

// Validator is the subset of the validator exposed as MCP tools.
type Validator interface {
	Validate(input models.ValidationInput) models.ValidationVerdict
	Summarize() models.Summary
}

// ValidateInput is the MCP tool input schema for a single validation.
type ValidateInput struct {
	RequestID string         `json:"request_id,omitempty" jsonschema:"optional request identifier, generated when empty"`
	Response  string         `json:"response" jsonschema:"agent response to validate"`
	Query     string         `json:"query" jsonschema:"user's original query"`
	Context   map[string]any `json:"context,omitempty" jsonschema:"optional context; a non-empty context suppresses hallucination heuristics"`
}

type SummaryInput struct{}

// NewValidateHandler returns a tool handler that validates one response.
// Pass the returned function to mcp.AddTool.
func NewValidateHandler(v Validator) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, models.ValidationVerdict, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, models.ValidationVerdict, error) {
		verdict := v.Validate(models.ValidationInput{
			RequestID: input.RequestID,
			Response:  input.Response,
			Query:     input.Query,
			Context:   input.Context,
		})

		// Clone turns nil slices into empty arrays for the structured output
		return nil, verdict.Clone(), nil
	}
}

// NewSummaryHandler returns a tool handler reporting the validation history summary.
func NewSummaryHandler(v Validator) func(context.Context, *mcp.CallToolRequest, SummaryInput) (*mcp.CallToolResult, map[string]any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, map[string]any, error) {
		return nil, v.Summarize().Map(), nil
	}
}

// Register adds the validation tools to the server.
func Register(server *mcp.Server, v Validator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_response",
		Description: "Validate an AI agent response for safety, hallucination indicators, relevance, prompt injection in the query, and coherence",
	}, NewValidateHandler(v))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validation_summary",
		Description: "Aggregate statistics over every validation performed by this server",
	}, NewSummaryHandler(v))
}
