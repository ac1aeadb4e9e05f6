package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/internal/query"
)

// ExtractLogValuesInput is the input for extract_log_values.
type ExtractLogValuesInput struct {
	Query       string `json:"query" jsonschema:"Search query selecting the messages to extract from"`
	Range       int    `json:"range" jsonschema:"Lookback window in seconds counted from now"`
	Expression  string `json:"expression" jsonschema:"jq expression applied to each message, e.g. '.source' or '{host: .source, level: .level}'"`
	Deduplicate bool   `json:"deduplicate,omitempty" jsonschema:"Collapse equal extracted values into one"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"Cap on extracted values (default: 200, capped by the server)"`
	Filter      string `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>'"`
}

// ExtractLogValuesOutput is the output for extract_log_values.
type ExtractLogValuesOutput struct {
	Query           string   `json:"query"`
	Expression      string   `json:"expression"`
	Values          []any    `json:"values,omitzero"`
	Errors          []string `json:"errors,omitzero"`
	MessagesSampled int      `json:"messages_sampled"`
	MatchedMessages int      `json:"matched_messages"`
	RawCount        int      `json:"raw_count"`
}

// ToolExtractLogValues samples messages from a relative search and applies a
// jq expression to every message, returning the extracted values. The
// expression is rejected before any search request is made.
func ToolExtractLogValues(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExtractLogValuesInput) (*sdkmcp.CallToolResult, ExtractLogValuesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExtractLogValuesInput) (*sdkmcp.CallToolResult, ExtractLogValuesOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, ExtractLogValuesOutput{}, err
		}
		if err := validateRange(input.Range); err != nil {
			return nil, ExtractLogValuesOutput{}, err
		}
		if input.Expression == "" {
			return nil, ExtractLogValuesOutput{}, ErrInvalidInput("expression is required")
		}
		if err := d.Query.ValidateExpression(input.Expression); err != nil {
			return nil, ExtractLogValuesOutput{}, ErrInvalidInput(err.Error())
		}

		maxResults := input.MaxResults
		if maxResults < 0 {
			return nil, ExtractLogValuesOutput{}, ErrInvalidInput("max_results must not be negative")
		}
		if maxResults == 0 || maxResults > d.Config.ExtractMaxResults {
			maxResults = d.Config.ExtractMaxResults
		}

		resp, samples, err := fetchMessageSample(ctx, d, input.Query, input.Range, d.Config.AnalyzeSampleLimit, input.Filter)
		if err != nil {
			return nil, ExtractLogValuesOutput{}, err
		}
		if len(samples) == 0 {
			return nil, ExtractLogValuesOutput{}, ErrInvalidInput("no messages matched the query; widen the range or relax the query")
		}

		labels := make([]string, len(samples))
		for i, sample := range samples {
			labels[i] = messageLabel(sample, i)
		}

		extracted, err := d.Query.Extract(samples, labels, input.Expression, query.Options{
			Deduplicate: input.Deduplicate,
			MaxResults:  maxResults,
		})
		if err != nil {
			return nil, ExtractLogValuesOutput{}, ErrInvalidInput(err.Error())
		}

		output := ExtractLogValuesOutput{
			Query:           resp.Query,
			Expression:      input.Expression,
			Values:          extracted.Values,
			Errors:          extracted.Errors,
			MessagesSampled: len(samples),
			MatchedMessages: extracted.Matched,
			RawCount:        extracted.RawCount,
		}

		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, ExtractLogValuesOutput{}, err
		}
		return result, output, nil
	}
}
