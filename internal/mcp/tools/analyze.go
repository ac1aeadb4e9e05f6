package tools

import (
	"context"

	"github.com/invopop/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/internal/schema"
)

// maxFieldExamples caps the distinct example values kept per field in
// analyze_log_fields output.
const maxFieldExamples = 3

// AnalyzeLogFieldsInput is the input for analyze_log_fields.
type AnalyzeLogFieldsInput struct {
	Query      string `json:"query" jsonschema:"Search query selecting the messages to analyze"`
	Range      int    `json:"range" jsonschema:"Lookback window in seconds counted from now"`
	SampleSize int    `json:"sample_size,omitempty" jsonschema:"Messages to sample (default: 150, capped by the server)"`
	Filter     string `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>'"`
}

// AnalyzeLogFieldsOutput is the output for analyze_log_fields.
type AnalyzeLogFieldsOutput struct {
	Query            string             `json:"query"`
	MessagesAnalyzed int                `json:"messages_analyzed"`
	TotalResults     int64              `json:"total_results"`
	Fields           []schema.FieldStat `json:"fields,omitzero"`
	Schema           *jsonschema.Schema `json:"schema,omitempty"`
}

// ToolAnalyzeLogFields samples messages from a relative search and derives
// per-field statistics plus an inferred JSON Schema for the message payloads.
// Analysis happens locally; the backend only serves the sample.
func ToolAnalyzeLogFields(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AnalyzeLogFieldsInput) (*sdkmcp.CallToolResult, AnalyzeLogFieldsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input AnalyzeLogFieldsInput) (*sdkmcp.CallToolResult, AnalyzeLogFieldsOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, AnalyzeLogFieldsOutput{}, err
		}
		if err := validateRange(input.Range); err != nil {
			return nil, AnalyzeLogFieldsOutput{}, err
		}
		sampleSize, err := d.resolveSampleSize(input.SampleSize)
		if err != nil {
			return nil, AnalyzeLogFieldsOutput{}, err
		}

		resp, samples, err := fetchMessageSample(ctx, d, input.Query, input.Range, sampleSize, input.Filter)
		if err != nil {
			return nil, AnalyzeLogFieldsOutput{}, err
		}
		if len(samples) == 0 {
			return nil, AnalyzeLogFieldsOutput{}, ErrInvalidInput("no messages matched the query; widen the range or relax the query")
		}

		analysis := schema.AnalyzeMessages(samples, schema.InferOptions{
			MaxExamples:  maxFieldExamples,
			RequireInAll: true,
		})

		output := AnalyzeLogFieldsOutput{
			Query:            resp.Query,
			MessagesAnalyzed: analysis.SampleCount,
			TotalResults:     resp.TotalResults,
			Fields:           analysis.Fields,
			Schema:           analysis.Schema,
		}

		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, AnalyzeLogFieldsOutput{}, err
		}
		return result, output, nil
	}
}
