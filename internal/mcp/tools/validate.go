package tools

import (
	"context"
	"sort"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/internal/schema"
)

// ValidateLogSchemaInput is the input for validate_log_schema.
type ValidateLogSchemaInput struct {
	Query      string `json:"query" jsonschema:"Search query selecting the messages to validate"`
	Range      int    `json:"range" jsonschema:"Lookback window in seconds counted from now"`
	Schema     string `json:"schema" jsonschema:"JSON Schema (Draft 2020-12) each message must satisfy, as a JSON string"`
	SampleSize int    `json:"sample_size,omitempty" jsonschema:"Messages to sample (default: 150, capped by the server)"`
	Filter     string `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>'"`
}

// ValidateLogSchemaOutput is the output for validate_log_schema.
type ValidateLogSchemaOutput struct {
	Query        string              `json:"query"`
	Summary      ValidationSummary   `json:"summary"`
	Failures     []MessageValidation `json:"failures,omitzero"`
	CommonErrors []CommonError       `json:"common_errors,omitempty"`
}

// ValidationSummary summarizes a validation run.
type ValidationSummary struct {
	MessagesChecked int  `json:"messages_checked"`
	ValidCount      int  `json:"valid_count"`
	InvalidCount    int  `json:"invalid_count"`
	AllValid        bool `json:"all_valid"`
}

// MessageValidation reports the schema violations of a single message.
// Messages that pass appear only in the summary counts.
type MessageValidation struct {
	MessageID string   `json:"message_id"`
	Errors    []string `json:"errors,omitzero"`
}

// CommonError represents a frequently occurring validation error.
type CommonError struct {
	Error     string `json:"error"`
	Frequency int    `json:"frequency"`
}

// ToolValidateLogSchema samples messages from a relative search and validates
// each one against a caller-supplied JSON Schema, reporting per-message
// failures and aggregate counts.
func ToolValidateLogSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateLogSchemaInput) (*sdkmcp.CallToolResult, ValidateLogSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateLogSchemaInput) (*sdkmcp.CallToolResult, ValidateLogSchemaOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, ValidateLogSchemaOutput{}, err
		}
		if err := validateRange(input.Range); err != nil {
			return nil, ValidateLogSchemaOutput{}, err
		}
		if input.Schema == "" {
			return nil, ValidateLogSchemaOutput{}, ErrInvalidInput("schema is required")
		}

		validator, err := schema.NewValidator(input.Schema)
		if err != nil {
			return nil, ValidateLogSchemaOutput{}, ErrInvalidInput("invalid schema: " + err.Error())
		}

		sampleSize, err := d.resolveSampleSize(input.SampleSize)
		if err != nil {
			return nil, ValidateLogSchemaOutput{}, err
		}

		resp, samples, err := fetchMessageSample(ctx, d, input.Query, input.Range, sampleSize, input.Filter)
		if err != nil {
			return nil, ValidateLogSchemaOutput{}, err
		}
		if len(samples) == 0 {
			return nil, ValidateLogSchemaOutput{}, ErrInvalidInput("no messages matched the query; widen the range or relax the query")
		}

		summary := ValidationSummary{
			MessagesChecked: len(samples),
		}
		failures := make([]MessageValidation, 0)

		for i, sample := range samples {
			result := validator.ValidateValue(sample)
			if result.Valid {
				summary.ValidCount++
				continue
			}
			summary.InvalidCount++
			failures = append(failures, MessageValidation{
				MessageID: messageLabel(sample, i),
				Errors:    result.Errors,
			})
		}
		summary.AllValid = summary.InvalidCount == 0

		// Aggregate common errors
		var commonErrors []CommonError
		if summary.InvalidCount > 0 {
			errorCounts := make(map[string]int)
			for _, f := range failures {
				for _, e := range f.Errors {
					errorCounts[e]++
				}
			}
			commonErrors = make([]CommonError, 0, len(errorCounts))
			for e, count := range errorCounts {
				commonErrors = append(commonErrors, CommonError{Error: e, Frequency: count})
			}
			sort.Slice(commonErrors, func(i, j int) bool {
				if commonErrors[i].Frequency != commonErrors[j].Frequency {
					return commonErrors[i].Frequency > commonErrors[j].Frequency
				}
				return commonErrors[i].Error < commonErrors[j].Error
			})
		}

		output := ValidateLogSchemaOutput{
			Query:        resp.Query,
			Summary:      summary,
			Failures:     failures,
			CommonErrors: commonErrors,
		}

		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, ValidateLogSchemaOutput{}, err
		}
		return result, output, nil
	}
}
