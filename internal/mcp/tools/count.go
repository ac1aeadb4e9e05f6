package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// CountRelativeLogsInput is the input for count_relative_logs. It mirrors the
// search signature; limit is accepted but counts always request limit=0.
type CountRelativeLogsInput struct {
	Query    string   `json:"query" jsonschema:"Search query in Graylog's query language"`
	Range    int      `json:"range" jsonschema:"Lookback window in seconds counted from now"`
	Limit    int      `json:"limit,omitempty" jsonschema:"Accepted for signature parity with the search tools; counts never return messages"`
	Offset   int      `json:"offset,omitempty" jsonschema:"Accepted for signature parity with the search tools"`
	Sort     string   `json:"sort,omitempty" jsonschema:"Sort order as field:direction"`
	Filter   string   `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>'"`
	Fields   []string `json:"fields,omitempty" jsonschema:"Message fields, passed through to the backend"`
	Decorate *bool    `json:"decorate,omitempty" jsonschema:"Whether message decorators run (backend default: true)"`
}

// CountAbsoluteLogsInput is the input for count_absolute_logs.
type CountAbsoluteLogsInput struct {
	Query    string   `json:"query" jsonschema:"Search query in Graylog's query language"`
	From     string   `json:"from" jsonschema:"Start of the time range, e.g. '2024-01-01 00:00:00' or ISO 8601"`
	To       string   `json:"to" jsonschema:"End of the time range, same formats as from"`
	Limit    int      `json:"limit,omitempty" jsonschema:"Accepted for signature parity with the search tools; counts never return messages"`
	Offset   int      `json:"offset,omitempty" jsonschema:"Accepted for signature parity with the search tools"`
	Sort     string   `json:"sort,omitempty" jsonschema:"Sort order as field:direction"`
	Filter   string   `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>'"`
	Fields   []string `json:"fields,omitempty" jsonschema:"Message fields, passed through to the backend"`
	Decorate *bool    `json:"decorate,omitempty" jsonschema:"Whether message decorators run (backend default: true)"`
}

// ToolCountRelativeLogs counts matches in a relative time window without
// fetching messages.
func ToolCountRelativeLogs(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CountRelativeLogsInput) (*sdkmcp.CallToolResult, CountLogsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CountRelativeLogsInput) (*sdkmcp.CallToolResult, CountLogsOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, CountLogsOutput{}, err
		}
		if err := validateRange(input.Range); err != nil {
			return nil, CountLogsOutput{}, err
		}
		if err := d.validateWindow(input.Limit, input.Offset); err != nil {
			return nil, CountLogsOutput{}, err
		}
		if err := validateFields(input.Fields); err != nil {
			return nil, CountLogsOutput{}, err
		}

		resp, err := d.Client.SearchRelative(ctx, graylog.RelativeSearchRequest{
			Query:         input.Query,
			Range:         input.Range,
			SearchOptions: countOptions(input.Offset, input.Sort, input.Filter, input.Fields, input.Decorate),
		})
		if err != nil {
			return nil, CountLogsOutput{}, WrapGraylogError(err)
		}

		output := FormatCountResult(resp)
		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, CountLogsOutput{}, err
		}
		return result, output, nil
	}
}

// ToolCountAbsoluteLogs counts matches between two fixed timestamps without
// fetching messages.
func ToolCountAbsoluteLogs(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CountAbsoluteLogsInput) (*sdkmcp.CallToolResult, CountLogsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CountAbsoluteLogsInput) (*sdkmcp.CallToolResult, CountLogsOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, CountLogsOutput{}, err
		}
		if err := validateTimerange(input.From, input.To); err != nil {
			return nil, CountLogsOutput{}, err
		}
		if err := d.validateWindow(input.Limit, input.Offset); err != nil {
			return nil, CountLogsOutput{}, err
		}
		if err := validateFields(input.Fields); err != nil {
			return nil, CountLogsOutput{}, err
		}

		resp, err := d.Client.SearchAbsolute(ctx, graylog.AbsoluteSearchRequest{
			Query:         input.Query,
			From:          input.From,
			To:            input.To,
			SearchOptions: countOptions(input.Offset, input.Sort, input.Filter, input.Fields, input.Decorate),
		})
		if err != nil {
			return nil, CountLogsOutput{}, WrapGraylogError(err)
		}

		output := FormatCountResult(resp)
		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, CountLogsOutput{}, err
		}
		return result, output, nil
	}
}

// countOptions builds the request options for count calls: limit is pinned to
// 0 so the backend skips message retrieval, and offset is always sent so the
// request is explicit about where counting starts.
func countOptions(offset int, sort, filter string, fields []string, decorate *bool) graylog.SearchOptions {
	return graylog.SearchOptions{
		Limit:    intPtr(0),
		Offset:   intPtr(offset),
		Sort:     sort,
		Filter:   filter,
		Fields:   fields,
		Decorate: decorate,
	}
}
