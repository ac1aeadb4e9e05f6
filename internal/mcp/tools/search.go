package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// SearchRelativeLogsInput is the input for search_relative_logs.
type SearchRelativeLogsInput struct {
	Query    string   `json:"query" jsonschema:"Search query in Graylog's query language, e.g. 'source:web-01 AND level:3'"`
	Range    int      `json:"range" jsonschema:"Lookback window in seconds counted from now, e.g. 3600 for the last hour"`
	Limit    int      `json:"limit,omitempty" jsonschema:"Max messages to return (default: 150, max: 1000)"`
	Offset   int      `json:"offset,omitempty" jsonschema:"Number of matching messages to skip"`
	Sort     string   `json:"sort,omitempty" jsonschema:"Sort order as field:direction, e.g. 'timestamp:desc'"`
	Filter   string   `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>' to search a single stream (IDs from list_streams)"`
	Fields   []string `json:"fields,omitempty" jsonschema:"Message fields to return; all stored fields when omitted"`
	Decorate *bool    `json:"decorate,omitempty" jsonschema:"Whether message decorators run on the results (backend default: true)"`
}

// SearchAbsoluteLogsInput is the input for search_absolute_logs.
type SearchAbsoluteLogsInput struct {
	Query    string   `json:"query" jsonschema:"Search query in Graylog's query language"`
	From     string   `json:"from" jsonschema:"Start of the time range, e.g. '2024-01-01 00:00:00' or ISO 8601"`
	To       string   `json:"to" jsonschema:"End of the time range, same formats as from"`
	Limit    int      `json:"limit,omitempty" jsonschema:"Max messages to return (default: 150, max: 1000)"`
	Offset   int      `json:"offset,omitempty" jsonschema:"Number of matching messages to skip"`
	Sort     string   `json:"sort,omitempty" jsonschema:"Sort order as field:direction, e.g. 'timestamp:desc'"`
	Filter   string   `json:"filter,omitempty" jsonschema:"Additional filter, e.g. 'streams:<id>' to search a single stream (IDs from list_streams)"`
	Fields   []string `json:"fields,omitempty" jsonschema:"Message fields to return; all stored fields when omitted"`
	Decorate *bool    `json:"decorate,omitempty" jsonschema:"Whether message decorators run on the results (backend default: true)"`
}

// ToolSearchRelativeLogs searches messages within a relative time window.
func ToolSearchRelativeLogs(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchRelativeLogsInput) (*sdkmcp.CallToolResult, SearchLogsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchRelativeLogsInput) (*sdkmcp.CallToolResult, SearchLogsOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, SearchLogsOutput{}, err
		}
		if err := validateRange(input.Range); err != nil {
			return nil, SearchLogsOutput{}, err
		}
		if err := d.validateWindow(input.Limit, input.Offset); err != nil {
			return nil, SearchLogsOutput{}, err
		}
		if err := validateFields(input.Fields); err != nil {
			return nil, SearchLogsOutput{}, err
		}

		limit := input.Limit
		if limit == 0 {
			limit = d.Config.DefaultSearchLimit
		}
		opts := graylog.SearchOptions{
			Limit:    &limit,
			Sort:     input.Sort,
			Filter:   input.Filter,
			Fields:   input.Fields,
			Decorate: input.Decorate,
		}
		if input.Offset > 0 {
			opts.Offset = &input.Offset
		}

		resp, err := d.Client.SearchRelative(ctx, graylog.RelativeSearchRequest{
			Query:         input.Query,
			Range:         input.Range,
			SearchOptions: opts,
		})
		if err != nil {
			return nil, SearchLogsOutput{}, WrapGraylogError(err)
		}

		output := FormatSearchResult(resp)
		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, SearchLogsOutput{}, err
		}
		return result, output, nil
	}
}

// ToolSearchAbsoluteLogs searches messages between two fixed timestamps.
func ToolSearchAbsoluteLogs(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchAbsoluteLogsInput) (*sdkmcp.CallToolResult, SearchLogsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchAbsoluteLogsInput) (*sdkmcp.CallToolResult, SearchLogsOutput, error) {
		if err := validateQuery(input.Query); err != nil {
			return nil, SearchLogsOutput{}, err
		}
		if err := validateTimerange(input.From, input.To); err != nil {
			return nil, SearchLogsOutput{}, err
		}
		if err := d.validateWindow(input.Limit, input.Offset); err != nil {
			return nil, SearchLogsOutput{}, err
		}
		if err := validateFields(input.Fields); err != nil {
			return nil, SearchLogsOutput{}, err
		}

		limit := input.Limit
		if limit == 0 {
			limit = d.Config.DefaultSearchLimit
		}
		opts := graylog.SearchOptions{
			Limit:    &limit,
			Sort:     input.Sort,
			Filter:   input.Filter,
			Fields:   input.Fields,
			Decorate: input.Decorate,
		}
		if input.Offset > 0 {
			opts.Offset = &input.Offset
		}

		resp, err := d.Client.SearchAbsolute(ctx, graylog.AbsoluteSearchRequest{
			Query:         input.Query,
			From:          input.From,
			To:            input.To,
			SearchOptions: opts,
		})
		if err != nil {
			return nil, SearchLogsOutput{}, WrapGraylogError(err)
		}

		output := FormatSearchResult(resp)
		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, SearchLogsOutput{}, err
		}
		return result, output, nil
	}
}

// validateQuery rejects empty queries before anything goes over the wire.
func validateQuery(query string) error {
	if query == "" {
		return ErrInvalidInput("query must not be empty")
	}
	return nil
}

func validateRange(rangeSecs int) error {
	if rangeSecs <= 0 {
		return ErrInvalidInput("range must be a positive number of seconds")
	}
	return nil
}

func validateTimerange(from, to string) error {
	if from == "" {
		return ErrInvalidInput("from must not be empty")
	}
	if to == "" {
		return ErrInvalidInput("to must not be empty")
	}
	return nil
}

func validateFields(fields []string) error {
	for _, f := range fields {
		if f == "" {
			return ErrInvalidInput("fields must not contain empty names")
		}
	}
	return nil
}

// validateWindow bounds limit and offset against the configured maximum.
func (d *Deps) validateWindow(limit, offset int) error {
	if limit < 0 || limit > d.Config.MaxSearchLimit {
		return ErrInvalidInput(fmt.Sprintf("limit must be between 1 and %d", d.Config.MaxSearchLimit))
	}
	if offset < 0 {
		return ErrInvalidInput("offset must not be negative")
	}
	return nil
}
