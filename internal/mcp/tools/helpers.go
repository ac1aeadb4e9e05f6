// Package tools contains the MCP tool implementations for Graylog.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// MakeJSONToolResult creates a CallToolResult whose text content is the
// pretty-printed JSON form of v, two-space indented for readability in
// agent transcripts.
func MakeJSONToolResult(v any) (*sdkmcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(b)},
		},
	}, nil
}

func intPtr(v int) *int {
	return &v
}

// resolveSampleSize turns a requested sample_size into an effective search
// limit: the default search limit when unset, capped at the configured
// analysis ceiling.
func (d *Deps) resolveSampleSize(requested int) (int, error) {
	if requested < 0 {
		return 0, ErrInvalidInput("sample_size must not be negative")
	}
	size := requested
	if size == 0 {
		size = d.Config.DefaultSearchLimit
	}
	if size > d.Config.AnalyzeSampleLimit {
		size = d.Config.AnalyzeSampleLimit
	}
	return size, nil
}

// messageLabel names a sampled message for error reporting, preferring the
// backend-assigned _id over the sample position.
func messageLabel(sample map[string]any, position int) string {
	if id, ok := sample["_id"].(string); ok && id != "" {
		return id
	}
	return fmt.Sprintf("message[%d]", position)
}

// fetchMessageSample runs a relative search and returns the response together
// with the decoded message payloads, one map per result message.
func fetchMessageSample(ctx context.Context, d *Deps, query string, rangeSecs, limit int, filter string) (*graylog.SearchResponse, []map[string]any, error) {
	resp, err := d.Client.SearchRelative(ctx, graylog.RelativeSearchRequest{
		Query: query,
		Range: rangeSecs,
		SearchOptions: graylog.SearchOptions{
			Limit:  &limit,
			Filter: filter,
		},
	})
	if err != nil {
		return nil, nil, WrapGraylogError(err)
	}

	samples := make([]map[string]any, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		if m.Message == nil {
			continue
		}
		samples = append(samples, m.Message)
	}
	return resp, samples, nil
}
