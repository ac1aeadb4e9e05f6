package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// ListStreamsInput is the input for list_streams.
type ListStreamsInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"Bypass the metadata cache and refetch from the backend"`
}

// StreamInfo is a summary of a stream.
type StreamInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled"`
	IsDefault   bool   `json:"is_default"`
}

// ListStreamsOutput is the output for list_streams.
type ListStreamsOutput struct {
	Total   int          `json:"total"`
	Streams []StreamInfo `json:"streams,omitzero"`
}

// ToolListStreams lists the streams visible to the configured user. Results
// are served from the metadata cache while fresh.
func ToolListStreams(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListStreamsInput) (*sdkmcp.CallToolResult, ListStreamsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListStreamsInput) (*sdkmcp.CallToolResult, ListStreamsOutput, error) {
		var page *graylog.StreamsPage
		if !input.Refresh {
			if cached, ok := d.Metadata.Streams(); ok {
				page = cached
			}
		}
		if page == nil {
			fetched, err := d.Client.ListStreams(ctx)
			if err != nil {
				return nil, ListStreamsOutput{}, WrapGraylogError(err)
			}
			d.Metadata.PutStreams(fetched)
			page = fetched
		}

		output := ListStreamsOutput{
			Total:   page.Total,
			Streams: make([]StreamInfo, len(page.Streams)),
		}
		for i, s := range page.Streams {
			output.Streams[i] = StreamInfo{
				ID:          s.ID,
				Title:       s.Title,
				Description: s.Description,
				Disabled:    s.Disabled,
				IsDefault:   s.IsDefault,
			}
		}

		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, ListStreamsOutput{}, err
		}
		return result, output, nil
	}
}
