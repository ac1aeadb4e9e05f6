package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListFieldsInput is the input for list_fields.
type ListFieldsInput struct {
	Limit   int  `json:"limit,omitempty" jsonschema:"Max number of field names to return; the full list when omitted"`
	Refresh bool `json:"refresh,omitempty" jsonschema:"Bypass the metadata cache and refetch from the backend"`
}

// ListFieldsOutput is the output for list_fields.
type ListFieldsOutput struct {
	Fields []string `json:"fields,omitzero"`
	Count  int      `json:"count"`
}

// ToolListFields lists the message field names the indexer knows about,
// useful for choosing the fields argument of the search tools. Results are
// served from the metadata cache while fresh.
func ToolListFields(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListFieldsInput) (*sdkmcp.CallToolResult, ListFieldsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListFieldsInput) (*sdkmcp.CallToolResult, ListFieldsOutput, error) {
		if input.Limit < 0 {
			return nil, ListFieldsOutput{}, ErrInvalidInput("limit must not be negative")
		}

		var fields []string
		haveCached := false
		if !input.Refresh {
			fields, haveCached = d.Metadata.Fields(input.Limit)
		}
		if !haveCached {
			fetched, err := d.Client.ListFields(ctx, input.Limit)
			if err != nil {
				return nil, ListFieldsOutput{}, WrapGraylogError(err)
			}
			d.Metadata.PutFields(input.Limit, fetched)
			fields = fetched
		}

		output := ListFieldsOutput{
			Fields: fields,
			Count:  len(fields),
		}
		if output.Fields == nil {
			output.Fields = []string{}
		}

		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, ListFieldsOutput{}, err
		}
		return result, output, nil
	}
}
