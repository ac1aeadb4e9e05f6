package graylog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type fieldsResponse struct {
	Fields []string `json:"fields"`
}

// ListFields returns the message field names known to the indexer. A limit of
// 0 requests the backend's full list.
func (c *Client) ListFields(ctx context.Context, limit int) ([]string, error) {
	var query url.Values
	if limit > 0 {
		query = make(url.Values)
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp fieldsResponse
	if err := c.get(ctx, "api/system/fields", query, &resp); err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}
	return resp.Fields, nil
}
