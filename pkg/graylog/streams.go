package graylog

import (
	"context"
	"fmt"
)

// ListStreams returns every stream visible to the configured user. Stream IDs
// are what the search endpoints expect in a "streams:<id>" filter.
func (c *Client) ListStreams(ctx context.Context) (*StreamsPage, error) {
	var page StreamsPage
	if err := c.get(ctx, "api/streams", nil, &page); err != nil {
		return nil, fmt.Errorf("listing streams: %w", err)
	}
	return &page, nil
}
