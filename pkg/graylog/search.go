package graylog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RelativeSearchRequest is a universal search over the last Range seconds.
type RelativeSearchRequest struct {
	// Query is the search query in Graylog's query language.
	Query string
	// Range is the lookback window in seconds, counted from now.
	Range int
	SearchOptions
}

func (r *RelativeSearchRequest) values() url.Values {
	v := make(url.Values)
	v.Set("query", r.Query)
	v.Set("range", strconv.Itoa(r.Range))
	r.SearchOptions.apply(v)
	return v
}

// AbsoluteSearchRequest is a universal search between two fixed timestamps,
// in the format Graylog accepts ("2024-01-01 00:00:00" or ISO 8601).
type AbsoluteSearchRequest struct {
	Query string
	From  string
	To    string
	SearchOptions
}

func (r *AbsoluteSearchRequest) values() url.Values {
	v := make(url.Values)
	v.Set("query", r.Query)
	v.Set("from", r.From)
	v.Set("to", r.To)
	r.SearchOptions.apply(v)
	return v
}

// SearchRelative runs a relative-range universal search.
func (c *Client) SearchRelative(ctx context.Context, req RelativeSearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.get(ctx, "api/search/universal/relative", req.values(), &out); err != nil {
		return nil, fmt.Errorf("relative search: %w", err)
	}
	return &out, nil
}

// SearchAbsolute runs an absolute-range universal search.
func (c *Client) SearchAbsolute(ctx context.Context, req AbsoluteSearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.get(ctx, "api/search/universal/absolute", req.values(), &out); err != nil {
		return nil, fmt.Errorf("absolute search: %w", err)
	}
	return &out, nil
}
