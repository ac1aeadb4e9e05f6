// Package cache provides caching utilities for the MCP server.
package cache

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/usestring/graylog-mcp/pkg/graylog"
)

const streamsKey = "streams"

// MetadataCache holds short-lived copies of backend metadata: the stream
// listing and the indexed-field listings. Search results are never cached;
// every query goes to the backend.
type MetadataCache struct {
	streams *expirable.LRU[string, *graylog.StreamsPage]
	fields  *expirable.LRU[string, []string]
}

// New creates a metadata cache. Entries expire after ttl whether or not they
// were read; size bounds the field listings, which are keyed per limit.
func New(size int, ttl time.Duration) *MetadataCache {
	return &MetadataCache{
		streams: expirable.NewLRU[string, *graylog.StreamsPage](size, nil, ttl),
		fields:  expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

// Streams returns the cached stream listing, if fresh.
func (c *MetadataCache) Streams() (*graylog.StreamsPage, bool) {
	return c.streams.Get(streamsKey)
}

// PutStreams stores the stream listing.
func (c *MetadataCache) PutStreams(page *graylog.StreamsPage) {
	c.streams.Add(streamsKey, page)
}

// Fields returns the cached field listing for the given limit, if fresh.
// Limit 0 is the full listing.
func (c *MetadataCache) Fields(limit int) ([]string, bool) {
	return c.fields.Get(strconv.Itoa(limit))
}

// PutFields stores a field listing under its limit.
func (c *MetadataCache) PutFields(limit int, fields []string) {
	c.fields.Add(strconv.Itoa(limit), fields)
}
