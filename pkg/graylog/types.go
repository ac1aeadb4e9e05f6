package graylog

import "fmt"

// SearchResponse is the result of a universal search call. Graylog returns
// more fields than these; only the ones consumed by callers are decoded.
type SearchResponse struct {
	Query        string          `json:"query"`
	TookMs       float64         `json:"took_ms"`
	TotalResults int64           `json:"total_results"`
	Messages     []ResultMessage `json:"messages"`
}

// ResultMessage is a single search hit. Message holds the stored document as
// returned by the backend. Highlight, when the backend produced one, maps
// field names to highlighting data; it stays nil when absent from the wire.
type ResultMessage struct {
	Index     string         `json:"index"`
	Message   map[string]any `json:"message"`
	Highlight map[string]any `json:"highlight,omitzero"`
}

// Stream is a Graylog stream as reported by the streams endpoint.
type Stream struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Disabled    bool   `json:"disabled"`
	IsDefault   bool   `json:"is_default"`
}

// StreamsPage is the streams listing.
type StreamsPage struct {
	Total   int      `json:"total"`
	Streams []Stream `json:"streams"`
}

// SystemInfo describes the node answering on the configured base URL.
type SystemInfo struct {
	ClusterID    string `json:"cluster_id"`
	NodeID       string `json:"node_id"`
	Version      string `json:"version"`
	Hostname     string `json:"hostname"`
	IsProcessing bool   `json:"is_processing"`
	LBStatus     string `json:"lb_status"`
	StartedAt    string `json:"started_at"`
}

// ClusterNode is one member of the Graylog cluster.
type ClusterNode struct {
	NodeID           string `json:"node_id"`
	Hostname         string `json:"hostname"`
	TransportAddress string `json:"transport_address"`
	IsLeader         bool   `json:"is_leader"`
}

// SystemOverview aggregates the node, cluster and message-count snapshots.
type SystemOverview struct {
	System        SystemInfo    `json:"system"`
	Nodes         []ClusterNode `json:"nodes"`
	TotalMessages int64         `json:"total_messages"`
}

// APIError is returned when Graylog answers with a status outside the 2xx
// range. Status carries the full status line ("403 Forbidden"), Body the
// error message Graylog sent alongside it.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("graylog API error: %s", e.Status)
	}
	return fmt.Sprintf("graylog API error: %s: %s", e.Status, e.Body)
}

// TransportError is returned when the request never produced an HTTP
// response: connection refused, DNS failure, timeout. URL is the full
// request URL.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("contacting Graylog at %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorResponse is the JSON error envelope Graylog uses.
type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
