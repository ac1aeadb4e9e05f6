package tools

import (
	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// MessageEntry is one search hit as presented to the caller.
type MessageEntry struct {
	Index     string         `json:"index"`
	Message   map[string]any `json:"message"`
	Highlight map[string]any `json:"highlight,omitzero"`
}

// SearchLogsOutput is the output of the search tools.
type SearchLogsOutput struct {
	Query        string         `json:"query"`
	TookMs       float64        `json:"took_ms"`
	TotalResults int64          `json:"total_results"`
	Messages     []MessageEntry `json:"messages,omitzero"`
}

// CountLogsOutput is the output of the count tools. It deliberately carries
// no messages key.
type CountLogsOutput struct {
	Query        string  `json:"query"`
	TookMs       float64 `json:"took_ms"`
	TotalResults int64   `json:"total_results"`
}

// FormatSearchResult projects a backend response into the tool output shape.
// The response is not modified. Each entry keeps its index and message;
// highlight appears only when the backend defined it for that entry.
func FormatSearchResult(resp *graylog.SearchResponse) SearchLogsOutput {
	out := SearchLogsOutput{
		Query:        resp.Query,
		TookMs:       resp.TookMs,
		TotalResults: resp.TotalResults,
		Messages:     make([]MessageEntry, len(resp.Messages)),
	}
	for i, m := range resp.Messages {
		out.Messages[i] = MessageEntry{
			Index:     m.Index,
			Message:   m.Message,
			Highlight: m.Highlight,
		}
	}
	return out
}

// FormatCountResult keeps only the query echo and the counters.
func FormatCountResult(resp *graylog.SearchResponse) CountLogsOutput {
	return CountLogsOutput{
		Query:        resp.Query,
		TookMs:       resp.TookMs,
		TotalResults: resp.TotalResults,
	}
}
