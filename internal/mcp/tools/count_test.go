package tools

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountRelativeLogs_PinsLimitToZero(t *testing.T) {
	b, deps := newBackend(t, respondJSON(searchPage("level:3", 4211)))
	handler := ToolCountRelativeLogs(deps)

	_, output, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountRelativeLogsInput{
		Query: "level:3",
		Range: 86400,
		Limit: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/search/universal/relative", b.path)
	assert.Equal(t, "0", b.params.Get("limit"), "counts never fetch messages, whatever limit was passed")
	assert.Equal(t, "0", b.params.Get("offset"))
	assert.Equal(t, int64(4211), output.TotalResults)
}

func TestCountRelativeLogs_OutputHasNoMessagesKey(t *testing.T) {
	_, deps := newBackend(t, respondJSON(searchPage("*", 12)))
	handler := ToolCountRelativeLogs(deps)

	result, output, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountRelativeLogsInput{
		Query: "*",
		Range: 300,
	})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.NotContains(t, text, `"messages"`)

	raw, err := json.Marshal(output)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"messages"`)
}

func TestCountRelativeLogs_SharesSearchValidation(t *testing.T) {
	b, deps := newBackend(t, respondJSON(searchPage("*", 0)))
	handler := ToolCountRelativeLogs(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountRelativeLogsInput{
		Query: "*",
		Range: 300,
		Limit: 2000,
	})

	coded := requireCode(t, err, ErrCodeInvalidInput)
	assert.Contains(t, coded.Message, "limit must be between 1 and 1000")
	assert.Equal(t, 0, b.calls)
}

func TestCountRelativeLogs_PassesFilterAndOffset(t *testing.T) {
	b, deps := newBackend(t, respondJSON(searchPage("*", 7)))
	handler := ToolCountRelativeLogs(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountRelativeLogsInput{
		Query:  "*",
		Range:  300,
		Offset: 30,
		Filter: "streams:5f3e",
	})
	require.NoError(t, err)

	assert.Equal(t, "30", b.params.Get("offset"))
	assert.Equal(t, "streams:5f3e", b.params.Get("filter"))
	assert.Equal(t, "0", b.params.Get("limit"))
}

func TestCountAbsoluteLogs_SendsTimerange(t *testing.T) {
	b, deps := newBackend(t, respondJSON(searchPage("source:web-01", 99)))
	handler := ToolCountAbsoluteLogs(deps)

	_, output, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountAbsoluteLogsInput{
		Query: "source:web-01",
		From:  "2024-01-01 00:00:00",
		To:    "2024-01-02 00:00:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/search/universal/absolute", b.path)
	assert.Equal(t, "2024-01-01 00:00:00", b.params.Get("from"))
	assert.Equal(t, "2024-01-02 00:00:00", b.params.Get("to"))
	assert.Equal(t, "0", b.params.Get("limit"))
	assert.Equal(t, int64(99), output.TotalResults)
}

func TestCountAbsoluteLogs_RejectsEmptyTimerange(t *testing.T) {
	b, deps := newBackend(t, respondJSON(searchPage("*", 0)))
	handler := ToolCountAbsoluteLogs(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountAbsoluteLogsInput{
		Query: "*",
	})

	requireCode(t, err, ErrCodeInvalidInput)
	assert.Equal(t, 0, b.calls)
}

func TestCountRelativeLogs_RepeatedCallsHitTheBackend(t *testing.T) {
	b, deps := newBackend(t, respondJSON(searchPage("level:3", 4211)))
	handler := ToolCountRelativeLogs(deps)

	in := CountRelativeLogsInput{Query: "level:3", Range: 3600}
	_, first, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, in)
	require.NoError(t, err)
	_, second, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, in)
	require.NoError(t, err)

	// Counts are never cached; both calls go to Graylog.
	assert.Equal(t, 2, b.calls)
	assert.Equal(t, first.TotalResults, second.TotalResults)
}

func TestCountRelativeLogs_WrapsBackendError(t *testing.T) {
	_, deps := newBackend(t, respondError(503, "Elasticsearch unavailable"))
	handler := ToolCountRelativeLogs(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, CountRelativeLogsInput{
		Query: "*",
		Range: 300,
	})

	coded := requireCode(t, err, ErrCodeGraylogError)
	assert.Contains(t, coded.Message, "503")
	assert.Contains(t, coded.Message, "Elasticsearch unavailable")
}
