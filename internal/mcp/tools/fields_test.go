package tools

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldsBody = `{"fields": ["source", "message", "level", "timestamp", "facility"]}`

func TestListFields_ReturnsBackendFields(t *testing.T) {
	b, deps := newBackend(t, respondJSON(fieldsBody))
	handler := ToolListFields(deps)

	_, output, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{})
	require.NoError(t, err)

	assert.Equal(t, "/api/system/fields", b.path)
	assert.False(t, b.params.Has("limit"), "zero limit requests the full list")
	assert.Equal(t, []string{"source", "message", "level", "timestamp", "facility"}, output.Fields)
	assert.Equal(t, 5, output.Count)
}

func TestListFields_CachesPerLimit(t *testing.T) {
	b, deps := newBackend(t, respondJSON(fieldsBody))
	handler := ToolListFields(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{})
	require.NoError(t, err)
	require.Equal(t, 1, b.calls)

	// Same limit: cache hit.
	_, _, err = handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, b.calls)

	// Different limit: distinct cache entry, refetched.
	_, _, err = handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, 2, b.calls)
	assert.Equal(t, "25", b.params.Get("limit"))

	_, _, err = handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, 2, b.calls)
}

func TestListFields_RefreshBypassesCache(t *testing.T) {
	b, deps := newBackend(t, respondJSON(fieldsBody))
	handler := ToolListFields(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{})
	require.NoError(t, err)

	_, _, err = handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{Refresh: true})
	require.NoError(t, err)

	assert.Equal(t, 2, b.calls)
}

func TestListFields_RejectsNegativeLimit(t *testing.T) {
	b, deps := newBackend(t, respondJSON(fieldsBody))
	handler := ToolListFields(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{Limit: -5})

	coded := requireCode(t, err, ErrCodeInvalidInput)
	assert.Contains(t, coded.Message, "limit must not be negative")
	assert.Equal(t, 0, b.calls)
}

func TestListFields_EmptyListingKeepsFieldsKey(t *testing.T) {
	_, deps := newBackend(t, respondJSON(`{"fields": []}`))
	handler := ToolListFields(deps)

	result, output, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{})
	require.NoError(t, err)

	require.NotNil(t, output.Fields)
	assert.Equal(t, 0, output.Count)
	assert.Contains(t, resultText(t, result), `"fields": []`)
}

func TestListFields_WrapsBackendError(t *testing.T) {
	_, deps := newBackend(t, respondError(500, "indexer down"))
	handler := ToolListFields(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, ListFieldsInput{})

	coded := requireCode(t, err, ErrCodeGraylogError)
	assert.Contains(t, coded.Message, "indexer down")
}
