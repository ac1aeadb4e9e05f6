package tools

import (
	"context"
	"io"
	"net/http"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// respondSystem answers the three overview endpoints, failing failPath with
// a 500 when set.
func respondSystem(failPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == failPath {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"type": "ApiError", "message": "node unavailable"}`)
			return
		}
		switch r.URL.Path {
		case "/api/system":
			io.WriteString(w, `{
				"cluster_id": "c9f2a3b4",
				"node_id": "node-1",
				"version": "6.1.4",
				"hostname": "graylog-a",
				"is_processing": true,
				"lb_status": "alive",
				"started_at": "2024-06-01T08:00:00.000Z"
			}`)
		case "/api/system/cluster/nodes":
			io.WriteString(w, `{
				"total": 2,
				"nodes": [
					{"node_id": "node-1", "hostname": "graylog-a", "transport_address": "http://10.0.0.1:9000/api/", "is_leader": true},
					{"node_id": "node-2", "hostname": "graylog-b", "transport_address": "http://10.0.0.2:9000/api/", "is_leader": false}
				]
			}`)
		case "/api/count/total":
			io.WriteString(w, `{"events": 148230112}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestGetSystemOverview_AssemblesClusterState(t *testing.T) {
	b, deps := newBackend(t, respondSystem(""))
	handler := ToolGetSystemOverview(deps)

	result, output, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, SystemOverviewInput{})
	require.NoError(t, err)

	assert.Equal(t, 3, b.calls, "overview needs system, nodes and count")
	assert.Equal(t, "c9f2a3b4", output.ClusterID)
	assert.Equal(t, "6.1.4", output.Version)
	assert.Equal(t, "graylog-a", output.Hostname)
	assert.True(t, output.IsProcessing)
	assert.Equal(t, "alive", output.LBStatus)
	assert.Equal(t, "2024-06-01T08:00:00.000Z", output.StartedAt)
	assert.Equal(t, int64(148230112), output.TotalMessages)

	require.Len(t, output.Nodes, 2)
	assert.Equal(t, "node-1", output.Nodes[0].NodeID)
	assert.True(t, output.Nodes[0].IsLeader)
	assert.Equal(t, "graylog-b", output.Nodes[1].Hostname)
	assert.False(t, output.Nodes[1].IsLeader)
	assert.NotNil(t, result)
}

func TestGetSystemOverview_FailsWhenCountFails(t *testing.T) {
	_, deps := newBackend(t, respondSystem("/api/count/total"))
	handler := ToolGetSystemOverview(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, SystemOverviewInput{})

	coded := requireCode(t, err, ErrCodeGraylogError)
	assert.Contains(t, coded.Error(), "fetching message count")
}

func TestGetSystemOverview_FailsWhenNodesFail(t *testing.T) {
	_, deps := newBackend(t, respondSystem("/api/system/cluster/nodes"))
	handler := ToolGetSystemOverview(deps)

	_, _, err := handler(context.Background(), &sdkmcp.CallToolRequest{}, SystemOverviewInput{})

	coded := requireCode(t, err, ErrCodeGraylogError)
	assert.Contains(t, coded.Error(), "fetching cluster nodes")
}
