package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SystemOverviewInput is the input for get_system_overview. It takes no
// arguments.
type SystemOverviewInput struct{}

// NodeInfo describes one node of the Graylog cluster.
type NodeInfo struct {
	NodeID           string `json:"node_id"`
	Hostname         string `json:"hostname"`
	TransportAddress string `json:"transport_address,omitempty"`
	IsLeader         bool   `json:"is_leader"`
}

// SystemOverviewOutput is the output for get_system_overview.
type SystemOverviewOutput struct {
	ClusterID     string     `json:"cluster_id"`
	Version       string     `json:"version"`
	Hostname      string     `json:"hostname"`
	IsProcessing  bool       `json:"is_processing"`
	LBStatus      string     `json:"lb_status,omitempty"`
	StartedAt     string     `json:"started_at,omitempty"`
	Nodes         []NodeInfo `json:"nodes,omitzero"`
	TotalMessages int64      `json:"total_messages"`
}

// ToolGetSystemOverview reports cluster identity, the node list and the
// total message count in one call. The three backend requests run
// concurrently.
func ToolGetSystemOverview(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SystemOverviewInput) (*sdkmcp.CallToolResult, SystemOverviewOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SystemOverviewInput) (*sdkmcp.CallToolResult, SystemOverviewOutput, error) {
		overview, err := d.Client.Overview(ctx)
		if err != nil {
			return nil, SystemOverviewOutput{}, WrapGraylogError(err)
		}

		nodes := make([]NodeInfo, len(overview.Nodes))
		for i, n := range overview.Nodes {
			nodes[i] = NodeInfo{
				NodeID:           n.NodeID,
				Hostname:         n.Hostname,
				TransportAddress: n.TransportAddress,
				IsLeader:         n.IsLeader,
			}
		}

		output := SystemOverviewOutput{
			ClusterID:     overview.System.ClusterID,
			Version:       overview.System.Version,
			Hostname:      overview.System.Hostname,
			IsProcessing:  overview.System.IsProcessing,
			LBStatus:      overview.System.LBStatus,
			StartedAt:     overview.System.StartedAt,
			Nodes:         nodes,
			TotalMessages: overview.TotalMessages,
		}

		result, err := MakeJSONToolResult(output)
		if err != nil {
			return nil, SystemOverviewOutput{}, err
		}
		return result, output, nil
	}
}
