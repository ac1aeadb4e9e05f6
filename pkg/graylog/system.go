package graylog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type nodesResponse struct {
	Nodes []ClusterNode `json:"nodes"`
	Total int           `json:"total"`
}

type countResponse struct {
	Events int64 `json:"events"`
}

// Overview fetches the node info, cluster membership and total message count
// in parallel. The first failing call wins and partial results are discarded.
func (c *Client) Overview(ctx context.Context) (*SystemOverview, error) {
	var overview SystemOverview

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var info SystemInfo
		if err := c.get(ctx, "api/system", nil, &info); err != nil {
			return fmt.Errorf("fetching system info: %w", err)
		}
		overview.System = info
		return nil
	})

	g.Go(func() error {
		var nodes nodesResponse
		if err := c.get(ctx, "api/system/cluster/nodes", nil, &nodes); err != nil {
			return fmt.Errorf("fetching cluster nodes: %w", err)
		}
		overview.Nodes = nodes.Nodes
		return nil
	})

	g.Go(func() error {
		var count countResponse
		if err := c.get(ctx, "api/count/total", nil, &count); err != nil {
			return fmt.Errorf("fetching message count: %w", err)
		}
		overview.TotalMessages = count.Events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
