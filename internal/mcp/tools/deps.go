package tools

import (
	"github.com/usestring/graylog-mcp/internal/cache"
	"github.com/usestring/graylog-mcp/internal/config"
	"github.com/usestring/graylog-mcp/internal/query"
	"github.com/usestring/graylog-mcp/pkg/graylog"
)

// Deps contains all dependencies needed by tool handlers. Everything is
// resolved once at startup and injected; handlers never read the environment.
type Deps struct {
	Client   *graylog.Client
	Config   *config.Config
	Metadata *cache.MetadataCache
	Query    *query.Engine
}
