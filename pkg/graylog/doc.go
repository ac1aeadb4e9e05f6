// Package graylog provides a client for the Graylog REST API, covering the
// universal search endpoints plus the discovery endpoints the MCP tools rely
// on (streams, indexed fields, system status).
//
// # Quick Start
//
// Create a client and run a relative search:
//
//	c, err := graylog.New("http://graylog.example.com:9000/", "admin", "secret")
//	if err != nil {
//	    return err
//	}
//	resp, err := c.SearchRelative(ctx, graylog.RelativeSearchRequest{
//	    Query: "source:web-01 AND level:3",
//	    Range: 3600,
//	})
//
// Every call authenticates with HTTP basic auth. The base URL is the server
// root; the client appends "api/..." itself.
//
// # Optional Search Parameters
//
// SearchOptions fields that are nil or empty are omitted from the request so
// the backend's defaults stay in charge. Pointers distinguish "not set" from
// an explicit zero, which matters for limit (0 means count-only) and decorate
// (false disables decorators that default to on):
//
//	limit := 50
//	decorate := false
//	resp, err := c.SearchRelative(ctx, graylog.RelativeSearchRequest{
//	    Query: "level:3",
//	    Range: 900,
//	    SearchOptions: graylog.SearchOptions{
//	        Limit:    &limit,
//	        Fields:   []string{"timestamp", "source", "message"},
//	        Decorate: &decorate,
//	    },
//	})
//
// # Errors
//
// Failures are typed: *APIError for non-2xx answers (status line and body
// preserved), *TransportError for requests that never reached the server
// (target URL preserved). Both work with errors.As. The client never retries.
package graylog
