package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: search_relative_logs
	AddTool(srv, &sdkmcp.Tool{
		Name:        "search_relative_logs",
		Description: "Search log messages within a relative time window counted back from now, e.g. the last hour. Returns {query, took_ms, total_results, messages: [{index, message, highlight?}]}. Query uses Graylog's search syntax (e.g. 'source:web-01 AND level:3'). Defaults to 150 messages; raise limit (max 1000) or page with offset for more. Pass filter 'streams:<id>' (IDs from list_streams) to search one stream, and fields to trim message payloads. Use count_relative_logs instead when only the match count matters.",
	}, ToolSearchRelativeLogs(d))

	// Tool 2: count_relative_logs
	AddTool(srv, &sdkmcp.Tool{
		Name:        "count_relative_logs",
		Description: "Count log messages matching a query within a relative time window counted back from now. Returns {query, took_ms, total_results} without message payloads, so it stays cheap for large result sets. Accepts the same arguments as search_relative_logs.",
	}, ToolCountRelativeLogs(d))

	// Tool 3: search_absolute_logs
	AddTool(srv, &sdkmcp.Tool{
		Name:        "search_absolute_logs",
		Description: "Search log messages between two fixed timestamps ('2024-01-01 00:00:00' or ISO 8601). Returns {query, took_ms, total_results, messages: [{index, message, highlight?}]}. Same query syntax, paging and filter arguments as search_relative_logs. Use this when investigating a known incident window; use search_relative_logs for 'the last N seconds'.",
	}, ToolSearchAbsoluteLogs(d))

	// Tool 4: count_absolute_logs
	AddTool(srv, &sdkmcp.Tool{
		Name:        "count_absolute_logs",
		Description: "Count log messages matching a query between two fixed timestamps. Returns {query, took_ms, total_results} without message payloads. Accepts the same arguments as search_absolute_logs.",
	}, ToolCountAbsoluteLogs(d))

	// Tool 5: list_streams
	AddTool(srv, &sdkmcp.Tool{
		Name:        "list_streams",
		Description: "List the streams configured on the Graylog server. Returns {total, streams: [{id, title, description, disabled, is_default}]}. Use a stream id as filter 'streams:<id>' in the search and count tools to scope a query to one stream. Results are cached briefly; set refresh=true to force a refetch.",
	}, ToolListStreams(d))

	// Tool 6: list_fields
	AddTool(srv, &sdkmcp.Tool{
		Name:        "list_fields",
		Description: "List the message field names known to the Graylog indexer. Returns {fields, count}. Use these names in the fields argument of the search tools or in query expressions like 'level:3'. Results are cached briefly; set refresh=true to force a refetch.",
	}, ToolListFields(d))

	// Tool 7: get_system_overview
	AddTool(srv, &sdkmcp.Tool{
		Name:        "get_system_overview",
		Description: "Get a snapshot of the Graylog deployment: cluster id, server version, processing status, the node list, and the total number of indexed messages. Takes no arguments. Useful as a connectivity check before running searches.",
	}, ToolGetSystemOverview(d))

	// Tool 8: analyze_log_fields
	AddTool(srv, &sdkmcp.Tool{
		Name:        "analyze_log_fields",
		Description: "Sample messages matching a query and derive per-field statistics (occurrence count, JSON types seen, example values) plus an inferred JSON Schema for the message payloads. Returns {query, messages_analyzed, total_results, fields, schema}. Use this to discover the shape of unfamiliar logs before writing extract_log_values expressions or validate_log_schema schemas.",
	}, ToolAnalyzeLogFields(d))

	// Tool 9: validate_log_schema
	AddTool(srv, &sdkmcp.Tool{
		Name:        "validate_log_schema",
		Description: "Sample messages matching a query and validate each one against a caller-supplied JSON Schema. Returns {query, summary: {messages_checked, valid_count, invalid_count, all_valid}, failures: [{message_id, errors}], common_errors}. Failing messages are listed individually; use analyze_log_fields first to build a schema from observed traffic.",
	}, ToolValidateLogSchema(d))

	// Tool 10: extract_log_values
	AddTool(srv, &sdkmcp.Tool{
		Name:        "extract_log_values",
		Description: "Sample messages matching a query and apply a jq expression to every message, returning the extracted values. Returns {query, expression, values, errors, messages_sampled, matched_messages, raw_count}. Set deduplicate=true to collapse repeats (e.g. distinct source hosts) and max_results to cap output. Use search_relative_logs instead for viewing whole messages.",
	}, ToolExtractLogValues(d))
}
