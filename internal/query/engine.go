// Package query provides jq-based value extraction from log messages.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes jq expressions against decoded log messages.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Result contains the outcome of running an expression over a batch of
// messages.
type Result struct {
	Values   []any    `json:"values"`           // Extracted values, in message order
	Errors   []string `json:"errors,omitempty"` // Deduplicated per-message errors
	RawCount int      `json:"raw_count"`        // Values produced before deduplication
	Matched  int      `json:"matched_messages"` // Messages that produced at least one value
}

// Options control extraction behavior.
type Options struct {
	// Deduplicate collapses equal values across all messages.
	Deduplicate bool
	// MaxResults caps the number of returned values. 0 means unlimited.
	MaxResults int
}

// Extract compiles the expression once and runs it against every message.
// Labels identify messages in error output; where the label list runs short
// the positional form message[i] is used instead.
func (e *Engine) Extract(messages []map[string]any, labels []string, expression string, opts Options) (*Result, error) {
	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Values: make([]any, 0),
		Errors: make([]string, 0),
	}

	seen := make(map[string]bool)
	seenErrors := make(map[string]bool)

	for i, msg := range messages {
		if opts.MaxResults > 0 && len(result.Values) >= opts.MaxResults {
			break
		}

		label := fmt.Sprintf("message[%d]", i)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}

		matched := false
		iter := code.Run(msg)

		for {
			if opts.MaxResults > 0 && len(result.Values) >= opts.MaxResults {
				break
			}

			v, ok := iter.Next()
			if !ok {
				break
			}

			if err, isErr := v.(error); isErr {
				errMsg := formatJQError(label, err)
				if !seenErrors[errMsg] {
					result.Errors = append(result.Errors, errMsg)
					seenErrors[errMsg] = true
				}
				continue
			}

			if v == nil {
				continue
			}

			result.RawCount++
			matched = true

			if opts.Deduplicate {
				key := valueKey(v)
				if seen[key] {
					continue
				}
				seen[key] = true
			}

			result.Values = append(result.Values, v)
		}

		if matched {
			result.Matched++
		}
	}

	return result, nil
}

// ValidateExpression checks that a jq expression parses and compiles without
// running it, so bad expressions are rejected before any search is issued.
func (e *Engine) ValidateExpression(expression string) error {
	_, err := compile(expression)
	return err
}

func compile(expression string) (*gojq.Code, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return code, nil
}

// formatJQError creates a user-facing message for a jq execution error.
//
// Runtime jq errors (like "cannot iterate over: null") are plain errors
// without typed wrappers in gojq, so string matching decorates the display
// message with hints; no control flow depends on it.
func formatJQError(label string, err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return fmt.Sprintf("%s: query halted", label)
		}
		return fmt.Sprintf("%s: query halted with: %v", label, haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the field may not exist in this message)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return fmt.Sprintf("%s: %s%s", label, errStr, hint)
}

// valueKey creates a string key for deduplication.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case float64:
		return fmt.Sprintf("n:%v", val)
	case bool:
		return fmt.Sprintf("b:%v", val)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("?:%v", val)
		}
		return "j:" + string(b)
	}
}
