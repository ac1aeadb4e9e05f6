// Package schema provides field analysis, JSON Schema inference and JSON
// Schema validation for log messages. Inferred schemas follow Draft 2020-12.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/invopop/jsonschema"
)

// FieldStat summarizes one message field across a sample set.
type FieldStat struct {
	Field    string   `json:"field"`
	Count    int      `json:"count"`              // Messages carrying the field
	Types    []string `json:"types"`              // JSON types seen, sorted
	Examples []any    `json:"examples,omitempty"` // Distinct example values, capped
}

// InferOptions controls message analysis.
type InferOptions struct {
	// MaxExamples caps the example values kept per field. 0 keeps none.
	MaxExamples int
	// RequireInAll marks a field required only when every sample carries a
	// non-null value for it. Otherwise nothing is marked required.
	RequireInAll bool
}

// Analysis is the outcome of analyzing a batch of messages.
type Analysis struct {
	SampleCount int                `json:"sample_count"`
	Fields      []FieldStat        `json:"fields"`
	Schema      *jsonschema.Schema `json:"schema"`
}

// AnalyzeMessages derives per-field statistics and a JSON Schema from decoded
// log messages. Messages are treated as flat documents: nested objects and
// arrays contribute their container type, not their contents.
func AnalyzeMessages(messages []map[string]any, opts InferOptions) *Analysis {
	counts := make(map[string]int)
	nullSeen := make(map[string]bool)
	typesByField := make(map[string]map[string]bool)
	examples := make(map[string][]any)
	exampleKeys := make(map[string]map[string]bool)

	for _, msg := range messages {
		for field, value := range msg {
			counts[field]++

			t := jsonType(value)
			if typesByField[field] == nil {
				typesByField[field] = make(map[string]bool)
			}
			typesByField[field][t] = true

			if value == nil {
				nullSeen[field] = true
				continue
			}
			if opts.MaxExamples > 0 && len(examples[field]) < opts.MaxExamples {
				key := exampleKey(value)
				if exampleKeys[field] == nil {
					exampleKeys[field] = make(map[string]bool)
				}
				if !exampleKeys[field][key] {
					exampleKeys[field][key] = true
					examples[field] = append(examples[field], value)
				}
			}
		}
	}

	fields := make([]string, 0, len(counts))
	for f := range counts {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	analysis := &Analysis{
		SampleCount: len(messages),
		Fields:      make([]FieldStat, 0, len(fields)),
		Schema: &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		},
	}

	var required []string
	for _, field := range fields {
		types := make([]string, 0, len(typesByField[field]))
		for t := range typesByField[field] {
			types = append(types, t)
		}
		sort.Strings(types)

		analysis.Fields = append(analysis.Fields, FieldStat{
			Field:    field,
			Count:    counts[field],
			Types:    types,
			Examples: examples[field],
		})

		analysis.Schema.Properties.Set(field, fieldSchema(types))

		if opts.RequireInAll && counts[field] == len(messages) && !nullSeen[field] {
			required = append(required, field)
		}
	}
	if len(required) > 0 {
		analysis.Schema.Required = required
	}

	return analysis
}

// fieldSchema builds a property schema from the sorted set of observed types.
func fieldSchema(types []string) *jsonschema.Schema {
	if len(types) == 1 {
		return &jsonschema.Schema{Type: types[0]}
	}

	// invopop/jsonschema has no type-array form, so unions become anyOf.
	anyOf := make([]*jsonschema.Schema, 0, len(types))
	for _, t := range types {
		anyOf = append(anyOf, &jsonschema.Schema{Type: t})
	}
	return &jsonschema.Schema{AnyOf: anyOf}
}

// jsonType names the JSON type of a decoded value. Whole float64 values count
// as integers, matching how timestamps and counters come off the wire.
func jsonType(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		if math.Trunc(val) == val && !math.IsInf(val, 0) && !math.IsNaN(val) {
			return "integer"
		}
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// exampleKey creates a string key for example deduplication.
func exampleKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("?:%v", v)
	}
	return string(b)
}
