package schema

import (
	"testing"
)

func TestAnalyzeMessages_FieldCounts(t *testing.T) {
	messages := []map[string]any{
		{"source": "web-01", "level": float64(3)},
		{"source": "web-02", "level": float64(6), "facility": "nginx"},
		{"source": "db-01"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{})

	if analysis.SampleCount != 3 {
		t.Errorf("expected sample count 3, got %d", analysis.SampleCount)
	}

	// Fields come back sorted by name
	wantOrder := []string{"facility", "level", "source"}
	if len(analysis.Fields) != len(wantOrder) {
		t.Fatalf("expected %d fields, got %d", len(wantOrder), len(analysis.Fields))
	}
	for i, want := range wantOrder {
		if analysis.Fields[i].Field != want {
			t.Errorf("field[%d] = %q, want %q", i, analysis.Fields[i].Field, want)
		}
	}

	byName := make(map[string]FieldStat)
	for _, f := range analysis.Fields {
		byName[f.Field] = f
	}
	if byName["source"].Count != 3 {
		t.Errorf("source count = %d, want 3", byName["source"].Count)
	}
	if byName["level"].Count != 2 {
		t.Errorf("level count = %d, want 2", byName["level"].Count)
	}
	if byName["facility"].Count != 1 {
		t.Errorf("facility count = %d, want 1", byName["facility"].Count)
	}
}

func TestAnalyzeMessages_TypeDetection(t *testing.T) {
	messages := []map[string]any{
		{
			"text":    "hello",
			"whole":   float64(42),
			"frac":    3.14,
			"flag":    true,
			"null":    nil,
			"nested":  map[string]any{"a": float64(1)},
			"listing": []any{"a", "b"},
		},
	}

	analysis := AnalyzeMessages(messages, InferOptions{})

	want := map[string]string{
		"text":    "string",
		"whole":   "integer",
		"frac":    "number",
		"flag":    "boolean",
		"null":    "null",
		"nested":  "object",
		"listing": "array",
	}
	for _, f := range analysis.Fields {
		if len(f.Types) != 1 {
			t.Errorf("field %q: expected a single type, got %v", f.Field, f.Types)
			continue
		}
		if f.Types[0] != want[f.Field] {
			t.Errorf("field %q: type = %q, want %q", f.Field, f.Types[0], want[f.Field])
		}
	}
}

func TestAnalyzeMessages_TypeUnion(t *testing.T) {
	messages := []map[string]any{
		{"level": float64(3)},
		{"level": "warning"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{})

	if len(analysis.Fields) != 1 {
		t.Fatalf("expected one field, got %d", len(analysis.Fields))
	}
	types := analysis.Fields[0].Types
	if len(types) != 2 || types[0] != "integer" || types[1] != "string" {
		t.Errorf("expected sorted union [integer string], got %v", types)
	}

	pair := analysis.Schema.Properties.GetPair("level")
	if pair == nil {
		t.Fatal("expected a schema property for level")
	}
	if len(pair.Value.AnyOf) != 2 {
		t.Errorf("expected anyOf union of 2, got %+v", pair.Value)
	}
}

func TestAnalyzeMessages_SingleTypeSchema(t *testing.T) {
	messages := []map[string]any{
		{"source": "web-01"},
		{"source": "web-02"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{})

	if analysis.Schema.Type != "object" {
		t.Errorf("schema type = %q, want object", analysis.Schema.Type)
	}
	pair := analysis.Schema.Properties.GetPair("source")
	if pair == nil || pair.Value.Type != "string" {
		t.Errorf("expected string property for source, got %+v", pair)
	}
	if len(pair.Value.AnyOf) != 0 {
		t.Errorf("single-type field should not produce anyOf: %+v", pair.Value)
	}
}

func TestAnalyzeMessages_RequiredInAll(t *testing.T) {
	messages := []map[string]any{
		{"source": "web-01", "level": float64(3), "trace": "t1"},
		{"source": "web-02", "level": nil, "extra": "x"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{RequireInAll: true})

	// source appears in all samples without nulls; level is null once; trace
	// and extra each miss a sample.
	if len(analysis.Schema.Required) != 1 || analysis.Schema.Required[0] != "source" {
		t.Errorf("required = %v, want [source]", analysis.Schema.Required)
	}
}

func TestAnalyzeMessages_RequiredDisabled(t *testing.T) {
	messages := []map[string]any{
		{"source": "web-01"},
		{"source": "web-02"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{})

	if len(analysis.Schema.Required) != 0 {
		t.Errorf("expected no required fields, got %v", analysis.Schema.Required)
	}
}

func TestAnalyzeMessages_ExampleCapAndDedup(t *testing.T) {
	messages := []map[string]any{
		{"source": "web-01"},
		{"source": "web-01"},
		{"source": "web-02"},
		{"source": "web-03"},
		{"source": "web-04"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{MaxExamples: 3})

	examples := analysis.Fields[0].Examples
	if len(examples) != 3 {
		t.Fatalf("expected 3 examples, got %v", examples)
	}
	// Duplicate web-01 collapses, then the cap applies in message order
	if examples[0] != "web-01" || examples[1] != "web-02" || examples[2] != "web-03" {
		t.Errorf("unexpected examples: %v", examples)
	}
}

func TestAnalyzeMessages_NoExamplesByDefault(t *testing.T) {
	messages := []map[string]any{
		{"source": "web-01"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{})

	if len(analysis.Fields[0].Examples) != 0 {
		t.Errorf("expected no examples, got %v", analysis.Fields[0].Examples)
	}
}

func TestAnalyzeMessages_NullNotAnExample(t *testing.T) {
	messages := []map[string]any{
		{"trace": nil},
		{"trace": "t1"},
	}

	analysis := AnalyzeMessages(messages, InferOptions{MaxExamples: 5})

	examples := analysis.Fields[0].Examples
	if len(examples) != 1 || examples[0] != "t1" {
		t.Errorf("expected only the non-null example, got %v", examples)
	}
}

func TestAnalyzeMessages_Empty(t *testing.T) {
	analysis := AnalyzeMessages(nil, InferOptions{})

	if analysis.SampleCount != 0 {
		t.Errorf("sample count = %d, want 0", analysis.SampleCount)
	}
	if len(analysis.Fields) != 0 {
		t.Errorf("expected no fields, got %v", analysis.Fields)
	}
	if analysis.Schema == nil || analysis.Schema.Type != "object" {
		t.Error("expected an empty object schema")
	}
}
