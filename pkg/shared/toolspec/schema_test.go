package toolspec

import "testing"

func properties(t *testing.T, schema map[string]any) map[string]any {
	t.Helper()
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema properties missing")
	}
	return props
}

func TestSearchSchemaShape(t *testing.T) {
	schema := SearchSchema()
	props := properties(t, schema)
	for _, name := range []string{"query", "limit", "sort", "tags", "accepted_only"} {
		if _, ok := props[name]; !ok {
			t.Errorf("expected search schema to include %s property", name)
		}
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "query" {
		t.Errorf("expected query to be the only required property, got %v", schema["required"])
	}
	limit, _ := props["limit"].(map[string]any)
	if limit["minimum"] != 1 || limit["maximum"] != 100 {
		t.Errorf("unexpected limit bounds: %v", limit)
	}
}

func TestQuestionSchemaShape(t *testing.T) {
	schema := QuestionSchema()
	props := properties(t, schema)
	if _, ok := props["question_id"]; !ok {
		t.Fatalf("expected question schema to include question_id property")
	}
	answers, _ := props["include_answers"].(map[string]any)
	if answers["default"] != true {
		t.Errorf("include_answers should default to true, got %v", answers["default"])
	}
}

func TestTagSearchSchemaShape(t *testing.T) {
	schema := TagSearchSchema()
	props := properties(t, schema)
	for _, name := range []string{"tags", "limit", "sort", "min_score"} {
		if _, ok := props[name]; !ok {
			t.Errorf("expected tag search schema to include %s property", name)
		}
	}
	sort, _ := props["sort"].(map[string]any)
	if sort["default"] != "votes" {
		t.Errorf("tag search sort should default to votes, got %v", sort["default"])
	}
}
