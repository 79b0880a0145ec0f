package tools

import "testing"

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Tool{})
	if len(reg.All()) != 0 {
		t.Error("unnamed tool should not be registered")
	}

	svc := &stubService{}
	for _, tool := range Builtin(svc) {
		reg.Register(tool)
	}
	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(all))
	}
	wantOrder := []string{"get_question_details", "search_by_tags", "search_stackoverflow"}
	for i, tool := range all {
		if tool.Name != wantOrder[i] {
			t.Errorf("tool %d: expected %s, got %s", i, wantOrder[i], tool.Name)
		}
	}
	for _, name := range wantOrder {
		if !reg.Has(name) {
			t.Errorf("expected registry to contain %s", name)
		}
	}
	if _, ok := reg.Get("search_stackoverflow"); !ok {
		t.Error("Get failed for registered tool")
	}
	if reg.Has("delete_everything") {
		t.Error("unexpected tool in registry")
	}
	if got := reg.Group(GroupStackOverflow); len(got) != 3 {
		t.Errorf("expected 3 tools in group, got %d", len(got))
	}
	if got := reg.Group("unknown"); len(got) != 0 {
		t.Errorf("expected empty group, got %d tools", len(got))
	}
}

func TestRegistryReplace(t *testing.T) {
	reg := NewRegistry()
	svc := &stubService{}
	reg.Register(NewSearchTool(svc))
	reg.Register(NewSearchTool(svc))
	if len(reg.All()) != 1 {
		t.Error("re-registering should replace, not duplicate")
	}
	if got := reg.Group(GroupStackOverflow); len(got) != 1 {
		t.Errorf("expected 1 tool in group after replace, got %d", len(got))
	}
}
