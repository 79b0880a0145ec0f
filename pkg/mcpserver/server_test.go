package mcpserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
	"github.com/beeper/stackoverflow-mcp/pkg/tools"
)

// fakeService serves canned data without touching the network.
type fakeService struct {
	summaries []stackexchange.QuestionSummary
	detail    *stackexchange.QuestionDetail
	err       error
}

func (f *fakeService) Search(ctx context.Context, req stackexchange.SearchRequest) ([]stackexchange.QuestionSummary, error) {
	return f.summaries, f.err
}

func (f *fakeService) SearchByTags(ctx context.Context, req stackexchange.SearchRequest) ([]stackexchange.QuestionSummary, error) {
	return f.summaries, f.err
}

func (f *fakeService) Question(ctx context.Context, req stackexchange.DetailRequest) (*stackexchange.QuestionDetail, error) {
	return f.detail, f.err
}

// connect wires a server over the in-memory transport pair and returns a
// connected client session.
func connect(t *testing.T, svc tools.Service) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	server := New(Config{}.WithDefaults(), tools.NewBuiltinRegistry(svc), zerolog.New(io.Discard))

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect server: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })
	return clientSession
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text
}

func TestServerListsTools(t *testing.T) {
	session := connect(t, &fakeService{})

	var names []string
	for tool, err := range session.Tools(context.Background(), nil) {
		if err != nil {
			t.Fatalf("failed to list tools: %v", err)
		}
		if tool.Description == "" {
			t.Errorf("%s: missing description", tool.Name)
		}
		names = append(names, tool.Name)
	}
	want := []string{"get_question_details", "search_by_tags", "search_stackoverflow"}
	if len(names) != len(want) {
		t.Fatalf("expected %d tools, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestServerCallTool(t *testing.T) {
	svc := &fakeService{summaries: []stackexchange.QuestionSummary{{
		QuestionID: 101,
		Title:      "How do I close a channel twice?",
		Score:      42,
		Tags:       []string{"go"},
	}}}
	session := connect(t, svc)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_stackoverflow",
		Arguments: map[string]any{"query": "close channel"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.Contains(text, "How do I close a channel twice?") {
		t.Errorf("result missing question title: %s", text)
	}
	if !strings.Contains(text, `"total": 1`) {
		t.Errorf("result missing total: %s", text)
	}
}

func TestServerCallToolInvalidArguments(t *testing.T) {
	session := connect(t, &fakeService{})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_stackoverflow",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected IsError result for missing query")
	}
	if text := resultText(t, res); !strings.Contains(text, "query") {
		t.Errorf("error should name the missing parameter: %s", text)
	}
}

func TestServerEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "goroutine deadlock" {
			t.Errorf("unexpected query: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"question_id": 404141,
				"title": "Why does my goroutine deadlock?",
				"score": 12,
				"view_count": 900,
				"answer_count": 2,
				"is_answered": true,
				"tags": ["go", "concurrency"],
				"creation_date": 1700000000,
				"last_activity_date": 1700001000,
				"link": "https://stackoverflow.com/q/404141",
				"body": "<p>All goroutines are asleep.</p>"
			}],
			"has_more": false,
			"quota_max": 300,
			"quota_remaining": 299
		}`))
	}))
	defer upstream.Close()

	client := stackexchange.NewClient(stackexchange.Config{BaseURL: upstream.URL})
	session := connect(t, client)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_stackoverflow",
		Arguments: map[string]any{"query": "goroutine deadlock", "limit": 5},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.Contains(text, "Why does my goroutine deadlock?") {
		t.Errorf("result missing question title: %s", text)
	}
	if !strings.Contains(text, "All goroutines are asleep.") {
		t.Errorf("result missing body preview: %s", text)
	}
}

func TestToCallToolResult(t *testing.T) {
	res := toCallToolResult(tools.JSONResult(map[string]any{"total": 0}))
	if res.IsError {
		t.Error("success result should not set IsError")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}

	res = toCallToolResult(tools.ErrorResult("search_stackoverflow", "upstream exploded"))
	if !res.IsError {
		t.Error("error result should set IsError")
	}
	if text := res.Content[0].(*mcp.TextContent).Text; text != "upstream exploded" {
		t.Errorf("unexpected error text: %q", text)
	}
}
