package planner

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DaraJKong/my-todos/internal/llm"
	"github.com/DaraJKong/my-todos/internal/task"
)

// fakeClient replays a canned JSON response and records the messages it saw.
type fakeClient struct {
	response string
	err      error
	calls    int
	messages []llm.Message
}

func (f *fakeClient) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	f.calls++
	f.messages = messages
	return f.response, f.err
}

func (f *fakeClient) ChatJSON(ctx context.Context, messages []llm.Message, result any) error {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.response), result)
}

func sampleTasks() []task.Task {
	return []task.Task{
		{ID: 1, Description: "fix login bug", Status: task.StatusInProgress, Priority: task.PriorityHigh},
		{ID: 2, Description: "water plants", Status: task.StatusToDo, Priority: task.PriorityLow},
		{ID: 3, Description: "ship release", Status: task.StatusDone, Priority: task.PriorityHigh},
	}
}

func userPrompt(t *testing.T, messages []llm.Message) string {
	t.Helper()

	for _, msg := range messages {
		if msg.Role == "user" {
			return msg.Content
		}
	}
	t.Fatal("no user message sent")
	return ""
}

func TestSuggest(t *testing.T) {
	client := &fakeClient{
		response: `{"items": [{"id": 1, "reason": "already in progress and high priority"}], "summary": "Finish the login fix first."}`,
	}
	p := New(client)

	plan, err := p.Suggest(context.Background(), sampleTasks(), 3)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	if len(plan.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(plan.Items))
	}
	if plan.Items[0].TaskID != 1 {
		t.Errorf("item id = %d, want 1", plan.Items[0].TaskID)
	}
	if plan.Items[0].Reason == "" {
		t.Error("item reason is empty")
	}
	if plan.Summary != "Finish the login fix first." {
		t.Errorf("summary = %q, want %q", plan.Summary, "Finish the login fix first.")
	}
}

func TestSuggest_PromptListsOnlyActiveTasks(t *testing.T) {
	client := &fakeClient{response: `{"items": [], "summary": ""}`}
	p := New(client)

	if _, err := p.Suggest(context.Background(), sampleTasks(), 3); err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	prompt := userPrompt(t, client.messages)
	if !strings.Contains(prompt, "#1 [high] (in progress) fix login bug") {
		t.Fatalf("missing active task line: %s", prompt)
	}
	if !strings.Contains(prompt, "#2 [low] (to do) water plants") {
		t.Fatalf("missing active task line: %s", prompt)
	}
	if strings.Contains(prompt, "ship release") {
		t.Fatalf("done task leaked into prompt: %s", prompt)
	}
}

func TestSuggest_NoActiveTasks(t *testing.T) {
	client := &fakeClient{response: `{"items": [], "summary": ""}`}
	p := New(client)

	done := []task.Task{
		{ID: 1, Description: "ship release", Status: task.StatusDone},
	}
	_, err := p.Suggest(context.Background(), done, 3)
	if !errors.Is(err, ErrNoActiveTasks) {
		t.Fatalf("error = %v, want ErrNoActiveTasks", err)
	}
	if client.calls != 0 {
		t.Errorf("client called %d times, want 0", client.calls)
	}
}

func TestSuggest_UnknownTaskID(t *testing.T) {
	client := &fakeClient{
		response: `{"items": [{"id": 99, "reason": "sounds important"}], "summary": ""}`,
	}
	p := New(client)

	_, err := p.Suggest(context.Background(), sampleTasks(), 3)
	if err == nil {
		t.Fatal("expected error for unknown task id")
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("error = %v, want mention of id 99", err)
	}
}

func TestSuggest_CapsItemsAtRequestedCount(t *testing.T) {
	client := &fakeClient{
		response: `{"items": [{"id": 1, "reason": "a"}, {"id": 2, "reason": "b"}], "summary": "Both matter."}`,
	}
	p := New(client)

	plan, err := p.Suggest(context.Background(), sampleTasks(), 1)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(plan.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(plan.Items))
	}
	if plan.Items[0].TaskID != 1 {
		t.Errorf("item id = %d, want 1", plan.Items[0].TaskID)
	}
}

func TestSuggest_DefaultCount(t *testing.T) {
	client := &fakeClient{response: `{"items": [], "summary": ""}`}
	p := New(client)

	if _, err := p.Suggest(context.Background(), sampleTasks(), 0); err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	prompt := userPrompt(t, client.messages)
	if !strings.Contains(prompt, "at most 3 tasks") {
		t.Fatalf("missing default count: %s", prompt)
	}
}

func TestSuggest_ClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	p := New(client)

	_, err := p.Suggest(context.Background(), sampleTasks(), 3)
	if err == nil {
		t.Fatal("expected error from failing client")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error = %v, want wrapped client error", err)
	}
}
