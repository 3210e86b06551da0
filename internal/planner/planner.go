// Package planner asks an LLM which tasks to work on next.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DaraJKong/my-todos/internal/llm"
	"github.com/DaraJKong/my-todos/internal/task"
)

// ErrNoActiveTasks is returned when every task is already done.
var ErrNoActiveTasks = errors.New("no active tasks to suggest from")

const defaultSuggestionCount = 3

const systemPrompt = `You are a personal task assistant. The user sends their open task list
and wants to know what to work on next.

Rules:
- Only pick tasks from the list, referenced by their numeric id.
- Prefer high priority tasks and tasks already in progress.
- Give one short reason per pick.
- Never invent tasks that are not in the list.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "items": [
    {"id": 1, "reason": "string"}
  ],
  "summary": "string"
}`

// Item is one suggested task with the model's reasoning.
type Item struct {
	TaskID int64  `json:"id"`
	Reason string `json:"reason"`
}

// Plan is the parsed suggestion response.
type Plan struct {
	Items   []Item `json:"items"`
	Summary string `json:"summary"`
}

// Planner uses an LLM to pick the next tasks to work on.
type Planner struct {
	client llm.Client
}

// New creates a Planner with the given LLM client.
func New(client llm.Client) *Planner {
	return &Planner{client: client}
}

// Suggest asks the LLM for up to n tasks to work on next.
// Done tasks are excluded before the list reaches the model.
func (p *Planner) Suggest(ctx context.Context, tasks []task.Task, n int) (*Plan, error) {
	active := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Active() {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoActiveTasks
	}
	if n <= 0 {
		n = defaultSuggestionCount
	}

	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(active, n)},
	}

	var plan Plan
	if err := p.client.ChatJSON(ctx, messages, &plan); err != nil {
		return nil, fmt.Errorf("requesting suggestions: %w", err)
	}

	known := make(map[int64]bool, len(active))
	for _, t := range active {
		known[t.ID] = true
	}
	for _, item := range plan.Items {
		if !known[item.TaskID] {
			return nil, fmt.Errorf("llm suggested unknown task id %d", item.TaskID)
		}
	}
	if len(plan.Items) > n {
		plan.Items = plan.Items[:n]
	}

	return &plan, nil
}

func buildUserPrompt(tasks []task.Task, n int) string {
	var sb strings.Builder
	sb.WriteString("Here are my open tasks:\n")
	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("- #%d [%s] (%s) %s\n", t.ID, t.Priority, t.Status, t.Description))
	}
	sb.WriteString(fmt.Sprintf("\nSuggest at most %d tasks to work on next.", n))
	return sb.String()
}
