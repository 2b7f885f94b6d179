package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/codycoggins/istari/internal/model"
)

// TodoUpdate carries a partial PATCH; nil fields are omitted so the
// server leaves them untouched.
type TodoUpdate struct {
	Title    *string           `json:"title,omitempty"`
	Body     *string           `json:"body,omitempty"`
	Priority *int              `json:"priority,omitempty"`
	DueDate  *time.Time        `json:"due_date,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	Status   *model.TodoStatus `json:"status,omitempty"`
}

func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var out struct {
		Todos []model.Todo `json:"todos"`
	}
	if err := c.do(ctx, http.MethodGet, "/todos/", nil, &out); err != nil {
		return nil, err
	}
	return out.Todos, nil
}

func (c *Client) CompleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/todos/%d/complete", id), nil, nil)
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, update TodoUpdate) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/todos/%d", id), update, nil)
}

// ReopenTodo is a status-only PATCH back to open.
func (c *Client) ReopenTodo(ctx context.Context, id int64) error {
	status := model.TodoStatusOpen
	return c.UpdateTodo(ctx, id, TodoUpdate{Status: &status})
}
