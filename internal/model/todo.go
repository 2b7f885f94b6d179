package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidStatus = errors.New("model: invalid todo status")

type TodoStatus string

const (
	TodoStatusOpen       TodoStatus = "open"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusBlocked    TodoStatus = "blocked"
	TodoStatusComplete   TodoStatus = "complete"
	TodoStatusDeferred   TodoStatus = "deferred"
)

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusOpen, TodoStatusInProgress, TodoStatusBlocked, TodoStatusComplete, TodoStatusDeferred:
		return true
	default:
		return false
	}
}

// Todo mirrors the server's todo resource. The server is the system of
// record; the client never computes status transitions locally.
type Todo struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Body       string     `json:"body,omitempty"`
	Status     TodoStatus `json:"status"`
	Priority   *int       `json:"priority,omitempty"`
	Urgent     *bool      `json:"urgent,omitempty"`
	Important  *bool      `json:"important,omitempty"`
	Source     string     `json:"source,omitempty"`
	SourceLink string     `json:"source_link,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (t Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: todo title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}

func (t Todo) Complete() bool { return t.Status == TodoStatusComplete }

// HiddenAt reports whether the todo is excluded from the default list:
// completed before local midnight of now. Todos completed today stay
// visible (struck through) until the next day boundary.
func (t Todo) HiddenAt(now time.Time) bool {
	if !t.Complete() {
		return false
	}
	return t.UpdatedAt.Before(StartOfDay(now))
}

func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// VisibleTodos applies the completed-before-today filter. Display-only;
// nothing is deleted server-side.
func VisibleTodos(todos []Todo, now time.Time) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.HiddenAt(now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

type Quadrant string

const (
	QuadrantDoNow        Quadrant = "Do Now"
	QuadrantSchedule     Quadrant = "Schedule"
	QuadrantDelegate     Quadrant = "Delegate"
	QuadrantDrop         Quadrant = "Drop"
	QuadrantUnclassified Quadrant = ""
)

// Quadrant derives the urgent/important display bucket. Both booleans are
// nullable; anything inconclusive renders no label.
func (t Todo) Quadrant() Quadrant {
	urgent := t.Urgent != nil && *t.Urgent
	important := t.Important != nil && *t.Important
	switch {
	case urgent && important:
		return QuadrantDoNow
	case important:
		return QuadrantSchedule
	case urgent:
		return QuadrantDelegate
	case t.Urgent != nil && !*t.Urgent && t.Important != nil && !*t.Important:
		return QuadrantDrop
	default:
		return QuadrantUnclassified
	}
}
