package model

import (
	"errors"
	"testing"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func TestTodoStatusIsValid(t *testing.T) {
	valid := []TodoStatus{TodoStatusOpen, TodoStatusInProgress, TodoStatusBlocked, TodoStatusComplete, TodoStatusDeferred}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %q valid", s)
		}
	}
	if TodoStatus("done").IsValid() {
		t.Fatal("expected done invalid")
	}
}

func TestTodoValidate(t *testing.T) {
	todo := Todo{Title: "Call the dentist", Status: TodoStatusOpen}
	if err := todo.Validate(); err != nil {
		t.Fatalf("expected valid todo, got error: %v", err)
	}

	todo.Status = TodoStatus("finished")
	err := todo.Validate()
	if err == nil || !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}

	todo = Todo{Title: "   ", Status: TodoStatusOpen}
	if err := todo.Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestHiddenAtDayBoundary(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, loc)

	yesterday := Todo{
		Title:     "Old chore",
		Status:    TodoStatusComplete,
		UpdatedAt: time.Date(2026, 3, 13, 23, 59, 59, 0, loc),
	}
	if !yesterday.HiddenAt(now) {
		t.Fatal("todo completed yesterday 23:59:59 should be hidden")
	}

	today := Todo{
		Title:     "Fresh chore",
		Status:    TodoStatusComplete,
		UpdatedAt: time.Date(2026, 3, 14, 0, 0, 1, 0, loc),
	}
	if today.HiddenAt(now) {
		t.Fatal("todo completed today 00:00:01 should remain visible")
	}

	open := Todo{
		Title:     "Still open",
		Status:    TodoStatusOpen,
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, loc),
	}
	if open.HiddenAt(now) {
		t.Fatal("non-complete todos are never hidden")
	}
}

func TestVisibleTodos(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, loc)
	todos := []Todo{
		{ID: 1, Title: "open", Status: TodoStatusOpen},
		{ID: 2, Title: "done yesterday", Status: TodoStatusComplete, UpdatedAt: now.AddDate(0, 0, -1)},
		{ID: 3, Title: "done today", Status: TodoStatusComplete, UpdatedAt: now.Add(-time.Hour)},
	}
	visible := VisibleTodos(todos, now)
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible todos, got %d", len(visible))
	}
	if visible[0].ID != 1 || visible[1].ID != 3 {
		t.Fatalf("unexpected visible set: %+v", visible)
	}
}

func TestQuadrant(t *testing.T) {
	cases := []struct {
		name      string
		urgent    *bool
		important *bool
		want      Quadrant
	}{
		{"both true", boolPtr(true), boolPtr(true), QuadrantDoNow},
		{"important only", boolPtr(false), boolPtr(true), QuadrantSchedule},
		{"important nil urgent", nil, boolPtr(true), QuadrantSchedule},
		{"urgent only", boolPtr(true), boolPtr(false), QuadrantDelegate},
		{"both false", boolPtr(false), boolPtr(false), QuadrantDrop},
		{"both nil", nil, nil, QuadrantUnclassified},
		{"urgent false important nil", boolPtr(false), nil, QuadrantUnclassified},
	}
	for _, tc := range cases {
		todo := Todo{Urgent: tc.urgent, Important: tc.important}
		if got := todo.Quadrant(); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestCountUnread(t *testing.T) {
	items := []Notification{
		{ID: 1, Read: true},
		{ID: 2, Read: false},
		{ID: 3, Read: false},
	}
	if got := CountUnread(items); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
	if got := CountUnread(nil); got != 0 {
		t.Fatalf("expected 0 unread for empty list, got %d", got)
	}
}
