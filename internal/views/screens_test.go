package views

import (
	"strings"
	"testing"
)

func TestRenderTodoPanelEmptyState(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{})
	if !strings.Contains(out, "No TODOs yet") {
		t.Fatalf("expected empty-state placeholder, got:\n%s", out)
	}
}

func TestRenderTodoPanelLoadingBeatsEmptyState(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{IsLoading: true})
	if !strings.Contains(out, "Loading") {
		t.Fatalf("expected loading indicator, got:\n%s", out)
	}
	if strings.Contains(out, "No TODOs yet") {
		t.Fatalf("loading state should not show the empty-state placeholder:\n%s", out)
	}
}

func TestRenderTodoPanelBadges(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{
		Items: []TodoItemData{
			{ID: 1, Title: "ship release", Quadrant: "Do Now", Status: "in_progress"},
			{ID: 2, Title: "old chore", Completed: true, Quadrant: "Drop"},
		},
		CursorID: 1,
	})
	if !strings.Contains(out, "[Do Now]") {
		t.Fatalf("expected quadrant badge, got:\n%s", out)
	}
	if !strings.Contains(out, "[In progress]") {
		t.Fatalf("expected status badge, got:\n%s", out)
	}
	if strings.Contains(out, "[Drop]") {
		t.Fatalf("completed todos should not carry a quadrant badge:\n%s", out)
	}
	if !strings.Contains(out, "[x]") {
		t.Fatalf("expected completed checkbox, got:\n%s", out)
	}
}

func TestRenderTodoPanelSettingsBlock(t *testing.T) {
	out := RenderTodoPanel(TodoPanelData{
		Settings: SettingsData{Loaded: true, FocusMode: true, QuietHoursStart: "22", QuietHoursEnd: "7"},
	})
	if !strings.Contains(out, "Focus mode: on") {
		t.Fatalf("expected focus mode line, got:\n%s", out)
	}
	if !strings.Contains(out, "Quiet hours: 22:00") {
		t.Fatalf("expected quiet hours line, got:\n%s", out)
	}
}

func TestRenderNotificationsPanel(t *testing.T) {
	out := RenderNotificationsPanel(NotificationsPanelData{
		UnreadCount: 2,
		Items: []NotificationItemData{
			{ID: 1, Type: "digest", Content: "morning digest ready"},
			{ID: 2, Type: "staleness", Content: "todo untouched for a week", Read: true, Completed: true},
		},
	})
	if !strings.Contains(out, "Inbox (2 unread)") {
		t.Fatalf("expected unread count header, got:\n%s", out)
	}
	if !strings.Contains(out, "(completed)") {
		t.Fatalf("expected completed marker, got:\n%s", out)
	}
}

func TestRenderDigestsPanelStates(t *testing.T) {
	out := RenderDigestsPanel(DigestsPanelData{IsLoading: true})
	if !strings.Contains(out, "Loading") {
		t.Fatalf("expected loading indicator, got:\n%s", out)
	}

	out = RenderDigestsPanel(DigestsPanelData{Empty: true})
	if !strings.Contains(out, "No digests") {
		t.Fatalf("expected empty state, got:\n%s", out)
	}

	out = RenderDigestsPanel(DigestsPanelData{TableView: "gmail  3 new threads"})
	if !strings.Contains(out, "gmail  3 new threads") {
		t.Fatalf("expected table passthrough, got:\n%s", out)
	}
}
