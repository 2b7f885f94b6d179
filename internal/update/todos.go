package update

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codycoggins/istari/internal/model"
	"github.com/codycoggins/istari/internal/store"
	"github.com/codycoggins/istari/internal/views"
)

func (m Model) visibleTodos() []model.Todo {
	if m.todos == nil {
		return nil
	}
	return m.todos.Visible(m.now())
}

func (m Model) handleTodoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visibleTodos()
	switch msg.String() {
	case "up", "k":
		m.todoCursor = clamp(m.todoCursor-1, 0, len(items)-1)
		return m, nil
	case "down", "j":
		m.todoCursor = clamp(m.todoCursor+1, 0, len(items)-1)
		return m, nil
	case " ":
		if len(items) == 0 {
			return m, nil
		}
		return m, m.toggleTodoCmd(items[m.todoCursor])
	case "w":
		// Delegate the canned question to whichever component owns the
		// chat send path right now.
		if m.ask != nil && m.ask.Invoke(AskPrompt) {
			m.view = ChatView
		}
		return m, nil
	case "f":
		return m, m.toggleFocusCmd()
	}
	return m, nil
}

// toggleTodoCmd completes an open todo or reopens a completed one. The
// server decides the canonical state; we only ask for the transition.
func (m Model) toggleTodoCmd(todo model.Todo) tea.Cmd {
	if todo.Complete() {
		return mutationCmd(func(ctx context.Context) error {
			return m.todos.Reopen(ctx, todo.ID)
		}, TodosRefreshedMsg{})
	}
	return mutationCmd(func(ctx context.Context) error {
		return m.todos.Complete(ctx, todo.ID)
	}, TodosRefreshedMsg{})
}

func (m Model) toggleFocusCmd() tea.Cmd {
	next := "true"
	if m.settings != nil && m.settings.FocusMode() {
		next = "false"
	}
	return mutationCmd(func(ctx context.Context) error {
		return m.settings.Update(ctx, store.SettingFocusMode, next)
	}, SetStatusMsg("focus mode "+map[string]string{"true": "on", "false": "off"}[next]))
}

func (m Model) renderTodos() string {
	todos := m.visibleTodos()
	items := make([]views.TodoItemData, 0, len(todos))
	cursorID := int64(0)
	for i, t := range todos {
		if i == m.todoCursor {
			cursorID = t.ID
		}
		priority := ""
		if t.Priority != nil {
			priority = strconv.Itoa(*t.Priority)
		}
		items = append(items, views.TodoItemData{
			ID:        t.ID,
			Title:     t.Title,
			Status:    string(t.Status),
			Quadrant:  string(t.Quadrant()),
			Priority:  priority,
			Tags:      t.Tags,
			Completed: t.Complete(),
		})
	}
	return views.RenderTodoPanel(views.TodoPanelData{
		Items:     items,
		IsLoading: m.todos != nil && m.todos.Loading(),
		CursorID:  cursorID,
		Settings:  m.settingsData(),
	})
}

func (m Model) settingsData() views.SettingsData {
	if m.settings == nil || m.settings.Loading() {
		return views.SettingsData{}
	}
	return views.SettingsData{
		Loaded:          true,
		FocusMode:       m.settings.FocusMode(),
		QuietHoursStart: m.settings.Get(store.SettingQuietHoursStart),
		QuietHoursEnd:   m.settings.Get(store.SettingQuietHoursEnd),
	}
}
