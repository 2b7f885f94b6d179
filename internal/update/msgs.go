package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codycoggins/istari/internal/chat"
)

// ChatEventMsg wraps a channel event for the update loop.
type ChatEventMsg chat.Event

// TodosChangedMsg signals a server-side TODO change detected out of
// band (for example via an assistant reply).
type TodosChangedMsg struct{}

// MemoryCreatedMsg signals the assistant stored a new memory.
type MemoryCreatedMsg struct{}

type TodosRefreshedMsg struct{}
type NotificationsRefreshedMsg struct{}
type DigestsRefreshedMsg struct{}
type SettingsLoadedMsg struct{}

type PollTodosMsg struct{}
type PollNotificationsMsg struct{}
type PollDigestsMsg struct{}
type PollUnreadMsg struct{}

// UnreadBadgeMsg carries the server's unread count; negative means the
// fetch failed and the badge keeps its last value.
type UnreadBadgeMsg int

// AllReadMsg reports how many notifications a read-all swept.
type AllReadMsg int

// MutationFailedMsg carries a failed write so the UI can surface it.
type MutationFailedMsg struct{ Err error }

type SetStatusMsg string
type ClearStatusMsg struct{}
type SwitchViewMsg View

func (m Model) refreshTodosCmd() tea.Cmd {
	return func() tea.Msg {
		m.todos.Refresh(context.Background())
		return TodosRefreshedMsg{}
	}
}

func (m Model) refreshInboxCmd() tea.Cmd {
	return func() tea.Msg {
		m.inbox.Refresh(context.Background())
		return NotificationsRefreshedMsg{}
	}
}

func (m Model) refreshDigestsCmd() tea.Cmd {
	return func() tea.Msg {
		m.digests.Refresh(context.Background())
		return DigestsRefreshedMsg{}
	}
}

func (m Model) loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		m.settings.Load(context.Background())
		return SettingsLoadedMsg{}
	}
}

func pollTodosCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return PollTodosMsg{} })
}

func pollNotificationsCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return PollNotificationsMsg{} })
}

func pollDigestsCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return PollDigestsMsg{} })
}

func pollUnreadCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return PollUnreadMsg{} })
}

func (m Model) fetchUnreadCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.inbox.UnreadCount(context.Background())
		if err != nil {
			return UnreadBadgeMsg(-1)
		}
		return UnreadBadgeMsg(count)
	}
}

// mutationCmd runs a store write and reports either a refreshed view or
// the failure. Writes already refresh their store on success.
func mutationCmd(write func(context.Context) error, done tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if err := write(context.Background()); err != nil {
			return MutationFailedMsg{Err: err}
		}
		return done
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
