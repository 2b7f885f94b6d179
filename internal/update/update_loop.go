package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/chat"
	"github.com/codycoggins/istari/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spin.Tick,
	}
	if m.todos != nil {
		cmds = append(cmds, m.refreshTodosCmd(), pollTodosCmd(m.cfg.TodoPollInterval))
	}
	if m.inbox != nil {
		cmds = append(cmds,
			m.refreshInboxCmd(),
			pollNotificationsCmd(m.cfg.NotificationPollInterval),
			pollUnreadCmd(m.unreadInterval()),
		)
	}
	if m.digests != nil {
		cmds = append(cmds, m.refreshDigestsCmd(), pollDigestsCmd(m.cfg.DigestPollInterval))
	}
	if m.settings != nil {
		cmds = append(cmds, m.loadSettingsCmd())
	}
	if m.channel != nil {
		cmds = append(cmds, m.waitForChatEventCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transcript.Width = 70
		if msg.Height > 12 {
			m.transcript.Height = msg.Height - 10
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ChatEventMsg:
		return m.handleChatEvent(chat.Event(msg))

	case TodosChangedMsg:
		return m, m.refreshTodosCmd()

	case MemoryCreatedMsg:
		m.status = "memory saved"
		return m, tea.Batch(m.refreshInboxCmd(), clearStatusCmd())

	case PollTodosMsg:
		return m, tea.Batch(m.refreshTodosCmd(), pollTodosCmd(m.cfg.TodoPollInterval))

	case PollNotificationsMsg:
		return m, tea.Batch(m.refreshInboxCmd(), pollNotificationsCmd(m.cfg.NotificationPollInterval))

	case PollDigestsMsg:
		return m, tea.Batch(m.refreshDigestsCmd(), pollDigestsCmd(m.cfg.DigestPollInterval))

	case PollUnreadMsg:
		return m, tea.Batch(m.fetchUnreadCmd(), pollUnreadCmd(m.unreadInterval()))

	case UnreadBadgeMsg:
		if msg < 0 {
			return m, nil
		}
		return m, m.setUnreadBadge(int(msg))

	case AllReadMsg:
		m.status = fmt.Sprintf("%d notifications marked read", int(msg))
		m.lastErr = ""
		var badge tea.Cmd
		if m.inbox != nil {
			badge = m.setUnreadBadge(m.inbox.Unread())
		}
		return m, tea.Batch(badge, clearStatusCmd())

	case TodosRefreshedMsg:
		m.todoCursor = clamp(m.todoCursor, 0, len(m.visibleTodos())-1)
		return m, nil

	case NotificationsRefreshedMsg:
		items := m.inboxItems()
		m.inboxCursor = clamp(m.inboxCursor, 0, len(items)-1)
		if m.inbox == nil {
			return m, nil
		}
		return m, m.setUnreadBadge(m.inbox.Unread())

	case DigestsRefreshedMsg:
		m.syncDigestRows()
		return m, nil

	case SettingsLoadedMsg:
		return m, nil

	case MutationFailedMsg:
		m.lastErr = msg.Err.Error()
		m.status = ""
		m.logger.Warn("action failed", zap.Error(msg.Err))
		return m, clearStatusCmd()

	case SetStatusMsg:
		m.status = string(msg)
		m.lastErr = ""
		return m, clearStatusCmd()

	case ClearStatusMsg:
		m.status = ""
		m.lastErr = ""
		return m, nil

	case SwitchViewMsg:
		m.view = View(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.channel != nil {
			m.channel.Stop()
		}
		return m, tea.Quit
	}
	if m.paletteOpen {
		return m.handlePaletteKeys(msg)
	}
	if key.Matches(msg, m.keys.Tab) {
		m.view = (m.view + 1) % 4
		return m, nil
	}

	// The chat composer owns the keyboard while it has focus; only the
	// escape hatch above and tab cycling work there.
	if m.view == ChatView {
		return m.handleChatKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Chat):
		m.view = ChatView
		return m, nil
	case key.Matches(msg, m.keys.Todos):
		m.view = TodosView
		return m, nil
	case key.Matches(msg, m.keys.Inbox):
		m.view = InboxView
		return m, nil
	case key.Matches(msg, m.keys.Digests):
		m.view = DigestsView
		return m, nil
	case key.Matches(msg, m.keys.Palette):
		m.paletteOpen = true
		m.paletteInput.SetValue("")
		m.paletteInput.Focus()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.view {
	case TodosView:
		return m.handleTodoKeys(msg)
	case InboxView:
		return m.handleInboxKeys(msg)
	case DigestsView:
		return m.handleDigestKeys(msg)
	}
	return m, nil
}

func (m Model) View() string {
	data := views.AppData{
		Header:     fmt.Sprintf("istari — %s", m.view),
		LeftPane:   m.renderChat(),
		StatusLine: m.statusLine(),
		Footer:     m.renderFooter(),
	}
	switch m.view {
	case InboxView:
		data.RightPane = m.renderInbox()
	case DigestsView:
		data.RightPane = m.renderDigests()
	default:
		data.RightPane = m.renderTodos()
	}
	return views.RenderApp(data)
}

func (m Model) statusLine() string {
	if m.lastErr != "" {
		return "error: " + m.lastErr
	}
	if m.status != "" {
		return m.status
	}
	return ""
}

func (m Model) renderFooter() string {
	if m.paletteOpen {
		return views.RenderCommandPalette(true, m.paletteInput.Value())
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return "tab: switch view · /: commands · ?: help · ctrl+c: quit"
}
