package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codycoggins/istari/internal/model"
	"github.com/codycoggins/istari/internal/views"
)

func (m Model) inboxItems() []model.Notification {
	if m.inbox == nil {
		return nil
	}
	return m.inbox.Items()
}

func (m Model) handleInboxKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.inboxItems()
	switch msg.String() {
	case "up", "k":
		m.inboxCursor = clamp(m.inboxCursor-1, 0, len(items)-1)
		return m, nil
	case "down", "j":
		m.inboxCursor = clamp(m.inboxCursor+1, 0, len(items)-1)
		return m, nil
	case "r":
		if len(items) == 0 {
			return m, nil
		}
		id := items[m.inboxCursor].ID
		return m, mutationCmd(func(ctx context.Context) error {
			return m.inbox.MarkRead(ctx, id)
		}, NotificationsRefreshedMsg{})
	case "R":
		return m, m.markAllReadCmd()
	}
	return m, nil
}

func (m Model) markAllReadCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.inbox.MarkAllRead(context.Background())
		if err != nil {
			return MutationFailedMsg{Err: err}
		}
		return AllReadMsg(count)
	}
}

// setUnreadBadge records the latest unread count and raises a desktop
// notification when it grew, unless focus mode or quiet hours suppress
// it.
func (m *Model) setUnreadBadge(unread int) tea.Cmd {
	prev := m.unreadBadge
	m.unreadBadge = unread
	if unread <= prev || m.notificationsSuppressed() {
		return nil
	}
	body := fmt.Sprintf("%d unread notifications", unread)
	notifier := m.notifier
	return func() tea.Msg {
		if err := notifier.Notify("istari", body); err != nil {
			return MutationFailedMsg{Err: err}
		}
		return nil
	}
}

func (m Model) renderInbox() string {
	notifications := m.inboxItems()
	items := make([]views.NotificationItemData, 0, len(notifications))
	cursorID := int64(0)
	for i, n := range notifications {
		if i == m.inboxCursor {
			cursorID = n.ID
		}
		items = append(items, views.NotificationItemData{
			ID:        n.ID,
			Type:      string(n.Type),
			Content:   n.Content,
			Read:      n.Read,
			Completed: n.Completed,
		})
	}
	return views.RenderNotificationsPanel(views.NotificationsPanelData{
		Items:       items,
		IsLoading:   m.inbox != nil && m.inbox.Loading(),
		UnreadCount: m.unreadBadge,
		CursorID:    cursorID,
	})
}
