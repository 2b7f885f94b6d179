package views

import (
	"fmt"
	"strings"
)

type ChatMessageData struct {
	Role    string
	Content string
}

type ChatPanelData struct {
	TranscriptView string
	InputView      string
	Connected      bool
	SpinnerView    string
	Pending        bool
}

type TodoItemData struct {
	ID        int64
	Title     string
	Status    string
	Quadrant  string
	Priority  string
	Tags      []string
	Completed bool
}

type TodoPanelData struct {
	Items     []TodoItemData
	IsLoading bool
	CursorID  int64
	Settings  SettingsData
}

type SettingsData struct {
	Loaded          bool
	FocusMode       bool
	QuietHoursStart string
	QuietHoursEnd   string
}

type NotificationItemData struct {
	ID        int64
	Type      string
	Content   string
	Read      bool
	Completed bool
}

type NotificationsPanelData struct {
	Items       []NotificationItemData
	IsLoading   bool
	UnreadCount int
	CursorID    int64
}

type DigestsPanelData struct {
	IsLoading bool
	Empty     bool
	TableView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderChatPanel(data ChatPanelData) string {
	var b strings.Builder
	if data.Connected {
		b.WriteString(statusStyle.Render("● connected"))
	} else {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s reconnecting…", data.SpinnerView)))
	}
	b.WriteString("\n")
	b.WriteString(data.TranscriptView)
	b.WriteString("\n")
	if data.Pending {
		b.WriteString(dimStyle.Render("assistant is thinking…"))
		b.WriteString("\n")
	}
	b.WriteString(data.InputView)
	return strings.TrimSpace(b.String())
}

// RenderTranscript formats the message log; assistant turns go through
// the markdown renderer.
func RenderTranscript(messages []ChatMessageData) string {
	if len(messages) == 0 {
		return dimStyle.Render("Ask the assistant anything to get started.")
	}
	var b strings.Builder
	for _, msg := range messages {
		if msg.Role == "user" {
			b.WriteString(badgeStyle.Render("you") + " " + msg.Content + "\n")
			continue
		}
		b.WriteString(badgeStyle.Render("istari") + "\n" + RenderMarkdown(msg.Content) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTodoPanel(data TodoPanelData) string {
	var b strings.Builder
	b.WriteString("TODOs\n")
	b.WriteString("actions: [space]complete/reopen [w]ask assistant [f]focus mode\n")
	switch {
	case data.IsLoading:
		b.WriteString("Loading...\n")
	case len(data.Items) == 0:
		b.WriteString("No TODOs yet\n")
	default:
		for _, item := range data.Items {
			cursor := " "
			if item.ID == data.CursorID {
				cursor = ">"
			}
			check := "[ ]"
			title := item.Title
			if item.Completed {
				check = "[x]"
				title = completedStyle.Render(title)
			}
			b.WriteString(fmt.Sprintf("%s %s %s", cursor, check, title))
			if !item.Completed {
				if item.Quadrant != "" {
					b.WriteString(" " + badgeStyle.Render("["+item.Quadrant+"]"))
				}
				switch item.Status {
				case "in_progress":
					b.WriteString(" " + badgeStyle.Render("[In progress]"))
				case "blocked":
					b.WriteString(" " + badgeStyle.Render("[Blocked]"))
				}
				if item.Priority != "" {
					b.WriteString(dimStyle.Render(" p" + item.Priority))
				}
				if len(item.Tags) > 0 {
					b.WriteString(dimStyle.Render(" #" + strings.Join(item.Tags, " #")))
				}
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n" + renderSettingsBlock(data.Settings))
	return strings.TrimSpace(b.String())
}

func renderSettingsBlock(data SettingsData) string {
	if !data.Loaded {
		return ""
	}
	var b strings.Builder
	b.WriteString("Settings\n")
	focus := "off"
	if data.FocusMode {
		focus = "on"
	}
	b.WriteString(fmt.Sprintf("Focus mode: %s\n", focus))
	if data.QuietHoursStart != "" && data.QuietHoursEnd != "" {
		b.WriteString(fmt.Sprintf("Quiet hours: %s:00 – %s:00\n", data.QuietHoursStart, data.QuietHoursEnd))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderNotificationsPanel(data NotificationsPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Inbox (%d unread)\n", data.UnreadCount))
	b.WriteString("actions: [r]mark read [R]read all\n")
	switch {
	case data.IsLoading:
		b.WriteString("Loading...\n")
	case len(data.Items) == 0:
		b.WriteString("No notifications\n")
	default:
		for _, item := range data.Items {
			cursor := " "
			if item.ID == data.CursorID {
				cursor = ">"
			}
			marker := "●"
			content := item.Content
			if item.Read {
				marker = " "
				content = dimStyle.Render(content)
			}
			line := fmt.Sprintf("%s %s [%s] %s", cursor, marker, item.Type, content)
			if item.Completed {
				line += dimStyle.Render(" (completed)")
			}
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderDigestsPanel(data DigestsPanelData) string {
	var b strings.Builder
	b.WriteString("Digests\n")
	b.WriteString("actions: [v]mark reviewed\n")
	switch {
	case data.IsLoading:
		b.WriteString("Loading...\n")
	case data.Empty:
		b.WriteString("No digests\n")
	default:
		b.WriteString(data.TableView + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString(data.CurrentView + " keys:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	b.WriteString("\nglobal: " + data.HelpView)
	return b.String()
}
