package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codycoggins/istari/internal/chat"
	"github.com/codycoggins/istari/internal/views"
)

// waitForChatEventCmd blocks on the channel's event stream and re-arms
// itself after each delivery from the update loop.
func (m Model) waitForChatEventCmd() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.channel.C()
		if !ok {
			return nil
		}
		return ChatEventMsg(ev)
	}
}

func (m Model) handleChatEvent(ev chat.Event) (tea.Model, tea.Cmd) {
	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()

	cmds := []tea.Cmd{m.waitForChatEventCmd()}
	if ev.Kind == chat.EventDisconnected {
		cmds = append(cmds, m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := m.input.Value()
		if text == "" {
			return m, nil
		}
		m.send(text)
		m.input.SetValue("")
		m.transcript.SetContent(m.renderTranscript())
		m.transcript.GotoBottom()
		return m, nil
	case "pgup":
		m.transcript.HalfViewUp()
		return m, nil
	case "pgdown":
		m.transcript.HalfViewDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) renderTranscript() string {
	if m.channel == nil {
		return ""
	}
	msgs := m.channel.Messages()
	data := make([]views.ChatMessageData, 0, len(msgs))
	for _, msg := range msgs {
		data = append(data, views.ChatMessageData{Role: string(msg.Role), Content: msg.Content})
	}
	return views.RenderTranscript(data)
}

func (m Model) renderChat() string {
	connected := m.channel != nil && m.channel.State() == chat.StateConnected
	pending := m.channel != nil && m.channel.Pending()
	transcript := m.transcript.View()
	if m.transcript.TotalLineCount() == 0 {
		transcript = m.renderTranscript()
	}
	return views.RenderChatPanel(views.ChatPanelData{
		TranscriptView: transcript,
		InputView:      m.input.View(),
		Connected:      connected,
		SpinnerView:    m.spin.View(),
		Pending:        pending,
	})
}
