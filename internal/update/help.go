package update

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/codycoggins/istari/internal/views"
)

func (m Model) viewBindings() []string {
	switch m.view {
	case ChatView:
		return []string{
			"enter: send message",
			"pgup/pgdown: scroll transcript",
		}
	case TodosView:
		return []string{
			"j/k: move",
			"space: complete / reopen",
			"w: ask what to work on",
			"f: toggle focus mode",
		}
	case InboxView:
		return []string{
			"j/k: move",
			"r: mark read",
			"R: mark all read",
		}
	case DigestsView:
		return []string{
			"j/k: move",
			"v: mark reviewed",
		}
	}
	return nil
}

func (m Model) renderHelp() string {
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: m.view.String(),
		Bindings:    m.viewBindings(),
		HelpView:    m.helpModel.ShortHelpView(m.globalBindings()),
	})
}

func (m Model) globalBindings() []key.Binding {
	return []key.Binding{
		m.keys.Tab,
		m.keys.Chat,
		m.keys.Todos,
		m.keys.Inbox,
		m.keys.Digests,
		m.keys.Palette,
		m.keys.Help,
		m.keys.Quit,
	}
}
