package update

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codycoggins/istari/internal/model"
	"github.com/codycoggins/istari/internal/views"
)

func (m Model) digestItems() []model.Digest {
	if m.digests == nil {
		return nil
	}
	return m.digests.Items()
}

func (m Model) handleDigestKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "v" {
		items := m.digestItems()
		idx := m.digestTable.Cursor()
		if idx < 0 || idx >= len(items) {
			return m, nil
		}
		item := items[idx]
		if item.Reviewed {
			return m, nil
		}
		return m, mutationCmd(func(ctx context.Context) error {
			return m.digests.MarkReviewed(ctx, item.ID)
		}, DigestsRefreshedMsg{})
	}
	var cmd tea.Cmd
	m.digestTable, cmd = m.digestTable.Update(msg)
	return m, cmd
}

func (m *Model) syncDigestRows() {
	items := m.digestItems()
	rows := make([]table.Row, 0, len(items))
	for _, d := range items {
		mark := ""
		if d.Reviewed {
			mark = "✓"
		}
		rows = append(rows, table.Row{strconv.FormatInt(d.ID, 10), d.Source, d.ContentSummary, mark})
	}
	m.digestTable.SetRows(rows)
	if cursor := m.digestTable.Cursor(); len(rows) > 0 && cursor >= len(rows) {
		m.digestTable.SetCursor(len(rows) - 1)
	}
}

func (m Model) renderDigests() string {
	return views.RenderDigestsPanel(views.DigestsPanelData{
		IsLoading: m.digests != nil && m.digests.Loading(),
		Empty:     len(m.digestItems()) == 0,
		TableView: m.digestTable.View(),
	})
}
