package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codycoggins/istari/internal/commands"
	"github.com/codycoggins/istari/internal/store"
)

func (m Model) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.paletteOpen = false
		return m, nil
	case "enter":
		input := m.paletteInput.Value()
		m.paletteOpen = false
		m.paletteInput.SetValue("")
		if input == "" {
			return m, nil
		}
		return m, m.executeCommandCmd(input)
	}
	var cmd tea.Cmd
	m.paletteInput, cmd = m.paletteInput.Update(msg)
	return m, cmd
}

// executeCommandCmd parses and runs a palette command against the same
// handlers the key bindings use.
func (m Model) executeCommandCmd(input string) tea.Cmd {
	return func() tea.Msg {
		cmd, err := commands.Parse(input)
		if err != nil {
			return MutationFailedMsg{Err: err}
		}
		result, err := commands.Execute(cmd, m.commandHandlers())
		if err != nil {
			return MutationFailedMsg{Err: err}
		}
		if result.Message != "" {
			return SetStatusMsg(result.Message)
		}
		return ClearStatusMsg{}
	}
}

func (m Model) commandHandlers() commands.Handlers {
	ctx := context.Background()
	return commands.Handlers{
		Ask: func(args commands.AskArgs) (commands.Result, error) {
			m.send(args.Prompt)
			return commands.Result{Message: "asked the assistant"}, nil
		},
		Complete: func(args commands.TodoArgs) (commands.Result, error) {
			if err := m.todos.Complete(ctx, args.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("todo %d completed", args.ID)}, nil
		},
		Reopen: func(args commands.TodoArgs) (commands.Result, error) {
			if err := m.todos.Reopen(ctx, args.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("todo %d reopened", args.ID)}, nil
		},
		Read: func(args commands.ReadArgs) (commands.Result, error) {
			if err := m.inbox.MarkRead(ctx, args.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("notification %d read", args.ID)}, nil
		},
		ReadAll: func() (commands.Result, error) {
			count, err := m.inbox.MarkAllRead(ctx)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%d notifications marked read", count)}, nil
		},
		Review: func(args commands.ReviewArgs) (commands.Result, error) {
			if err := m.digests.MarkReviewed(ctx, args.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("digest %d reviewed", args.ID)}, nil
		},
		Focus: func(args commands.FocusArgs) (commands.Result, error) {
			value := "false"
			label := "off"
			if args.Enabled {
				value = "true"
				label = "on"
			}
			if err := m.settings.Update(ctx, store.SettingFocusMode, value); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "focus mode " + label}, nil
		},
	}
}
