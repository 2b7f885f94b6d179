package update

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/bus"
	"github.com/codycoggins/istari/internal/chat"
	"github.com/codycoggins/istari/internal/config"
	"github.com/codycoggins/istari/internal/store"
)

// View identifies the active panel.
type View int

const (
	ChatView View = iota
	TodosView
	InboxView
	DigestsView
)

func (v View) String() string {
	switch v {
	case ChatView:
		return "Chat"
	case TodosView:
		return "TODOs"
	case InboxView:
		return "Inbox"
	case DigestsView:
		return "Digests"
	default:
		return "Unknown"
	}
}

// AskPrompt is the canned question the TODO panel delegates to the
// assistant.
const AskPrompt = "What should I work on?"

// GlobalKeyMap holds the bindings that work in every view.
type GlobalKeyMap struct {
	Quit    key.Binding
	Tab     key.Binding
	Chat    key.Binding
	Todos   key.Binding
	Inbox   key.Binding
	Digests key.Binding
	Palette key.Binding
	Help    key.Binding
}

func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Chat:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "chat")),
		Todos:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "todos")),
		Inbox:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "inbox")),
		Digests: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "digests")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "commands")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// Deps carries everything a Model needs. Zero-value optional fields get
// sensible defaults in NewModel.
type Deps struct {
	Config   config.Config
	Logger   *zap.Logger
	Todos    *store.Todos
	Inbox    *store.Notifications
	Digests  *store.Digests
	Settings *store.Settings
	Channel  *chat.Channel
	Ask      *bus.AskSlot
	Notifier Notifier

	// Send overrides the chat send path. Defaults to Channel.Send.
	Send func(string)
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// Model is the top-level Bubble Tea model.
type Model struct {
	cfg    config.Config
	logger *zap.Logger

	todos    *store.Todos
	inbox    *store.Notifications
	digests  *store.Digests
	settings *store.Settings
	channel  *chat.Channel
	ask      *bus.AskSlot
	notifier Notifier

	send func(string)
	now  func() time.Time

	view   View
	width  int
	height int

	input      textinput.Model
	transcript viewport.Model
	spin       spinner.Model
	helpModel  help.Model
	keys       GlobalKeyMap

	todoCursor  int
	inboxCursor int
	digestTable table.Model
	unreadBadge int

	paletteOpen  bool
	paletteInput textinput.Model
	showHelp     bool

	status  string
	lastErr string
}

// NewModel wires the model and registers the chat send path on the ask
// slot so other panels can delegate questions to the assistant.
func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Notifier == nil {
		deps.Notifier = NoopNotifier{}
	}
	send := deps.Send
	if send == nil && deps.Channel != nil {
		send = deps.Channel.Send
	}
	if send == nil {
		send = func(string) {}
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if deps.Ask != nil {
		deps.Ask.Register(send)
	}

	input := textinput.New()
	input.Placeholder = "Message the assistant…"
	input.CharLimit = 2000
	input.Focus()

	palette := textinput.New()
	palette.Prompt = "/"
	palette.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	digestCols := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Source", Width: 10},
		{Title: "Summary", Width: 26},
		{Title: "", Width: 2},
	}
	digestTable := table.New(
		table.WithColumns(digestCols),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return Model{
		cfg:          deps.Config,
		logger:       deps.Logger,
		todos:        deps.Todos,
		inbox:        deps.Inbox,
		digests:      deps.Digests,
		settings:     deps.Settings,
		channel:      deps.Channel,
		ask:          deps.Ask,
		notifier:     deps.Notifier,
		send:         send,
		now:          now,
		view:         ChatView,
		input:        input,
		paletteInput: palette,
		digestTable:  digestTable,
		transcript:   viewport.New(70, 16),
		spin:         sp,
		helpModel:    help.New(),
		keys:         DefaultGlobalKeyMap(),
	}
}

// unreadInterval paces the lightweight badge poll at twice the rate of
// the full notification refresh.
func (m Model) unreadInterval() time.Duration {
	return m.cfg.NotificationPollInterval / 2
}

// quietHoursActive reports whether the user's quiet-hours window covers
// the current hour. The window may wrap past midnight.
func (m Model) quietHoursActive() bool {
	if m.settings == nil {
		return false
	}
	start := m.settings.Get(store.SettingQuietHoursStart)
	end := m.settings.Get(store.SettingQuietHoursEnd)
	if start == "" || end == "" {
		return false
	}
	sh, err1 := strconv.Atoi(start)
	eh, err2 := strconv.Atoi(end)
	if err1 != nil || err2 != nil {
		return false
	}
	h := m.now().Hour()
	if sh <= eh {
		return h >= sh && h < eh
	}
	return h >= sh || h < eh
}

// notificationsSuppressed reports whether desktop notifications should
// stay silent right now.
func (m Model) notificationsSuppressed() bool {
	if !m.cfg.DesktopNotifications {
		return true
	}
	if m.settings != nil && m.settings.FocusMode() {
		return true
	}
	return m.quietHoursActive()
}
