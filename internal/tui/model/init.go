package model

import (
	"custview/internal/config"
	"custview/internal/customer"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select customer"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search by name"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload list"),
		),
		Email: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "reply by email"),
		),
		SendEmail: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send email"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "write record note"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync mails now"),
		),
		CopyDetail: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy detail"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
	for i, s := range customer.AllStatuses {
		digit := string(rune('1' + i))
		km.Status[i] = key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp(digit, s.Label()),
		)
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Search, k.Status[0], k.Email, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Search, k.Reload},
		{k.Status[0], k.Status[1], k.Status[2], k.Status[3]},
		{k.Email, k.SendEmail, k.NextField, k.Note, k.Esc},
		{k.Sync, k.CopyDetail, k.ToggleLog, k.Help, k.Quit},
	}
}

// InitializeModel builds the initial model from cfg.
func InitializeModel(cfg TUIConfig) *Model {
	search := textinput.New()
	search.Placeholder = "search by name"
	search.Prompt = "🔍 "
	search.CharLimit = 128

	subject := textinput.New()
	subject.Placeholder = "Subject"
	subject.CharLimit = 256

	body := textarea.New()
	body.Placeholder = "Message body"
	body.ShowLineNumbers = false
	body.SetHeight(6)

	attachment := textinput.New()
	attachment.Placeholder = "Attachment path (optional)"
	attachment.CharLimit = 1024

	note := textinput.New()
	note.Placeholder = "Record note"
	note.CharLimit = 1024

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ttl := cfg.StatusBarTTL
	if ttl < 0 {
		ttl = 0
	}
	emailField := cfg.EmailField
	if emailField == "" {
		emailField = config.DefaultEmailField
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	return &Model{
		CurrentAppMode:  ModeMain,
		LastAppMode:     ModeMain,
		DebugMode:       cfg.DebugMode,
		ColorMode:       cfg.ColorMode,
		APIURL:          cfg.APIURL,
		EmailField:      emailField,
		API:             cfg.API,
		SearchInput:     search,
		EmailSubject:    subject,
		EmailBody:       body,
		EmailAttachment: attachment,
		NoteInput:       note,
		DetailViewport:  viewport.New(0, 0),
		LogViewport:     viewport.New(0, 0),
		Spinner:         s,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		StatusBarTTL:    ttl,
		Clipboard:       clip,
		LogChannel:      cfg.LogChannel,
	}
}

// Init loads the customer list and mail count and starts background listeners.
func (m *Model) Init() tea.Cmd {
	gen := m.BeginListLoad()
	cmds := []tea.Cmd{
		FetchCustomersCmd(m.API, m.Query, gen),
		CountMailsCmd(m.API),
		m.Spinner.Tick,
	}
	if listen := ListenForLogEntriesCmd(m.LogChannel); listen != nil {
		cmds = append(cmds, listen)
	}
	return tea.Batch(cmds...)
}

// SetStatusBar shows msg and returns the command that clears it later.
func (m *Model) SetStatusBar(msg string, msgType MessageType) tea.Cmd {
	m.StatusBarMessage = msg
	m.StatusBarMessageType = msgType
	m.StatusBarSeq++
	return ClearStatusBarAfter(m.StatusBarTTL, m.StatusBarSeq)
}

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's activity log,
// ensuring it doesn't exceed MaxActivityLogLines and sets the dirty flag.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
