package model

import (
	"context"
	"time"

	"custview/internal/customer"
	"custview/internal/gateway"
	"custview/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeSearch
	ModeEmailModal
	ModeNoteInput
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeSearch:
		return "Search"
	case ModeEmailModal:
		return "EmailModal"
	case ModeNoteInput:
		return "NoteInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// StatusFlow is the state of the status-update round trip.
type StatusFlow int

const (
	FlowIdle StatusFlow = iota
	FlowAwaitingUpdate
)

func (f StatusFlow) String() string {
	if f == FlowAwaitingUpdate {
		return "AwaitingUpdate"
	}
	return "Idle"
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Email form fields in focus order.
const (
	EmailFieldSubject = iota
	EmailFieldBody
	EmailFieldAttachment
	emailFieldCount
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	DefaultStatusBarTTL = 4 * time.Second
	AlertNoSelection    = "select a customer first"
	AlertNoRecipient    = "the selected customer has no email address loaded"
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Search     key.Binding
	Esc        key.Binding
	Reload     key.Binding
	Status     [4]key.Binding
	Email      key.Binding
	SendEmail  key.Binding
	NextField  key.Binding
	Note       key.Binding
	Sync       key.Binding
	CopyDetail key.Binding
	ToggleLog  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// TUIConfig carries what the program needs from the command line and config.
type TUIConfig struct {
	API          gateway.API
	APIURL       string
	EmailField   string
	DebugMode    bool
	ColorMode    string
	LogChannel   <-chan logging.LogEntry
	StatusBarTTL time.Duration
	Clipboard    func(string) error
}

// Model is the single owner of all view state. Every field is touched only
// from the Bubble Tea update loop.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool
	ColorMode      string
	APIURL         string
	EmailField     string

	API gateway.API

	// Customer list
	Customers     []customer.Summary
	Query         string
	Cursor        int
	IsLoadingList bool
	listGen       uint64

	// Selection and detail panel
	Selection        Selection
	Detail           *customer.Detail
	DetailFor        string
	IsLoadingDetail  bool
	detailGen        uint64
	cancelDetailLoad context.CancelFunc

	// Status update round trip
	StatusFlow    StatusFlow
	PendingStatus customer.Status
	PendingFor    string

	// Mail sync
	MailCount      int
	MailCountKnown bool
	Syncing        bool
	SendingEmail   bool

	// Inputs
	SearchInput     textinput.Model
	EmailSubject    textinput.Model
	EmailBody       textarea.Model
	EmailAttachment textinput.Model
	EmailFocus      int
	NoteInput       textinput.Model

	// UI State & Output
	DetailViewport   viewport.Model
	LogViewport      viewport.Model
	ActivityLog      []string
	ActivityLogDirty bool
	Spinner          spinner.Model
	Keys             KeyMap
	Help             help.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarSeq         int
	StatusBarTTL         time.Duration

	Clipboard  func(string) error
	LogChannel <-chan logging.LogEntry
}
