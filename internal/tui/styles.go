package tui

import "github.com/charmbracelet/lipgloss"

// ─── Colors ─────────────────────────────────────────────────────────────────

var (
	colorBlue    = lipgloss.Color("111")
	colorGreen   = lipgloss.Color("78")
	colorYellow  = lipgloss.Color("220")
	colorOrange  = lipgloss.Color("208")
	colorRed     = lipgloss.Color("196")
	colorMagenta = lipgloss.Color("213")
	colorGray    = lipgloss.Color("242")
	colorDimGray = lipgloss.Color("238")
	colorWhite   = lipgloss.Color("255")
)

// ─── Welcome ────────────────────────────────────────────────────────────────

var logoTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite)

var versionStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var welcomeHintStyle = lipgloss.NewStyle().
	Foreground(colorGray).
	Italic(true)

// ─── Tabs ───────────────────────────────────────────────────────────────────

var tabActiveStyle = lipgloss.NewStyle().
	Foreground(colorWhite).
	Bold(true).
	Reverse(true).
	Padding(0, 1)

var tabInactiveStyle = lipgloss.NewStyle().
	Foreground(colorGray).
	Padding(0, 1)

// ─── Input / Prompt ─────────────────────────────────────────────────────────

var promptSymbol = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true)

var inputLabelStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var inputLabelFocusStyle = lipgloss.NewStyle().
	Foreground(colorWhite).
	Bold(true)

// ─── Hint Bar ───────────────────────────────────────────────────────────────

var hintBarStyle = lipgloss.NewStyle().
	Foreground(colorGray)

// ─── Message Roles ──────────────────────────────────────────────────────────

var userMsgStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true)

var systemMsgStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var loadingMsgStyle = lipgloss.NewStyle().
	Foreground(colorYellow).
	Italic(true)

// ─── Output Styles ──────────────────────────────────────────────────────────

var successMsgStyle = lipgloss.NewStyle().
	Foreground(colorGreen)

var errorMsgStyle = lipgloss.NewStyle().
	Foreground(colorRed)

var warnMsgStyle = lipgloss.NewStyle().
	Foreground(colorYellow)

var statusStyle = lipgloss.NewStyle().
	Foreground(colorYellow)

var headerStyle = lipgloss.NewStyle().
	Foreground(colorMagenta).
	Bold(true)

var issueKeyStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true)

var fieldLabelStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var dimStyle = lipgloss.NewStyle().
	Foreground(colorGray)

var separatorStyle = lipgloss.NewStyle().
	Foreground(colorDimGray)

// ─── Status Buckets ─────────────────────────────────────────────────────────

var statusTodoStyle = lipgloss.NewStyle().
	Foreground(colorBlue)

var statusProgressStyle = lipgloss.NewStyle().
	Foreground(colorYellow)

var statusDoneStyle = lipgloss.NewStyle().
	Foreground(colorGreen)

// ─── Risk Levels ────────────────────────────────────────────────────────────

var riskLowStyle = lipgloss.NewStyle().
	Foreground(colorGreen).
	Bold(true)

var riskMediumStyle = lipgloss.NewStyle().
	Foreground(colorYellow).
	Bold(true)

var riskHighStyle = lipgloss.NewStyle().
	Foreground(colorOrange).
	Bold(true)

var riskCriticalStyle = lipgloss.NewStyle().
	Foreground(colorRed).
	Bold(true).
	Reverse(true)

var riskUnknownStyle = lipgloss.NewStyle().
	Foreground(colorGray).
	Bold(true)
