package tui

import (
	"fmt"
	"strings"

	"jira-assistant-cli/internal/api"
	"jira-assistant-cli/internal/config"
	"jira-assistant-cli/internal/service"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// valField indexes the two inputs of the validation tab.
const (
	valFieldOrder = iota
	valFieldLocation
)

// ─── Model ──────────────────────────────────────────────────────────────────

type model struct {
	width  int
	height int
	ready  bool

	tabs     *tabController
	log      *messageLog
	dispatch *dispatcher

	// Bubble Tea components
	viewport viewport.Model
	spinner  spinner.Model

	queryInput    textinput.Model
	orderInput    textinput.Model
	locationInput textinput.Model
	keyInput      textinput.Model
	valFocus      int

	cfg     *config.Config
	client  api.AssistantAPI
	eng     *service.Engine
	version string
	profile string
}

func initialModel(version, profile string) model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 1024
		ti.Prompt = "❯ "
		ti.PromptStyle = promptSymbol
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(colorBlue)
		return ti
	}

	queryInput := newInput("Ask about Jira issues...")
	queryInput.CharLimit = 4096
	queryInput.Focus()

	orderInput := newInput("Order number (e.g. ORD-1001)...")
	locationInput := newInput("Location code (e.g. WH-EAST)...")
	keyInput := newInput("Issue key (e.g. PROJ-123)...")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorYellow)

	cfg, _ := config.Load(profile)

	var client api.AssistantAPI
	if cfg != nil && cfg.Server != "" {
		client = api.NewClient(cfg)
	}

	log := newMessageLog()
	log.addWelcome(renderWelcome(version, serverStr(cfg)))

	return model{
		tabs:          newTabController(),
		log:           log,
		dispatch:      newDispatcher(),
		viewport:      viewport.New(0, 0),
		spinner:       sp,
		queryInput:    queryInput,
		orderInput:    orderInput,
		locationInput: locationInput,
		keyInput:      keyInput,
		cfg:           cfg,
		client:        client,
		eng:           service.DefaultEngine(),
		version:       version,
		profile:       profile,
	}
}

// ─── Init ───────────────────────────────────────────────────────────────────

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

// ─── Update ─────────────────────────────────────────────────────────────────

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = max(m.height-m.chromeHeight(), 3)
		for _, ti := range []*textinput.Model{&m.queryInput, &m.orderInput, &m.locationInput, &m.keyInput} {
			ti.Width = m.width - 16
		}
		m.ready = true
		m.syncViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyTab:
			m.tabs.next()
			m.valFocus = valFieldOrder
			cmds = append(cmds, m.focusActive())
			m.syncViewport()
			return m, tea.Batch(cmds...)

		case tea.KeyShiftTab:
			m.tabs.prev()
			m.valFocus = valFieldOrder
			cmds = append(cmds, m.focusActive())
			m.syncViewport()
			return m, tea.Batch(cmds...)

		case tea.KeyUp, tea.KeyDown:
			if m.tabs.activeTab() == tabValidation {
				m.valFocus = 1 - m.valFocus
				cmds = append(cmds, m.focusActive())
				return m, tea.Batch(cmds...)
			}

		case tea.KeyEnter:
			return m.submitActive()

		case tea.KeyCtrlG:
			return m.requestHealth()

		case tea.KeyCtrlT:
			return m.requestConnections()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.log.hasLoading() {
			m.syncViewport()
		}
		return m, tea.Batch(cmds...)

	// ── Async results ─────────────────────────────────────────────────
	case queryResultMsg:
		return m.handleQueryResult(msg)

	case validateResultMsg:
		return m.handleValidateResult(msg)

	case securityResultMsg:
		return m.handleSecurityResult(msg)

	case healthResultMsg:
		return m.handleHealthResult(msg)

	case connectionsResultMsg:
		return m.handleConnectionsResult(msg)
	}

	// Update sub-components
	var cmd tea.Cmd

	switch m.tabs.activeTab() {
	case tabJira:
		m.queryInput, cmd = m.queryInput.Update(msg)
	case tabValidation:
		if m.valFocus == valFieldOrder {
			m.orderInput, cmd = m.orderInput.Update(msg)
		} else {
			m.locationInput, cmd = m.locationInput.Update(msg)
		}
	case tabSecurity:
		m.keyInput, cmd = m.keyInput.Update(msg)
	}
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// ─── Submissions ────────────────────────────────────────────────────────────

func (m model) submitActive() (tea.Model, tea.Cmd) {
	switch m.tabs.activeTab() {
	case tabJira:
		return m.submitQuery()
	case tabValidation:
		return m.submitValidation()
	case tabSecurity:
		return m.submitSecurity()
	}
	return m, nil
}

func (m model) submitQuery() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.queryInput.Value())
	if text == "" {
		return m, nil
	}
	if m.client == nil {
		return m.reportNoServer()
	}
	if !m.dispatch.begin(actionQuery) {
		return m, nil
	}

	m.log.add(roleUser, text)
	m.log.addLoading("Searching Jira issues...")
	m.queryInput.SetValue("")
	m.syncViewport()

	return m, sendQuery(m.client, m.eng, text)
}

func (m model) submitValidation() (tea.Model, tea.Cmd) {
	orderNumber := strings.TrimSpace(m.orderInput.Value())
	locationCode := strings.TrimSpace(m.locationInput.Value())

	// Enter on a filled order field jumps to the empty location field.
	if orderNumber != "" && locationCode == "" && m.valFocus == valFieldOrder {
		m.valFocus = valFieldLocation
		return m, m.focusActive()
	}
	if orderNumber == "" || locationCode == "" {
		m.log.add(roleError, "Please enter both order number and location code")
		m.syncViewport()
		return m, nil
	}
	if m.client == nil {
		return m.reportNoServer()
	}
	if !m.dispatch.begin(actionValidate) {
		return m, nil
	}

	m.log.add(roleUser, fmt.Sprintf("Validate order: %s at %s", orderNumber, strings.ToUpper(locationCode)))
	m.log.addLoading("Validating order...")
	m.orderInput.SetValue("")
	m.locationInput.SetValue("")
	m.valFocus = valFieldOrder
	focusCmd := m.focusActive()
	m.syncViewport()

	return m, tea.Batch(focusCmd, sendValidateOrder(m.client, m.eng, orderNumber, locationCode))
}

func (m model) submitSecurity() (tea.Model, tea.Cmd) {
	issueKey := strings.TrimSpace(m.keyInput.Value())
	if issueKey == "" {
		m.log.add(roleError, "Please enter an issue key")
		m.syncViewport()
		return m, nil
	}
	if m.client == nil {
		return m.reportNoServer()
	}
	if !m.dispatch.begin(actionSecurity) {
		return m, nil
	}

	m.log.add(roleUser, "Analyze security for issue: "+strings.ToUpper(issueKey))
	m.log.addLoading("Analyzing security...")
	m.keyInput.SetValue("")
	m.syncViewport()

	return m, sendAnalyzeSecurity(m.client, issueKey)
}

func (m model) requestHealth() (tea.Model, tea.Cmd) {
	if m.client == nil {
		return m.reportNoServer()
	}
	m.log.addLoading("Checking backend health...")
	m.syncViewport()
	return m, fetchHealth(m.client)
}

func (m model) requestConnections() (tea.Model, tea.Cmd) {
	if m.client == nil {
		return m.reportNoServer()
	}
	m.log.addLoading("Testing backend connections...")
	m.syncViewport()
	return m, fetchConnections(m.client)
}

func (m model) reportNoServer() (tea.Model, tea.Cmd) {
	m.log.add(roleError, fmt.Sprintf("No server configured. Run: jira-assistant%s set server <url>", profileFlag(m.profile)))
	m.syncViewport()
	return m, nil
}

// ─── Result handlers ────────────────────────────────────────────────────────
//
// Every handler releases its action and drops the loading placeholder before
// anything else, so a failed request can never leave the tab stuck.

func (m model) handleQueryResult(msg queryResultMsg) (tea.Model, tea.Cmd) {
	m.dispatch.finish(actionQuery)
	m.log.removeLoading()

	if msg.err != nil {
		m.log.add(roleError, renderRequestError(msg.err))
	} else {
		m.log.add(roleAssistant, renderSearch(msg.display))
	}
	m.syncViewport()
	return m, nil
}

func (m model) handleValidateResult(msg validateResultMsg) (tea.Model, tea.Cmd) {
	m.dispatch.finish(actionValidate)
	m.log.removeLoading()

	if msg.err != nil {
		m.log.add(roleError, renderRequestError(msg.err))
	} else {
		m.log.add(roleAssistant, renderValidation(msg.display))
	}
	m.syncViewport()
	return m, nil
}

func (m model) handleSecurityResult(msg securityResultMsg) (tea.Model, tea.Cmd) {
	m.dispatch.finish(actionSecurity)
	m.log.removeLoading()

	if msg.err != nil {
		m.log.add(roleError, renderRequestError(msg.err))
	} else {
		m.log.add(roleAssistant, renderSecurity(msg.display))
	}
	m.syncViewport()
	return m, nil
}

func (m model) handleHealthResult(msg healthResultMsg) (tea.Model, tea.Cmd) {
	m.log.removeLoading()

	if msg.err != nil {
		m.log.add(roleError, renderRequestError(msg.err))
	} else {
		m.log.add(roleAssistant, renderHealth(msg.health))
	}
	m.syncViewport()
	return m, nil
}

func (m model) handleConnectionsResult(msg connectionsResultMsg) (tea.Model, tea.Cmd) {
	m.log.removeLoading()

	if msg.err != nil {
		m.log.add(roleError, renderRequestError(msg.err))
	} else {
		m.log.add(roleAssistant, renderConnections(msg.conns))
	}
	m.syncViewport()
	return m, nil
}

// ─── View ───────────────────────────────────────────────────────────────────

func (m model) View() string {
	if !m.ready {
		return ""
	}

	var s strings.Builder

	s.WriteString(renderTabBar(m.tabs.activeTab()))
	s.WriteString("\n")
	s.WriteString(m.separator())
	s.WriteString("\n")

	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.separator())
	s.WriteString("\n")

	s.WriteString(m.renderInputArea())
	s.WriteString(m.renderHints())

	return s.String()
}

func (m model) renderInputArea() string {
	var s strings.Builder

	switch m.tabs.activeTab() {
	case tabJira:
		s.WriteString(m.queryInput.View() + "\n")

	case tabValidation:
		orderLabel := inputLabelStyle.Render("Order #  ")
		locationLabel := inputLabelStyle.Render("Location ")
		if m.valFocus == valFieldOrder {
			orderLabel = inputLabelFocusStyle.Render("Order #  ")
		} else {
			locationLabel = inputLabelFocusStyle.Render("Location ")
		}
		s.WriteString(orderLabel + m.orderInput.View() + "\n")
		s.WriteString(locationLabel + m.locationInput.View() + "\n")

	case tabSecurity:
		s.WriteString(m.keyInput.View() + "\n")
	}

	return s.String()
}

func (m model) renderHints() string {
	hints := "Tab switch panel   Enter send   Ctrl+G health   Ctrl+T connections   Ctrl+C quit"
	if m.tabs.activeTab() == tabValidation {
		hints = "↑↓ switch field   " + hints
	}
	return hintBarStyle.Render("  " + hints)
}

func (m model) separator() string {
	sepWidth := min(m.width, 80)
	if sepWidth < 20 {
		sepWidth = 20
	}
	return separatorStyle.Render(strings.Repeat("─", sepWidth))
}

// chromeHeight is everything the View renders besides the transcript.
func (m model) chromeHeight() int {
	h := 5 // tab bar, two separators, input line, hint bar
	if m.tabs.activeTab() == tabValidation {
		h++ // second input line
	}
	return h
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func (m *model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderTranscript(m.log, m.spinner.View()))
	m.viewport.GotoBottom()
}

// focusActive gives keyboard focus to the active tab's input.
func (m *model) focusActive() tea.Cmd {
	m.queryInput.Blur()
	m.orderInput.Blur()
	m.locationInput.Blur()
	m.keyInput.Blur()

	switch m.tabs.activeTab() {
	case tabJira:
		return m.queryInput.Focus()
	case tabValidation:
		if m.valFocus == valFieldLocation {
			return m.locationInput.Focus()
		}
		return m.orderInput.Focus()
	case tabSecurity:
		return m.keyInput.Focus()
	}
	return nil
}

func serverStr(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Server
}

func profileFlag(profile string) string {
	if profile == "" {
		return ""
	}
	return " --profile " + profile
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
