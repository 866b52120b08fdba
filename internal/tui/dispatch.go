package tui

import (
	"strings"

	"jira-assistant-cli/internal/api"
	"jira-assistant-cli/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

// ─── Request lifecycle ──────────────────────────────────────────────────────

// action identifies one of the three backend request kinds. Each action has
// an independent in-flight flag so a slow query never blocks a validation.
type action int

const (
	actionQuery action = iota
	actionValidate
	actionSecurity
)

// dispatcher tracks which actions are in flight. An action goes busy when
// its request is sent and idle again when the result message arrives;
// success and failure take the same path back.
type dispatcher struct {
	inFlight map[action]bool
}

func newDispatcher() *dispatcher {
	return &dispatcher{inFlight: make(map[action]bool)}
}

func (d *dispatcher) busy(a action) bool {
	return d.inFlight[a]
}

// begin marks a as in flight. Returns false when a request for this action
// is already running, in which case the caller must not send another.
func (d *dispatcher) begin(a action) bool {
	if d.inFlight[a] {
		return false
	}
	d.inFlight[a] = true
	return true
}

func (d *dispatcher) finish(a action) {
	delete(d.inFlight, a)
}

// ─── Result messages ────────────────────────────────────────────────────────

type queryResultMsg struct {
	display service.SearchDisplay
	err     error
}

type validateResultMsg struct {
	display service.ValidationDisplay
	err     error
}

type securityResultMsg struct {
	display service.SecurityDisplay
	err     error
}

type healthResultMsg struct {
	health *api.HealthStatus
	err    error
}

type connectionsResultMsg struct {
	conns api.ConnectionsStatus
	err   error
}

// ─── Commands ───────────────────────────────────────────────────────────────
//
// Each command runs the blocking API call off the Update loop and delivers
// exactly one result message. Input trimming happens here, before send.

func sendQuery(client api.AssistantAPI, eng *service.Engine, query string) tea.Cmd {
	query = strings.TrimSpace(query)
	return func() tea.Msg {
		data, err := client.Query(query)
		if err != nil {
			return queryResultMsg{err: err}
		}
		return queryResultMsg{display: service.BuildSearchDisplay(eng, data)}
	}
}

func sendValidateOrder(client api.AssistantAPI, eng *service.Engine, orderNumber, locationCode string) tea.Cmd {
	orderNumber = strings.TrimSpace(orderNumber)
	locationCode = strings.TrimSpace(locationCode)
	return func() tea.Msg {
		result, err := client.ValidateOrder(orderNumber, locationCode)
		if err != nil {
			return validateResultMsg{err: err}
		}
		return validateResultMsg{display: service.BuildValidationDisplay(eng, result)}
	}
}

func sendAnalyzeSecurity(client api.AssistantAPI, issueKey string) tea.Cmd {
	issueKey = strings.TrimSpace(issueKey)
	return func() tea.Msg {
		result, err := client.AnalyzeSecurity(issueKey)
		if err != nil {
			return securityResultMsg{err: err}
		}
		return securityResultMsg{display: service.BuildSecurityDisplay(result)}
	}
}

func fetchHealth(client api.AssistantAPI) tea.Cmd {
	return func() tea.Msg {
		health, err := client.Health()
		return healthResultMsg{health: health, err: err}
	}
}

func fetchConnections(client api.AssistantAPI) tea.Cmd {
	return func() tea.Msg {
		conns, err := client.TestConnections()
		return connectionsResultMsg{conns: conns, err: err}
	}
}
