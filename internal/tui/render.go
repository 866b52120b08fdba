package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"jira-assistant-cli/internal/api"
	"jira-assistant-cli/internal/service"
)

// ─── Welcome ────────────────────────────────────────────────────────────────

func renderWelcome(version, server string) string {
	title := logoTitleStyle.Render("Jira AI Assistant") + " " + versionStyle.Render("v"+version)

	serverLine := welcomeHintStyle.Render("Run jira-assistant set server <url> to get started")
	if server != "" {
		display := server
		if len(display) > 48 {
			display = display[:45] + "..."
		}
		serverLine = dimStyle.Render(display)
	}

	var s strings.Builder
	s.WriteString(title + "\n")
	s.WriteString(serverLine + "\n\n")
	s.WriteString(dimStyle.Render("Ask about Jira issues, validate orders, or analyze issue security.") + "\n")
	s.WriteString(dimStyle.Render("Tab switches between the three panels. Enter sends.") + "\n")
	return s.String()
}

// ─── Tab bar ────────────────────────────────────────────────────────────────

func renderTabBar(active tab) string {
	var parts []string
	for _, t := range []tab{tabJira, tabValidation, tabSecurity} {
		if t == active {
			parts = append(parts, tabActiveStyle.Render(t.title()))
		} else {
			parts = append(parts, tabInactiveStyle.Render(t.title()))
		}
	}
	return strings.Join(parts, " ")
}

// ─── Transcript ─────────────────────────────────────────────────────────────

func renderTranscript(log *messageLog, spinnerView string) string {
	if log.len() == 0 {
		return dimStyle.Render("  No messages yet.")
	}

	var blocks []string
	for _, msg := range log.all() {
		blocks = append(blocks, renderMessage(msg, spinnerView))
	}
	return strings.Join(blocks, "\n\n")
}

func renderMessage(msg chatMessage, spinnerView string) string {
	if msg.loading {
		return spinnerView + " " + loadingMsgStyle.Render(msg.content)
	}

	switch msg.role {
	case roleUser:
		return userMsgStyle.Render("❯ ") + msg.content
	case roleError:
		return errorMsgStyle.Render("✗ " + msg.content)
	case roleSystem:
		return systemMsgStyle.Render(msg.content)
	default:
		return msg.content
	}
}

// ─── Search results ─────────────────────────────────────────────────────────

func renderSearch(d service.SearchDisplay) string {
	if d.NoResults {
		return warnMsgStyle.Render("No issues found matching your query.")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("Found %d issue(s):", d.Total)) + "\n")

	for _, issue := range d.Issues {
		s.WriteString("\n")
		s.WriteString(issueKeyStyle.Render(issue.Key) + " " + issue.Summary + "\n")
		s.WriteString("  " + fieldLabelStyle.Render("Status:   ") + renderStatus(issue) + "\n")
		s.WriteString("  " + fieldLabelStyle.Render("Type:     ") + issue.Type + "\n")
		s.WriteString("  " + fieldLabelStyle.Render("Assignee: ") + issue.Assignee + "\n")
		if issue.Priority != "" {
			s.WriteString("  " + fieldLabelStyle.Render("Priority: ") + issue.Priority + "\n")
		}
		if issue.Created != "" {
			s.WriteString("  " + fieldLabelStyle.Render("Created:  ") + issue.Created + "\n")
		}
		if issue.Excerpt != "" {
			s.WriteString("  " + dimStyle.Render(issue.Excerpt) + "\n")
		}
	}

	if d.Remaining > 0 {
		s.WriteString("\n" + dimStyle.Render(fmt.Sprintf("... and %d more issues", d.Remaining)) + "\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

func renderStatus(issue service.IssueDisplay) string {
	switch issue.Bucket {
	case service.StatusInProgress:
		return statusProgressStyle.Render(issue.Status)
	case service.StatusDone:
		return statusDoneStyle.Render(issue.Status)
	default:
		return statusTodoStyle.Render(issue.Status)
	}
}

// ─── Validation results ─────────────────────────────────────────────────────

func renderValidation(d service.ValidationDisplay) string {
	var s strings.Builder

	verdict := successMsgStyle.Render("✅ VALID")
	if !d.IsValid {
		verdict = errorMsgStyle.Render("❌ INVALID")
	}
	s.WriteString(headerStyle.Render(fmt.Sprintf("Order %s @ %s", d.OrderNumber, d.LocationCode)))
	s.WriteString(" — " + verdict + "\n")

	if len(d.MissingFields) > 0 {
		s.WriteString("\n" + warnMsgStyle.Render("Missing Fields: "+strings.Join(d.MissingFields, ", ")) + "\n")
	}

	if len(d.Mandatory) > 0 {
		s.WriteString("\n" + fieldLabelStyle.Render("Mandatory Fields:") + "\n")
		for _, row := range d.Mandatory {
			mark := successMsgStyle.Render("✓")
			if !row.IsValid {
				mark = errorMsgStyle.Render("✗")
			}
			s.WriteString(fmt.Sprintf("  %s %s\n", mark, row.Label))
		}
	}

	if len(d.Details) > 0 {
		s.WriteString("\n" + fieldLabelStyle.Render("Order Details:") + "\n")
		for _, row := range d.Details {
			s.WriteString(fmt.Sprintf("  %s %s\n", fieldLabelStyle.Render(row.Label+":"), row.Value))
		}
	}

	return strings.TrimRight(s.String(), "\n")
}

// ─── Security results ───────────────────────────────────────────────────────

func renderSecurity(d service.SecurityDisplay) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Security Analysis: "+d.IssueKey) + "\n")
	s.WriteString("\n" + fieldLabelStyle.Render("Risk Level: ") + renderRisk(d) + "\n")

	if d.Analysis != "" {
		s.WriteString("\n" + d.Analysis + "\n")
	}

	if len(d.Recommendations) > 0 {
		s.WriteString("\n" + fieldLabelStyle.Render("Recommendations:") + "\n")
		for i, rec := range d.Recommendations {
			s.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
		}
	}

	return strings.TrimRight(s.String(), "\n")
}

func renderRisk(d service.SecurityDisplay) string {
	label := strings.ToUpper(strings.TrimSpace(d.RiskLabel))
	if label == "" {
		label = "UNKNOWN"
	}

	switch d.Risk {
	case service.RiskLow:
		return riskLowStyle.Render(label)
	case service.RiskMedium:
		return riskMediumStyle.Render(label)
	case service.RiskHigh:
		return riskHighStyle.Render(label)
	case service.RiskCritical:
		return riskCriticalStyle.Render(label)
	default:
		return riskUnknownStyle.Render(label)
	}
}

// ─── Health & connections ───────────────────────────────────────────────────

func renderHealth(h *api.HealthStatus) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Backend Health") + "\n\n")
	s.WriteString("  " + fieldLabelStyle.Render("Status:  ") + statusStyle.Render(h.Status) + "\n")
	s.WriteString("  " + fieldLabelStyle.Render("Jira:    ") + configuredLabel(h.JiraConfigured) + "\n")
	s.WriteString("  " + fieldLabelStyle.Render("OpenAI:  ") + configuredLabel(h.OpenAIConfigured) + "\n")
	s.WriteString("  " + fieldLabelStyle.Render("Oracle:  ") + configuredLabel(h.OracleConfigured) + "\n")

	if len(h.Services) > 0 {
		s.WriteString("\n" + fieldLabelStyle.Render("Services:") + "\n")
		names := make([]string, 0, len(h.Services))
		for name := range h.Services {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			mark := errorMsgStyle.Render("✗")
			if h.Services[name] {
				mark = successMsgStyle.Render("✓")
			}
			s.WriteString(fmt.Sprintf("  %s %s\n", mark, name))
		}
	}

	return strings.TrimRight(s.String(), "\n")
}

func renderConnections(conns api.ConnectionsStatus) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Connection Tests") + "\n")

	names := make([]string, 0, len(conns))
	for name := range conns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		test := conns[name]
		s.WriteString("\n")
		if test.Success {
			s.WriteString("  " + successMsgStyle.Render("✓ "+name))
			if test.Message != "" {
				s.WriteString(" " + dimStyle.Render("— "+test.Message))
			}
		} else {
			s.WriteString("  " + errorMsgStyle.Render("✗ "+name))
			if test.Error != "" {
				s.WriteString(" " + dimStyle.Render("— "+test.Error))
			}
		}
	}

	return s.String()
}

func configuredLabel(configured bool) string {
	if configured {
		return successMsgStyle.Render("configured")
	}
	return warnMsgStyle.Render("not configured")
}

// ─── Errors ─────────────────────────────────────────────────────────────────

// renderRequestError produces exactly one error block for a failed request.
// Application errors carry the backend's own message; transport errors get a
// generic connectivity hint.
func renderRequestError(err error) string {
	var appErr *api.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Sprintf("Cannot reach the assistant backend: %v", transportErr.Err)
	}

	return err.Error()
}
