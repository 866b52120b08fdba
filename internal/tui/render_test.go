package tui

import (
	"errors"
	"strings"
	"testing"

	"jira-assistant-cli/internal/api"
	"jira-assistant-cli/internal/service"
)

func TestRenderSearchNoResults(t *testing.T) {
	out := renderSearch(service.SearchDisplay{NoResults: true})
	if !strings.Contains(out, "No issues found") {
		t.Errorf("output = %q, want the no-results notice", out)
	}
}

func TestRenderSearch(t *testing.T) {
	d := service.SearchDisplay{
		Total: 2,
		Issues: []service.IssueDisplay{
			{
				Key:      "PROJ-1",
				Summary:  "Login fails",
				Status:   "In Progress",
				Bucket:   service.StatusInProgress,
				Type:     "Bug",
				Assignee: "Dana Fox",
				Priority: "High",
				Created:  "Jan 15, 2024",
				Excerpt:  "Session token expires early.",
			},
			{
				Key:      "PROJ-2",
				Summary:  "Slow dashboard",
				Status:   "To Do",
				Bucket:   service.StatusTodo,
				Type:     "Task",
				Assignee: "Unassigned",
			},
		},
	}

	out := renderSearch(d)

	for _, want := range []string{
		"Found 2 issue(s):",
		"PROJ-1", "Login fails", "In Progress", "Dana Fox", "High", "Jan 15, 2024",
		"Session token expires early.",
		"PROJ-2", "Unassigned",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "more issues") {
		t.Error("remainder line shown with no remaining issues")
	}
}

func TestRenderSearchRemainder(t *testing.T) {
	d := service.SearchDisplay{Total: 23, Remaining: 13}
	for i := 0; i < 10; i++ {
		d.Issues = append(d.Issues, service.IssueDisplay{Key: "PROJ-1", Summary: "x", Status: "Open"})
	}

	out := renderSearch(d)
	if !strings.Contains(out, "... and 13 more issues") {
		t.Errorf("output missing remainder line:\n%s", out)
	}
}

func TestRenderValidation(t *testing.T) {
	d := service.ValidationDisplay{
		OrderNumber:   "ORD-1001",
		LocationCode:  "WH-EAST",
		IsValid:       false,
		MissingFields: []string{"Customer Name", "Order Date"},
		Mandatory: []service.MandatoryRow{
			{Label: "Order ID", IsValid: true},
			{Label: "Customer Name", IsValid: false},
		},
		Details: []service.DetailRow{
			{Label: "Total Amount", Value: "$129.50"},
		},
	}

	out := renderValidation(d)

	for _, want := range []string{
		"ORD-1001", "WH-EAST", "INVALID",
		"Missing Fields: Customer Name, Order Date",
		"Mandatory Fields:", "Order ID",
		"Order Details:", "Total Amount", "$129.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Missing fields render before the mandatory block
	if strings.Index(out, "Missing Fields:") > strings.Index(out, "Mandatory Fields:") {
		t.Error("missing fields rendered after the mandatory block")
	}
}

func TestRenderValidationValid(t *testing.T) {
	d := service.ValidationDisplay{OrderNumber: "ORD-2", LocationCode: "WH1", IsValid: true}
	out := renderValidation(d)

	if !strings.Contains(out, "VALID") {
		t.Errorf("output missing verdict:\n%s", out)
	}
	if strings.Contains(out, "Missing Fields") || strings.Contains(out, "Order Details") {
		t.Error("empty sections rendered")
	}
}

func TestRenderSecurity(t *testing.T) {
	d := service.SecurityDisplay{
		IssueKey:        "SEC-7",
		RiskLabel:       "High",
		Risk:            service.RiskHigh,
		Analysis:        "Credentials visible in the log.",
		Recommendations: []string{"Rotate the key", "Scrub the attachment"},
	}

	out := renderSecurity(d)

	for _, want := range []string{
		"Security Analysis: SEC-7",
		"HIGH",
		"Credentials visible in the log.",
		"1. Rotate the key",
		"2. Scrub the attachment",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSecurityUnknownRisk(t *testing.T) {
	d := service.SecurityDisplay{IssueKey: "SEC-8", RiskLabel: "Elevated", Risk: service.RiskUnknown}
	out := renderSecurity(d)
	if !strings.Contains(out, "ELEVATED") {
		t.Errorf("unknown risk should keep its text upper-cased:\n%s", out)
	}
}

func TestRenderHealth(t *testing.T) {
	h := &api.HealthStatus{
		Status:           "healthy",
		JiraConfigured:   true,
		OpenAIConfigured: true,
		OracleConfigured: false,
		Services: map[string]bool{
			"jira_service":    true,
			"order_validator": false,
		},
	}

	out := renderHealth(h)

	for _, want := range []string{"healthy", "configured", "not configured", "jira_service", "order_validator"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderConnections(t *testing.T) {
	conns := api.ConnectionsStatus{
		"oracle": {Success: false, Error: "listener refused"},
		"jira":   {Success: true, Message: "connected as bot"},
	}

	out := renderConnections(conns)

	if !strings.Contains(out, "jira") || !strings.Contains(out, "oracle") {
		t.Fatalf("output missing connection names:\n%s", out)
	}
	// Deterministic alphabetical order
	if strings.Index(out, "jira") > strings.Index(out, "oracle") {
		t.Error("connections not sorted by name")
	}
	if !strings.Contains(out, "connected as bot") || !strings.Contains(out, "listener refused") {
		t.Error("per-connection detail missing")
	}
}

func TestRenderRequestError(t *testing.T) {
	appErr := &api.AppError{Message: "Order not found"}
	if got := renderRequestError(appErr); got != "Order not found" {
		t.Errorf("app error = %q, want the backend message verbatim", got)
	}

	transportErr := &api.TransportError{Op: "query", Err: errors.New("connection refused")}
	got := renderRequestError(transportErr)
	if !strings.Contains(got, "Cannot reach") || !strings.Contains(got, "connection refused") {
		t.Errorf("transport error = %q, want the connectivity hint", got)
	}

	plain := errors.New("something else")
	if got := renderRequestError(plain); got != "something else" {
		t.Errorf("plain error = %q", got)
	}
}

func TestRenderTabBarMarksActive(t *testing.T) {
	for _, tb := range []tab{tabJira, tabValidation, tabSecurity} {
		out := renderTabBar(tb)
		for _, other := range []tab{tabJira, tabValidation, tabSecurity} {
			if !strings.Contains(out, other.title()) {
				t.Errorf("tab bar missing %q", other.title())
			}
		}
	}
}

func TestRenderTranscriptEmpty(t *testing.T) {
	out := renderTranscript(newMessageLog(), "")
	if !strings.Contains(out, "No messages yet") {
		t.Errorf("empty transcript = %q", out)
	}
}
