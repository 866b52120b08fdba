package service

import (
	"reflect"
	"testing"

	"jira-assistant-cli/internal/api"
)

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		level string
		want  RiskLevel
	}{
		{"low", RiskLow},
		{"Medium", RiskMedium},
		{"HIGH", RiskHigh},
		{"Critical", RiskCritical},
		{"  high  ", RiskHigh},
		{"severe", RiskUnknown},
		{"", RiskUnknown},
	}

	for _, tt := range tests {
		if got := ParseRiskLevel(tt.level); got != tt.want {
			t.Errorf("ParseRiskLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestBuildSecurityDisplay(t *testing.T) {
	result := &api.SecurityResult{
		Success:         true,
		IssueKey:        "SEC-7",
		RiskLevel:       "High",
		Analysis:        "Credentials visible in the attached log.",
		Recommendations: []string{"Rotate the exposed key", "Scrub the attachment"},
	}

	display := BuildSecurityDisplay(result)

	if display.IssueKey != "SEC-7" {
		t.Errorf("IssueKey = %q", display.IssueKey)
	}
	if display.Risk != RiskHigh {
		t.Errorf("Risk = %v, want RiskHigh", display.Risk)
	}
	if display.RiskLabel != "High" {
		t.Errorf("RiskLabel = %q, want verbatim High", display.RiskLabel)
	}
	if !reflect.DeepEqual(display.Recommendations, result.Recommendations) {
		t.Errorf("Recommendations = %v", display.Recommendations)
	}
}

func TestBuildSecurityDisplayAbsentFields(t *testing.T) {
	display := BuildSecurityDisplay(&api.SecurityResult{IssueKey: "SEC-8", RiskLevel: "High"})

	if display.Risk != RiskHigh {
		t.Errorf("Risk = %v, want RiskHigh", display.Risk)
	}
	if display.Analysis != "" {
		t.Errorf("Analysis = %q, want empty", display.Analysis)
	}
	if len(display.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty", display.Recommendations)
	}
}

func TestBuildSecurityDisplayUnknownLevelKeepsText(t *testing.T) {
	display := BuildSecurityDisplay(&api.SecurityResult{IssueKey: "SEC-9", RiskLevel: "Elevated"})

	if display.Risk != RiskUnknown {
		t.Errorf("Risk = %v, want RiskUnknown", display.Risk)
	}
	if display.RiskLabel != "Elevated" {
		t.Errorf("RiskLabel = %q, want Elevated", display.RiskLabel)
	}
}

func TestBuildSecurityDisplayNil(t *testing.T) {
	display := BuildSecurityDisplay(nil)
	if display.IssueKey != "" || display.Risk != RiskUnknown {
		t.Errorf("BuildSecurityDisplay(nil) = %+v, want zero value", display)
	}
}
