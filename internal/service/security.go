package service

import (
	"strings"

	"jira-assistant-cli/internal/api"
)

// RiskLevel is the recognized severity scale for security analyses.
type RiskLevel int

const (
	RiskUnknown RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

// SecurityDisplay is the rendering-ready form of a security analysis result.
type SecurityDisplay struct {
	IssueKey        string
	RiskLabel       string // verbatim backend text, empty when absent
	Risk            RiskLevel
	Analysis        string
	Recommendations []string
}

// ParseRiskLevel matches the four recognized levels case-insensitively.
// Anything else maps to RiskUnknown and keeps its original text.
func ParseRiskLevel(level string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	case "critical":
		return RiskCritical
	default:
		return RiskUnknown
	}
}

// BuildSecurityDisplay maps a raw security result to its display form.
// Recommendations keep their input order; absent fields stay empty.
func BuildSecurityDisplay(result *api.SecurityResult) SecurityDisplay {
	if result == nil {
		return SecurityDisplay{}
	}
	return SecurityDisplay{
		IssueKey:        result.IssueKey,
		RiskLabel:       result.RiskLevel,
		Risk:            ParseRiskLevel(result.RiskLevel),
		Analysis:        result.Analysis,
		Recommendations: result.Recommendations,
	}
}
