package service

import (
	"strings"

	"jira-assistant-cli/internal/api"
)

// maxIssuesShown caps how many issues a single result block renders.
const maxIssuesShown = 10

// descriptionExcerptLen is the excerpt cap for issue descriptions.
const descriptionExcerptLen = 200

// StatusBucket groups arbitrary workflow status names into three visual
// categories.
type StatusBucket int

const (
	StatusTodo StatusBucket = iota
	StatusInProgress
	StatusDone
)

// IssueDisplay holds one rendering-ready issue row.
type IssueDisplay struct {
	Key      string
	Summary  string
	Status   string
	Bucket   StatusBucket
	Type     string
	Assignee string
	Priority string // empty when the backend sent none
	Created  string
	Excerpt  string // empty when the issue has no description
}

// SearchDisplay is the rendering-ready form of an issue search result.
type SearchDisplay struct {
	NoResults bool
	Total     int
	Issues    []IssueDisplay
	Remaining int // issues beyond the displayed cap
}

// BucketStatus classifies a workflow status name by substring match.
func BucketStatus(status string) StatusBucket {
	s := strings.ToLower(status)
	if strings.Contains(s, "progress") || strings.Contains(s, "development") {
		return StatusInProgress
	}
	if strings.Contains(s, "done") || strings.Contains(s, "closed") || strings.Contains(s, "resolved") {
		return StatusDone
	}
	return StatusTodo
}

// BuildSearchDisplay maps a raw search payload to display rows, in received
// order, capped at maxIssuesShown.
func BuildSearchDisplay(eng *Engine, data *api.SearchData) SearchDisplay {
	if data == nil || len(data.Issues) == 0 {
		return SearchDisplay{NoResults: true}
	}

	display := SearchDisplay{Total: data.Total}

	issues := data.Issues
	if len(issues) > maxIssuesShown {
		issues = issues[:maxIssuesShown]
	}

	for _, issue := range issues {
		f := issue.Fields

		assignee := "Unassigned"
		if f.Assignee != nil && f.Assignee.DisplayName != "" {
			assignee = f.Assignee.DisplayName
		}

		priority := ""
		if f.Priority != nil {
			priority = f.Priority.Name
		}

		display.Issues = append(display.Issues, IssueDisplay{
			Key:      issue.Key,
			Summary:  f.Summary,
			Status:   f.Status.Name,
			Bucket:   BucketStatus(f.Status.Name),
			Type:     f.IssueType.Name,
			Assignee: assignee,
			Priority: priority,
			Created:  eng.Format("created_date", f.Created),
			Excerpt:  Excerpt(f.Description, descriptionExcerptLen),
		})
	}

	if data.Total > maxIssuesShown {
		display.Remaining = data.Total - maxIssuesShown
	}

	return display
}

// Excerpt truncates text to max runes, appending an ellipsis marker when
// anything was cut.
func Excerpt(text string, max int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
