package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Engine turns raw backend field names and values into display labels and
// display strings. It is read-only after construction; one instance is
// shared by all formatters.
type Engine struct {
	labels   map[string]string
	excluded map[string]bool
	rules    []formatRule
}

// formatRule pairs a field-name predicate with a formatter. Rules are
// evaluated in order; the first match wins, and the last rule always matches.
type formatRule struct {
	match  func(normalized string) bool
	format func(value any) string
}

// DefaultEngine builds the engine with the standard label table, exclusion
// set, and formatter rules (currency, then date, then identity).
func DefaultEngine() *Engine {
	return &Engine{
		labels: map[string]string{
			"order_id":    "Order ID",
			"customer_id": "Customer ID",
		},
		excluded: map[string]bool{
			"password":    true,
			"token":       true,
			"internal_id": true,
		},
		rules: []formatRule{
			{
				match: func(name string) bool {
					return strings.Contains(name, "amount") || strings.Contains(name, "price")
				},
				format: formatCurrency,
			},
			{
				match: func(name string) bool {
					return strings.Contains(name, "date")
				},
				format: formatDate,
			},
			{
				match:  func(string) bool { return true },
				format: formatIdentity,
			},
		},
	}
}

// Label returns the display label for a field name. Names not in the label
// table fall back to splitting on underscores and capitalizing each segment.
func (e *Engine) Label(fieldName string) string {
	if label, ok := e.labels[fieldName]; ok {
		return label
	}
	parts := strings.Split(fieldName, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Format renders a field value using the first matching rule for the
// normalized (lower-cased) field name. It never fails.
func (e *Engine) Format(fieldName string, value any) string {
	name := strings.ToLower(fieldName)
	for _, rule := range e.rules {
		if rule.match(name) {
			return rule.format(value)
		}
	}
	return formatIdentity(value)
}

// IsExcluded reports whether the field must never be rendered.
func (e *Engine) IsExcluded(fieldName string) bool {
	return e.excluded[strings.ToLower(fieldName)]
}

// IsEmptyValue reports whether a field value should be skipped entirely
// (no row at all, not even an N/A placeholder).
func IsEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// usd applies en-US number formatting (grouping, two decimals).
var usd = message.NewPrinter(language.AmericanEnglish)

func formatCurrency(value any) string {
	switch v := value.(type) {
	case nil:
		return "N/A"
	case float64:
		return usd.Sprintf("$%.2f", v)
	case float32:
		return usd.Sprintf("$%.2f", float64(v))
	case int:
		return usd.Sprintf("$%.2f", float64(v))
	case int64:
		return usd.Sprintf("$%.2f", float64(v))
	case string:
		if v == "" {
			return "N/A"
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

// dateLayouts are tried in order. The first is Jira's created-field format.
var dateLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatDate(value any) string {
	switch v := value.(type) {
	case nil:
		return "N/A"
	case string:
		if v == "" {
			return "N/A"
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format("Jan 2, 2006")
			}
		}
		// Unparseable dates pass through unchanged rather than failing.
		return v
	default:
		return formatIdentity(value)
	}
}

func formatIdentity(value any) string {
	switch v := value.(type) {
	case nil:
		return "N/A"
	case string:
		if v == "" {
			return "N/A"
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
