package service

import (
	"sort"

	"jira-assistant-cli/internal/api"
)

// MandatoryRow is one pass/fail row in the mandatory-fields status block.
type MandatoryRow struct {
	Label   string
	IsValid bool
}

// DetailRow is one "label: value" line of the order-details block.
type DetailRow struct {
	Label string
	Value string
}

// ValidationDisplay is the rendering-ready form of an order validation
// result.
type ValidationDisplay struct {
	OrderNumber   string
	LocationCode  string
	IsValid       bool
	MissingFields []string // display labels, rendered before the mandatory block
	Mandatory     []MandatoryRow
	Details       []DetailRow // empty when the backend sent no order data
}

// BuildValidationDisplay maps a raw validation result to display rows.
// Mandatory rows keep their input order; detail rows are sorted by raw key,
// with excluded and empty fields skipped entirely.
func BuildValidationDisplay(eng *Engine, result *api.ValidationResult) ValidationDisplay {
	if result == nil {
		return ValidationDisplay{}
	}

	display := ValidationDisplay{
		OrderNumber:  result.OrderNumber,
		LocationCode: result.LocationCode,
		IsValid:      result.IsValid,
	}

	for _, name := range result.MissingFields {
		display.MissingFields = append(display.MissingFields, eng.Label(name))
	}

	for _, field := range result.MandatoryFields {
		display.Mandatory = append(display.Mandatory, MandatoryRow{
			Label:   eng.Label(field.FieldName),
			IsValid: field.IsValid,
		})
	}

	if len(result.OrderData) > 0 {
		keys := make([]string, 0, len(result.OrderData))
		for key := range result.OrderData {
			if eng.IsExcluded(key) || IsEmptyValue(result.OrderData[key]) {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			display.Details = append(display.Details, DetailRow{
				Label: eng.Label(key),
				Value: eng.Format(key, result.OrderData[key]),
			})
		}
	}

	return display
}
