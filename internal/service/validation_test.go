package service

import (
	"reflect"
	"testing"

	"jira-assistant-cli/internal/api"
)

func TestBuildValidationDisplayInvalidOrder(t *testing.T) {
	eng := DefaultEngine()

	result := &api.ValidationResult{
		Success:       true,
		OrderNumber:   "ORD-1001",
		LocationCode:  "WH-EAST",
		IsValid:       false,
		MissingFields: []string{"customer_name"},
		MandatoryFields: []api.MandatoryField{
			{FieldName: "order_id", FieldValue: "ORD-1001", IsValid: true},
			{FieldName: "customer_name", FieldValue: nil, IsValid: false},
		},
	}

	display := BuildValidationDisplay(eng, result)

	if display.IsValid {
		t.Error("IsValid = true, want false")
	}
	if !reflect.DeepEqual(display.MissingFields, []string{"Customer Name"}) {
		t.Errorf("MissingFields = %v, want [Customer Name]", display.MissingFields)
	}
	if len(display.Mandatory) != 2 {
		t.Fatalf("got %d mandatory rows, want 2", len(display.Mandatory))
	}
	if display.Mandatory[0].Label != "Order ID" || !display.Mandatory[0].IsValid {
		t.Errorf("mandatory[0] = %+v", display.Mandatory[0])
	}
	if display.Mandatory[1].Label != "Customer Name" || display.Mandatory[1].IsValid {
		t.Errorf("mandatory[1] = %+v", display.Mandatory[1])
	}
	if len(display.Details) != 0 {
		t.Errorf("Details = %v, want empty", display.Details)
	}
}

func TestBuildValidationDisplayDetailsSortedByRawKey(t *testing.T) {
	eng := DefaultEngine()

	result := &api.ValidationResult{
		OrderNumber:  "ORD-2",
		LocationCode: "WH1",
		IsValid:      true,
		OrderData: api.OrderData{
			"total_amount":  129.5,
			"customer_name": "Acme Corp",
			"order_date":    "2024-01-15",
		},
	}

	display := BuildValidationDisplay(eng, result)

	want := []DetailRow{
		{Label: "Customer Name", Value: "Acme Corp"},
		{Label: "Order Date", Value: "Jan 15, 2024"},
		{Label: "Total Amount", Value: "$129.50"},
	}
	if !reflect.DeepEqual(display.Details, want) {
		t.Errorf("Details = %v, want %v", display.Details, want)
	}
}

func TestBuildValidationDisplaySkipsExcludedAndEmpty(t *testing.T) {
	eng := DefaultEngine()

	result := &api.ValidationResult{
		IsValid: true,
		OrderData: api.OrderData{
			"customer_name": "Acme Corp",
			"password":      "hunter2",
			"token":         "abc123",
			"internal_id":   991,
			"notes":         "",
			"carrier":       "   ",
			"contact_phone": nil,
		},
	}

	display := BuildValidationDisplay(eng, result)

	if len(display.Details) != 1 {
		t.Fatalf("Details = %v, want exactly the customer row", display.Details)
	}
	if display.Details[0].Label != "Customer Name" {
		t.Errorf("Details[0].Label = %q", display.Details[0].Label)
	}
}

func TestBuildValidationDisplayNil(t *testing.T) {
	display := BuildValidationDisplay(DefaultEngine(), nil)
	if display.OrderNumber != "" || len(display.Mandatory) != 0 || len(display.Details) != 0 {
		t.Errorf("BuildValidationDisplay(nil) = %+v, want zero value", display)
	}
}
