package models

import (
	"testing"
)

func TestProjectCreationValidate(t *testing.T) {
	valid := ProjectCreation{
		Name:      "Wheat trials 2026",
		Shortname: "wheat26",
		StartDate: "2026-03-01",
		EndDate:   "2026-09-30",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid project rejected: %v", err)
	}

	missing := ProjectCreation{StartDate: "2026-03-01"}
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing name")
	}

	badDate := valid
	badDate.StartDate = "03/01/2026"
	if err := badDate.Validate(); err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestExperimentCreationValidate(t *testing.T) {
	valid := ExperimentCreation{
		Name:      "Drought response",
		StartDate: "2026-04-15",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid experiment rejected: %v", err)
	}

	noStart := ExperimentCreation{Name: "Drought response"}
	if err := noStart.Validate(); err == nil {
		t.Error("expected error for missing start date")
	}
}

func TestVariableCreationValidate(t *testing.T) {
	valid := VariableCreation{
		Name:           "plant height",
		Entity:         "http://opensilex.dev/id/entity/plant",
		Characteristic: "http://opensilex.dev/id/characteristic/height",
		Method:         "http://opensilex.dev/id/method/ruler",
		Unit:           "http://opensilex.dev/id/unit/cm",
		DataType:       "decimal",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid variable rejected: %v", err)
	}

	incomplete := VariableCreation{Name: "plant height"}
	if err := incomplete.Validate(); err == nil {
		t.Error("expected error for variable without entity/method/unit")
	}
}

func TestDataPointValidate(t *testing.T) {
	valid := DataPoint{
		Date:     "2026-05-01T10:00:00Z",
		Variable: "http://opensilex.dev/id/variable/height",
		Value:    12.5,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid data point rejected: %v", err)
	}

	// Zero is a legitimate measurement.
	zero := valid
	zero.Value = 0.0
	if err := zero.Validate(); err != nil {
		t.Errorf("zero value rejected: %v", err)
	}

	noDate := valid
	noDate.Date = ""
	if err := noDate.Validate(); err == nil {
		t.Error("expected error for missing date")
	}

	noVariable := valid
	noVariable.Variable = ""
	if err := noVariable.Validate(); err == nil {
		t.Error("expected error for missing variable")
	}

	noValue := valid
	noValue.Value = nil
	if err := noValue.Validate(); err == nil {
		t.Error("expected error for nil value")
	}
}
