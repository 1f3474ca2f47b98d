package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05Z07:00"
)

// Project is a project as returned by the API.
type Project struct {
	URI         string   `json:"uri" mapstructure:"uri"`
	Name        string   `json:"name" mapstructure:"name"`
	Shortname   string   `json:"shortname,omitempty" mapstructure:"shortname"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
	StartDate   string   `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate     string   `json:"end_date,omitempty" mapstructure:"end_date"`
	Keywords    []string `json:"keywords,omitempty" mapstructure:"keywords"`
}

// ProjectCreation is the payload for creating or updating a project.
type ProjectCreation struct {
	URI                    string   `json:"uri,omitempty"`
	Name                   string   `json:"name"`
	Shortname              string   `json:"shortname,omitempty"`
	Description            string   `json:"description,omitempty"`
	StartDate              string   `json:"start_date,omitempty"`
	EndDate                string   `json:"end_date,omitempty"`
	Homepage               string   `json:"homepage,omitempty"`
	Objective              string   `json:"objective,omitempty"`
	Keywords               []string `json:"keywords,omitempty"`
	RelatedProjects        []string `json:"related_projects,omitempty"`
	Coordinators           []string `json:"coordinators,omitempty"`
	ScientificContacts     []string `json:"scientific_contacts,omitempty"`
	AdministrativeContacts []string `json:"administrative_contacts,omitempty"`
}

func (p ProjectCreation) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.StartDate, validation.Date(dateLayout)),
		validation.Field(&p.EndDate, validation.Date(dateLayout)),
	)
}

// Experiment is an experiment as returned by the API.
type Experiment struct {
	URI         string `json:"uri" mapstructure:"uri"`
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Objective   string `json:"objective,omitempty" mapstructure:"objective"`
	StartDate   string `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate     string `json:"end_date,omitempty" mapstructure:"end_date"`
	IsPublic    bool   `json:"is_public,omitempty" mapstructure:"is_public"`
}

// ExperimentCreation is the payload for creating or updating an experiment.
type ExperimentCreation struct {
	URI         string   `json:"uri,omitempty"`
	Name        string   `json:"name"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Objective   string   `json:"objective,omitempty"`
	Projects    []string `json:"projects,omitempty"`
	IsPublic    bool     `json:"is_public"`
}

func (e ExperimentCreation) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&e.EndDate, validation.Date(dateLayout)),
	)
}

// ScientificObject is a plot, plant or other observed object.
type ScientificObject struct {
	URI     string `json:"uri" mapstructure:"uri"`
	Name    string `json:"name" mapstructure:"name"`
	RDFType string `json:"rdf_type,omitempty" mapstructure:"rdf_type"`
}

// ScientificObjectCreation is the payload for creating a scientific object.
type ScientificObjectCreation struct {
	URI        string `json:"uri,omitempty"`
	Name       string `json:"name"`
	RDFType    string `json:"rdf_type"`
	Experiment string `json:"experiment,omitempty"`
}

func (s ScientificObjectCreation) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.RDFType, validation.Required),
	)
}

// Variable describes a measurable quantity (entity, characteristic,
// method and unit combined).
type Variable struct {
	URI      string `json:"uri" mapstructure:"uri"`
	Name     string `json:"name" mapstructure:"name"`
	Entity   string `json:"entity,omitempty" mapstructure:"entity"`
	Unit     string `json:"unit,omitempty" mapstructure:"unit"`
	DataType string `json:"datatype,omitempty" mapstructure:"datatype"`
}

// VariableCreation is the payload for creating a variable.
type VariableCreation struct {
	URI            string `json:"uri,omitempty"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Entity         string `json:"entity"`
	Characteristic string `json:"characteristic"`
	Method         string `json:"method"`
	Unit           string `json:"unit"`
	DataType       string `json:"datatype"`
}

func (v VariableCreation) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.Required),
		validation.Field(&v.Entity, validation.Required),
		validation.Field(&v.Characteristic, validation.Required),
		validation.Field(&v.Method, validation.Required),
		validation.Field(&v.Unit, validation.Required),
		validation.Field(&v.DataType, validation.Required),
	)
}

// EntityCreation is the payload for creating a variable entity (the
// observed thing, e.g. "Plant").
type EntityCreation struct {
	URI         string `json:"uri,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RDFType     string `json:"rdf_type,omitempty"`
}

func (e EntityCreation) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
	)
}

// DataPoint is a single measurement tied to a variable and a target
// scientific object.
type DataPoint struct {
	URI        string   `json:"uri,omitempty" mapstructure:"uri"`
	Date       string   `json:"date" mapstructure:"date"`
	Target     string   `json:"target,omitempty" mapstructure:"target"`
	Variable   string   `json:"variable" mapstructure:"variable"`
	Value      any      `json:"value" mapstructure:"value"`
	Confidence *float64 `json:"confidence,omitempty" mapstructure:"confidence"`
}

func (d DataPoint) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Date, validation.Required, validation.Date(datetimeLayout)),
		validation.Field(&d.Variable, validation.Required),
		validation.Field(&d.Value, validation.NotNil),
	)
}

// Device is a sensor, camera or other measuring device.
type Device struct {
	URI     string `json:"uri" mapstructure:"uri"`
	Name    string `json:"name" mapstructure:"name"`
	RDFType string `json:"rdf_type,omitempty" mapstructure:"rdf_type"`
	Brand   string `json:"brand,omitempty" mapstructure:"brand"`
	Model   string `json:"model,omitempty" mapstructure:"model"`
}

// Event is something that happened to scientific objects (irrigation,
// treatment, ...).
type Event struct {
	URI         string   `json:"uri" mapstructure:"uri"`
	RDFType     string   `json:"rdf_type,omitempty" mapstructure:"rdf_type"`
	Start       string   `json:"start,omitempty" mapstructure:"start"`
	End         string   `json:"end,omitempty" mapstructure:"end"`
	Targets     []string `json:"targets,omitempty" mapstructure:"targets"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
}
