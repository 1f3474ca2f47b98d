// Package demo generates plausible seed data for empty servers, used
// by the `demo seed` command to populate a fresh instance.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"opensilex-client/internal/models"
)

const uriBase = "http://opensilex.dev/id"

var (
	cropNames = []string{"Wheat", "Maize", "Barley", "Sorghum", "Rapeseed", "Sunflower"}
	traits    = []string{"Height", "Leaf Area", "Biomass", "Water Content", "Chlorophyll"}
)

// Generator produces demo entities. A fixed seed gives reproducible
// output.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}

func shortID() string {
	return uuid.New().String()[:8]
}

// Project generates one demo project spanning the past year.
func (g *Generator) Project() models.ProjectCreation {
	id := shortID()
	now := time.Now()
	return models.ProjectCreation{
		URI:         fmt.Sprintf("%s/project/%s", uriBase, uuid.New().String()),
		Name:        fmt.Sprintf("%s Study %s", g.pick(cropNames), id),
		Shortname:   "DEMO-" + id,
		Description: "Demo project generated for testing",
		StartDate:   now.AddDate(-1, 0, 0).Format("2006-01-02"),
		EndDate:     now.AddDate(1, 0, 0).Format("2006-01-02"),
		Keywords:    []string{"demo", "generated"},
	}
}

// Projects generates n demo projects.
func (g *Generator) Projects(n int) []models.ProjectCreation {
	projects := make([]models.ProjectCreation, n)
	for i := range projects {
		projects[i] = g.Project()
	}
	return projects
}

// Experiment generates one demo experiment attached to a project.
func (g *Generator) Experiment(projectURI string) models.ExperimentCreation {
	now := time.Now()
	return models.ExperimentCreation{
		URI:       fmt.Sprintf("%s/experiment/%s", uriBase, uuid.New().String()),
		Name:      fmt.Sprintf("%s Trial %s", g.pick(cropNames), shortID()),
		StartDate: now.AddDate(0, -6, 0).Format("2006-01-02"),
		EndDate:   now.AddDate(0, 6, 0).Format("2006-01-02"),
		Objective: "Demo experiment generated for testing",
		Projects:  []string{projectURI},
		IsPublic:  g.rnd.Intn(2) == 0,
	}
}

// Variable generates one demo measurement variable.
func (g *Generator) Variable() models.VariableCreation {
	trait := g.pick(traits)
	return models.VariableCreation{
		URI:            fmt.Sprintf("%s/variable/%s", uriBase, uuid.New().String()),
		Name:           fmt.Sprintf("%s_%s", trait, shortID()),
		Description:    fmt.Sprintf("Demo %s variable", trait),
		Entity:         uriBase + "/entity/plant",
		Characteristic: uriBase + "/characteristic/" + shortID(),
		Method:         uriBase + "/method/manual-measurement",
		Unit:           uriBase + "/unit/centimeter",
		DataType:       "http://www.w3.org/2001/XMLSchema#decimal",
	}
}

// DataPoints generates n hourly measurements for a variable as a
// bounded random walk starting at 10.
func (g *Generator) DataPoints(variableURI, targetURI string, n int) []models.DataPoint {
	points := make([]models.DataPoint, n)
	value := 10.0
	start := time.Now().Add(-time.Duration(n) * time.Hour).UTC()
	for i := range points {
		value += g.rnd.Float64()*2 - 0.5
		if value < 0 {
			value = 0
		}
		points[i] = models.DataPoint{
			Date:     start.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Target:   targetURI,
			Variable: variableURI,
			Value:    float64(int(value*100)) / 100,
		}
	}
	return points
}
