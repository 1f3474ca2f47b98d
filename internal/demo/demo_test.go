package demo

import (
	"testing"
	"time"
)

func TestProjects_CountAndValidity(t *testing.T) {
	g := NewGenerator(42)
	projects := g.Projects(3)
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			t.Errorf("project %d invalid: %v", i, err)
		}
		if p.URI == "" {
			t.Errorf("project %d has no URI", i)
		}
	}
}

func TestExperiment_LinksProject(t *testing.T) {
	g := NewGenerator(42)
	exp := g.Experiment("http://opensilex.dev/id/project/p1")
	if err := exp.Validate(); err != nil {
		t.Errorf("experiment invalid: %v", err)
	}
	if len(exp.Projects) != 1 || exp.Projects[0] != "http://opensilex.dev/id/project/p1" {
		t.Errorf("unexpected project links: %v", exp.Projects)
	}
}

func TestVariable_Validity(t *testing.T) {
	g := NewGenerator(42)
	v := g.Variable()
	if err := v.Validate(); err != nil {
		t.Errorf("variable invalid: %v", err)
	}
}

func TestDataPoints_WalkStaysNonNegative(t *testing.T) {
	g := NewGenerator(7)
	points := g.DataPoints("http://opensilex.dev/id/variable/v1", "http://opensilex.dev/id/object/o1", 48)
	if len(points) != 48 {
		t.Fatalf("expected 48 points, got %d", len(points))
	}
	for i, p := range points {
		if err := p.Validate(); err != nil {
			t.Errorf("point %d invalid: %v", i, err)
		}
		if _, err := time.Parse(time.RFC3339, p.Date); err != nil {
			t.Errorf("point %d has malformed date %q: %v", i, p.Date, err)
		}
		value, ok := p.Value.(float64)
		if !ok {
			t.Fatalf("point %d value is %T, want float64", i, p.Value)
		}
		if value < 0 {
			t.Errorf("point %d value %f is negative", i, value)
		}
	}
}

func TestDataPoints_DeterministicForSeed(t *testing.T) {
	first := NewGenerator(99).DataPoints("v", "o", 10)
	second := NewGenerator(99).DataPoints("v", "o", 10)
	for i := range first {
		if first[i].Value != second[i].Value {
			t.Errorf("point %d differs across runs with the same seed: %v vs %v",
				i, first[i].Value, second[i].Value)
		}
	}
}
